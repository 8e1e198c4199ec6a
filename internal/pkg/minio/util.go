package minio

import (
	"Viewy/internal/api/config"
	"fmt"
	"strings"
)

// GetPublicURL browser-facing URL of an object in the main bucket, "" for an empty key
func GetPublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}
	if strings.HasPrefix(objectName, "http://") || strings.HasPrefix(objectName, "https://") {
		return objectName
	}
	if config.Cfg == nil {
		return objectName
	}
	endpoint := strings.TrimSuffix(config.Cfg.MinIO.ExternalEndpoint, "/")
	bucket := config.Cfg.MinIO.MainBucket
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "https://" + endpoint
	}
	return fmt.Sprintf("%s/%s/%s", endpoint, bucket, strings.TrimPrefix(objectName, "/"))
}
