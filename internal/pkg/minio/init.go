package minio

import (
	"Viewy/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client global MinIO client
	Client *minio.Client
	// MainBucket holds post visuals, avatars and ad images
	MainBucket string
)

// Init connects to MinIO and checks the main bucket exists
func Init() error {
	cfg := config.Cfg.MinIO

	endpoint, useSSL := cfg.InternalEndpoint, cfg.InternalUseSSL
	if endpoint == "" {
		endpoint, useSSL = cfg.ExternalEndpoint, true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), cfg.MainBucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		return fmt.Errorf("minio bucket %q does not exist", cfg.MainBucket)
	}

	Client = client
	MainBucket = cfg.MainBucket
	log.Info("MinIO initialized successfully", "bucket", MainBucket)
	return nil
}
