package minio

import (
	"Viewy/internal/api/config"
	"testing"
)

func TestGetPublicURL(t *testing.T) {
	prev := config.Cfg
	t.Cleanup(func() { config.Cfg = prev })

	config.Cfg = config.Default()
	config.Cfg.MinIO.ExternalEndpoint = "cdn.example.com/"
	config.Cfg.MinIO.MainBucket = "viewy"

	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"posts/1/a.png", "https://cdn.example.com/viewy/posts/1/a.png"},
		{"/ads/b.png", "https://cdn.example.com/viewy/ads/b.png"},
		{"https://other.example.com/x.png", "https://other.example.com/x.png"},
	}
	for _, tt := range tests {
		if got := GetPublicURL(tt.key); got != tt.want {
			t.Errorf("GetPublicURL(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
