package es

import (
	"Viewy/internal/api/config"
	"Viewy/internal/pkg/logger"
	"context"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var PostIndex string

const (
	BadRequestCode = 400
	NotFoundCode   = 404
	ConflictCode   = 409
)

// InitClient builds the typed client with the logging transport
func InitClient() error {
	elasticCfg := config.Cfg.Elastic

	PostIndex = elasticCfg.Indices.PostIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	info, err := Client.Info().Do(context.Background())
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	log.Info("Connected to Elasticsearch", "version", info.Version.Int)
	return ensurePostIndex(context.Background())
}

// ensurePostIndex creates the post index with its explicit mapping on first start
func ensurePostIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(PostIndex).Do(ctx)
	if err != nil {
		log.Error("Check post index error", "index", PostIndex, "err", err)
		return err
	}
	if exists {
		return nil
	}
	_, err = Client.Indices.Create(PostIndex).Mappings(postMapping()).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		// another instance created it first
		if errors.As(err, &e) && e.Status == BadRequestCode {
			return nil
		}
		log.Error("Create post index error", "index", PostIndex, "err", err)
		return err
	}
	log.Info("Created post index", "index", PostIndex)
	return nil
}
