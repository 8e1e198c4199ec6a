package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg global configuration
var Cfg *Config

// LoadConfig reads ./configs/config.yaml into Cfg, on top of Default
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Rank.Validate(); err != nil {
		return fmt.Errorf("invalid rank config: %w", err)
	}

	Cfg = cfg

	return nil
}

// Default values for everything the feed core needs
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Feed: FeedConfig{
			TopK:           7,
			DiscoverySize:  2,
			DiscoveryPool:  100,
			CandidateLimit: 1000,
			PageSize:       9,
			AnonymousLimit: 9,
		},
		Rank: RankConfig{
			RecencyWeight:        10,
			RecencyHalfLifeHours: 24,
			EngagementWeight:     1,
			FavoriteWeight:       3,
			FollowBoost:          5,
			WatchPenalty:         0.5,
		},
		QP: QPConfig{
			RateWeight:   1,
			ViewWeight:   10,
			EmoteWeight:  5,
			RefreshEvery: 10,
		},
		Cache: CacheConfig{PosterTTLSeconds: 600},
		Cron: CronConfig{
			QPRefresh:  "0 */5 * * * *",
			HotHashtag: "0 0 * * * *",
		},
	}
}

// Validate rejects weights that would make RP decrease with recency,
// engagement or a followed poster
func (c RankConfig) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"recency_weight", c.RecencyWeight},
		{"engagement_weight", c.EngagementWeight},
		{"favorite_weight", c.FavoriteWeight},
		{"follow_boost", c.FollowBoost},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("rank.%s must not be negative, got %v", w.name, w.value)
		}
	}
	return nil
}
