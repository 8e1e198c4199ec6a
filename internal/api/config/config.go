package config

// Config top-level configuration
type Config struct {
	Server            ServerConfig      `mapstructure:"server"`
	DB                DBConfig          `mapstructure:"database"`
	Redis             RedisConfig       `mapstructure:"redis"`
	Mongo             MongoConfig       `mapstructure:"mongo"`
	MinIO             MinIOConfig       `mapstructure:"minio"`
	Elastic           ElasticConfig     `mapstructure:"elastic"`
	Kafka             KafkaConfig       `mapstructure:"kafka"`
	KafkaPostConsumer KafkaPostConsumer `mapstructure:"kafka_post_consumer"`
	Logstash          LogstashConfig    `mapstructure:"logstash"`
	JWT               JWTConfig         `mapstructure:"jwt"`
	Feed              FeedConfig        `mapstructure:"feed"`
	Rank              RankConfig        `mapstructure:"rank"`
	QP                QPConfig          `mapstructure:"qp"`
	Cache             CacheConfig       `mapstructure:"cache"`
	Cron              CronConfig        `mapstructure:"cron"`
}

// ServerConfig HTTP server
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig MySQL connection pool
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig object storage for visuals and ad images
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// ElasticConfig Elasticsearch
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices index names
type ElasticIndices struct {
	PostIndex string `mapstructure:"post_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaPostConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// LogstashConfig remote log sink
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// FeedConfig feed assembly and pagination sizes
type FeedConfig struct {
	TopK           int `mapstructure:"top_k"`
	DiscoverySize  int `mapstructure:"discovery_size"`
	DiscoveryPool  int `mapstructure:"discovery_pool"`
	CandidateLimit int `mapstructure:"candidate_limit"`
	PageSize       int `mapstructure:"page_size"`
	AnonymousLimit int `mapstructure:"anonymous_limit"`
}

// RankConfig RP weights
type RankConfig struct {
	RecencyWeight        float64 `mapstructure:"recency_weight"`
	RecencyHalfLifeHours float64 `mapstructure:"recency_half_life_hours"`
	EngagementWeight     float64 `mapstructure:"engagement_weight"`
	FavoriteWeight       float64 `mapstructure:"favorite_weight"`
	FollowBoost          float64 `mapstructure:"follow_boost"`
	WatchPenalty         float64 `mapstructure:"watch_penalty"`
}

// QPConfig QP weights and inline refresh interval
type QPConfig struct {
	RateWeight   float64 `mapstructure:"rate_weight"`
	ViewWeight   float64 `mapstructure:"view_weight"`
	EmoteWeight  float64 `mapstructure:"emote_weight"`
	RefreshEvery int64   `mapstructure:"refresh_every"`
}

type CacheConfig struct {
	PosterTTLSeconds int `mapstructure:"poster_ttl_seconds"`
}

type CronConfig struct {
	QPRefresh  string `mapstructure:"qp_refresh"`
	HotHashtag string `mapstructure:"hot_hashtag"`
}
