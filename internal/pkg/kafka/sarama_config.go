package kafka

import (
	"Viewy/internal/api/config"
	"time"

	"github.com/IBM/sarama"
)

// newSaramaConfig consumer group settings shared by every consumer
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Consumer.Return.Errors = true
	c.Consumer.Offsets.Initial = sarama.OffsetOldest
	c.Consumer.Offsets.AutoCommit.Enable = false

	if d := kafkaCfg.Consumer.SessionTimeout; d > 0 {
		c.Consumer.Group.Session.Timeout = time.Duration(d) * time.Second
	}
	if d := kafkaCfg.Consumer.HeartbeatInterval; d > 0 {
		c.Consumer.Group.Heartbeat.Interval = time.Duration(d) * time.Second
	}
	if d := kafkaCfg.Consumer.RebalanceTimeout; d > 0 {
		c.Consumer.Group.Rebalance.Timeout = time.Duration(d) * time.Second
	}
	if d := kafkaCfg.Consumer.MaxProcessingTime; d > 0 {
		c.Consumer.MaxProcessingTime = time.Duration(d) * time.Second
	}

	return c
}
