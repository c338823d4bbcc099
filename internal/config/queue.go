package config

import (
	"fmt"
	"net/url"
	"time"
)

type QueueConfig struct {
	QueueUser           string        `mapstructure:"queue-user"`
	QueuePassword       string        `mapstructure:"queue-password"`
	Url                 string        `mapstructure:"url"`
	ProcessingTimeout   time.Duration `mapstructure:"processing-timeout"`
	MsgMaxRetryAttempts int32         `mapstructure:"msg-max-retry-attempts"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if _, err := url.Parse(cfg.Url); err != nil {
		return fmt.Errorf("invalid queue url: %w", err)
	}

	if cfg.ProcessingTimeout <= 0 {
		return fmt.Errorf("processing timeout must be a positive duration")
	}

	if cfg.MsgMaxRetryAttempts <= 0 {
		return fmt.Errorf("msg max retry attempts must be a positive integer")
	}

	return nil
}
