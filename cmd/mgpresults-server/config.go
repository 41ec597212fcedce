package main

import (
	"time"

	"mgpresults/internal/components/telemetry"
	"mgpresults/internal/scrapers/multigp"
)

type SourceConfig struct {
	Url               string  `json:"url"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	UserAgent         string  `json:"user_agent"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

func (c SourceConfig) ClientOptions() multigp.ClientOptions {
	return multigp.ClientOptions{
		Url:               c.Url,
		Timeout:           time.Duration(c.TimeoutSeconds) * time.Second,
		UserAgent:         c.UserAgent,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}

type ServerConfig struct {
	Port int `json:"port"`
}

type Config struct {
	Source    SourceConfig     `json:"source"`
	Server    ServerConfig     `json:"server"`
	Timezone  string           `json:"timezone"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	Source: SourceConfig{
		Url:               multigp.DefaultResultsUrl,
		TimeoutSeconds:    30,
		RequestsPerSecond: 1,
	},
	Server: ServerConfig{
		Port: 8000,
	},
}
