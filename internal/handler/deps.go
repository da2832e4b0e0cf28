package handler

import (
	"rbxpresence/internal/app/presence"
	"rbxpresence/internal/configs"
	"rbxpresence/internal/pkg/metrics"
)

// AppDeps groups what the handlers need. It is built once in main.
type AppDeps struct {
	Config  *configs.AppConfig
	Gateway *presence.Gateway
	Metrics *metrics.Metrics
}
