package app

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/logger"
)

// InitializeLogger configures the global logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
