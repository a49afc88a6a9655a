package handler

import (
	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/handler/http"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
