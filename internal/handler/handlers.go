package handler

import (
	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/handler/http"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
