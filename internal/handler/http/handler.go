package http

import (
	"embed"
	"html/template"

	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	services *service.Services

	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:    logger,
	}
}
