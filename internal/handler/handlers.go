package handler

import (
	"github.com/MKhiriev/teacher-dashboard/internal/handler/http"
	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
