package service

import (
	"github.com/MKhiriev/teacher-dashboard/internal/config"
	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/store"
)

type Services struct {
	AuthService      AuthService
	StudentService   StudentService
	AnalyticsService AnalyticsService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		StudentService:   NewStudentService(storages.StudentRepository, logger),
		AnalyticsService: NewAnalyticsService(storages.StudentRepository, logger),
	}
}
