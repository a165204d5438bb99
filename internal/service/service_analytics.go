package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/store"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// recentAdditionsLimit caps the "recent additions" section of the dashboard
// summary.
const recentAdditionsLimit = 10

// analyticsService is the concrete implementation of AnalyticsService.
// It assembles the dashboard summary from three independent reads against
// the students table; no result is ever cached or stored.
type analyticsService struct {
	studentRepository store.StudentRepository
	logger            *logger.Logger
}

// NewAnalyticsService constructs an AnalyticsService wired to the given
// repository.
func NewAnalyticsService(studentRepository store.StudentRepository, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		studentRepository: studentRepository,
		logger:            logger,
	}
}

// Compute reads the total count, the per-subject averages, and the ten most
// recently created students, and assembles them into one Analytics value.
//
// Averages are rounded to two decimal places here; subjects with zero rows
// are absent from the repository result and stay absent from the map. The
// reads are not wrapped in a transaction: they observe whatever rows exist
// at read time.
func (s *analyticsService) Compute(ctx context.Context) (models.Analytics, error) {
	log := logger.FromContext(ctx)

	total, err := s.studentRepository.CountStudents(ctx)
	if err != nil {
		log.Err(err).Msg("counting students failed")
		return models.Analytics{}, fmt.Errorf("counting students failed: %w", err)
	}

	averages, err := s.studentRepository.AverageGradeBySubject(ctx)
	if err != nil {
		log.Err(err).Msg("averaging grades failed")
		return models.Analytics{}, fmt.Errorf("averaging grades failed: %w", err)
	}

	rounded := make(map[string]float64, len(averages))
	for subject, average := range averages {
		rounded[subject] = math.Round(average*100) / 100
	}

	recent, err := s.studentRepository.RecentStudents(ctx, recentAdditionsLimit)
	if err != nil {
		log.Err(err).Msg("fetching recent students failed")
		return models.Analytics{}, fmt.Errorf("fetching recent students failed: %w", err)
	}

	return models.Analytics{
		TotalStudents:         total,
		AverageGradeBySubject: rounded,
		RecentAdditions:       recent,
	}, nil
}
