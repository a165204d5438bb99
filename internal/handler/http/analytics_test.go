package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/teacher-dashboard/models"
)

func TestGetAnalytics_Handler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		analytics := &mockAnalyticsService{
			t: t,
			compute: func(ctx context.Context) (models.Analytics, error) {
				return models.Analytics{
					TotalStudents: 3,
					AverageGradeBySubject: map[string]float64{
						models.SubjectMath:    90,
						models.SubjectScience: 86.67,
					},
					RecentAdditions: []models.Student{fixtureStudent(3), fixtureStudent(2)},
				}, nil
			},
		}
		h := newTestHandler(t, nil, nil, analytics)

		req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
		rec := httptest.NewRecorder()
		h.getAnalytics(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		envelope := decodeEnvelope(t, rec.Body)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Analytics retrieved successfully", envelope.Message)

		payload, ok := envelope.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(3), payload["totalStudents"])

		averages, ok := payload["averageGradeBySubject"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 86.67, averages[models.SubjectScience])

		recent, ok := payload["recentAdditions"].([]any)
		require.True(t, ok)
		assert.Len(t, recent, 2)
	})

	t.Run("store failure stays opaque", func(t *testing.T) {
		analytics := &mockAnalyticsService{
			t: t,
			compute: func(ctx context.Context) (models.Analytics, error) {
				return models.Analytics{}, errors.New("disk on fire")
			},
		}
		h := newTestHandler(t, nil, nil, analytics)

		req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
		rec := httptest.NewRecorder()
		h.getAnalytics(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		envelope := decodeEnvelope(t, rec.Body)
		assert.False(t, envelope.Success)
		assert.Equal(t, "Failed to retrieve analytics", envelope.Error)
		assert.NotContains(t, rec.Body.String(), "disk on fire")
	})
}
