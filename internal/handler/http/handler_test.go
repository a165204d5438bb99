package http

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/teacher-dashboard/internal/logger"
	"github.com/MKhiriev/teacher-dashboard/internal/service"
	"github.com/MKhiriev/teacher-dashboard/models"
)

// mockAuthService implements service.AuthService with overridable function
// fields. Unset methods fail the test if called.
type mockAuthService struct {
	t *testing.T

	login       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createToken func(ctx context.Context, user models.User) (models.Token, error)
	parseToken  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.login == nil {
		m.t.Fatal("unexpected call to Login")
	}
	return m.login(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createToken == nil {
		m.t.Fatal("unexpected call to CreateToken")
	}
	return m.createToken(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseToken == nil {
		m.t.Fatal("unexpected call to ParseToken")
	}
	return m.parseToken(ctx, tokenString)
}

// mockStudentService implements service.StudentService the same way.
type mockStudentService struct {
	t *testing.T

	list   func(ctx context.Context, subjectFilter string) ([]models.Student, error)
	create func(ctx context.Context, input models.StudentInput) (models.Student, error)
	update func(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error)
	delete func(ctx context.Context, id int64) error
}

func (m *mockStudentService) List(ctx context.Context, subjectFilter string) ([]models.Student, error) {
	if m.list == nil {
		m.t.Fatal("unexpected call to List")
	}
	return m.list(ctx, subjectFilter)
}

func (m *mockStudentService) Create(ctx context.Context, input models.StudentInput) (models.Student, error) {
	if m.create == nil {
		m.t.Fatal("unexpected call to Create")
	}
	return m.create(ctx, input)
}

func (m *mockStudentService) Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	if m.update == nil {
		m.t.Fatal("unexpected call to Update")
	}
	return m.update(ctx, id, patch)
}

func (m *mockStudentService) Delete(ctx context.Context, id int64) error {
	if m.delete == nil {
		m.t.Fatal("unexpected call to Delete")
	}
	return m.delete(ctx, id)
}

// mockAnalyticsService implements service.AnalyticsService.
type mockAnalyticsService struct {
	t *testing.T

	compute func(ctx context.Context) (models.Analytics, error)
}

func (m *mockAnalyticsService) Compute(ctx context.Context) (models.Analytics, error) {
	if m.compute == nil {
		m.t.Fatal("unexpected call to Compute")
	}
	return m.compute(ctx)
}

// newTestHandler wires the mocks into a Handler with a no-op logger. Nil
// mocks are replaced by empty ones so any call on them fails loudly.
func newTestHandler(t *testing.T, auth *mockAuthService, students *mockStudentService, analytics *mockAnalyticsService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{t: t}
	}
	if students == nil {
		students = &mockStudentService{t: t}
	}
	if analytics == nil {
		analytics = &mockAnalyticsService{t: t}
	}

	return NewHandler(&service.Services{
		AuthService:      auth,
		StudentService:   students,
		AnalyticsService: analytics,
	}, logger.Nop())
}

// decodeEnvelope parses the uniform response envelope out of a response
// body.
func decodeEnvelope(t *testing.T, body io.Reader) models.APIResponse {
	t.Helper()

	var envelope models.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

// authedParseToken is a ParseToken stub accepting any token as the given
// username.
func authedParseToken(username string) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(ctx context.Context, tokenString string) (models.Token, error) {
		return models.Token{SignedString: tokenString, Username: username}, nil
	}
}
