package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/teacher-dashboard/models"
)

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)
	router := h.Init()

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/students"},
		{http.MethodPost, "/students"},
		{http.MethodPut, "/students/1"},
		{http.MethodDelete, "/students/1"},
		{http.MethodGet, "/analytics"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Access token required", decodeEnvelope(t, rec.Body).Error)
		})
	}
}

func TestRouter_LoginNeedsNoToken(t *testing.T) {
	auth := &mockAuthService{
		t: t,
		login: func(ctx context.Context, creds models.Credentials) (models.User, error) {
			return models.User{Username: creds.Username}, nil
		},
		createToken: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token", Username: user.Username}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"teacher","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec.Body).Success)
}

func TestRouter_AuthorizedRequestFlowsThrough(t *testing.T) {
	auth := &mockAuthService{t: t, parseToken: authedParseToken("teacher")}
	students := &mockStudentService{
		t: t,
		list: func(ctx context.Context, subjectFilter string) ([]models.Student, error) {
			return []models.Student{fixtureStudent(1)}, nil
		},
	}
	h := newTestHandler(t, auth, students, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Retrieved 1 students", envelope.Message)
}

func TestRouter_RouteParamReachesHandler(t *testing.T) {
	auth := &mockAuthService{t: t, parseToken: authedParseToken("teacher")}
	students := &mockStudentService{
		t: t,
		delete: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(42), id)
			return nil
		},
	}
	h := newTestHandler(t, auth, students, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/students/42", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Student deleted successfully", decodeEnvelope(t, rec.Body).Message)
}

func TestRouter_TraceIDHeaderSet(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
