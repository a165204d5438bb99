package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "teacher-dashboard"
	testSignKey  = "test-sign-key"
	testUsername = "teacher"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUsername, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUsername, token.Username)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", username: testUsername, duration: time.Hour, signKey: testSignKey},
		{name: "empty username", issuer: testIssuer, username: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, username: testUsername, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, username: testUsername, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUsername, 24*time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUsername, parsed.Username)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUsername, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("other-service", testUsername, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// expired well past the leeway window
	issued, err := GenerateJWTToken(testIssuer, testUsername, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// only expired once the leeway is exhausted; fake it by issuing a token
	// that expired over a minute ago
	longExpired, err := GenerateJWTToken(testIssuer, testUsername, -2*time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(longExpired.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)

	// a token inside the leeway window is still accepted
	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "too many parts", header: "Bearer one two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
