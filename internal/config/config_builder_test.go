package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierSourcesWin(t *testing.T) {
	envCfg := &StructuredConfig{
		App: App{
			TokenSignKey:  "env-sign-key",
			TokenDuration: 6 * time.Hour,
		},
	}
	flagCfg := &StructuredConfig{
		App: App{
			TokenSignKey:      "flag-sign-key",
			AdminUsername:     "teacher",
			AdminPasswordHash: "$2a$10$hash",
		},
		Server: Server{HTTPAddress: "localhost:9090"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envCfg, flagCfg)

	cfg, err := b.build()
	require.NoError(t, err)

	// env wins where both sources set a value
	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	// flags fill the fields env left empty
	assert.Equal(t, "teacher", cfg.App.AdminUsername)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	// env-only fields survive the merge
	assert.Equal(t, 6*time.Hour, cfg.App.TokenDuration)
}

func TestBuild_ValidatesMergedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source exploded")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source exploded")
}
