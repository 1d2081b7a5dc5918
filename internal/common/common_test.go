package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	err := NewUserError("Erro ao acessar câmera", ErrCameraUnavailable)

	assert.True(t, errors.Is(err, ErrCameraUnavailable))
	assert.Equal(t, "Erro ao acessar câmera: camera unavailable", err.Error())
	assert.Equal(t, "Erro ao acessar câmera", UserMessage(err))
	assert.Equal(t, "not found", UserMessage(ErrNotFound))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "json"))

	LogInfo("scanner started", Fields{"session": "abc"})
	LogDebug("hidden", nil)

	assert.Contains(t, buf.String(), `"msg":"scanner started"`)
	assert.Contains(t, buf.String(), `"session":"abc"`)
	assert.NotContains(t, buf.String(), "hidden")

	assert.ErrorIs(t, SetupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}
