package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	s, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, s.Storage.Backend)
	assert.Equal(t, "/home/tester/.local/share/pix/pix.db", s.Storage.Path)
	assert.Equal(t, 10, s.Scanner.FPS)
	assert.Equal(t, 250, s.Scanner.QRBox)
	assert.Equal(t, "environment", s.Scanner.Facing)
	assert.False(t, s.Scanner.KeepHandleOnStopFailure)
	assert.Equal(t, 2*time.Second, s.Payment.ProcessingDelay)
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("storage.backend", "BOLT")
	v.Set("storage.path", "/tmp/pix.bolt")
	v.Set("scanner.fps", 5)
	v.Set("payment.processing_delay", "500ms")

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, s.Storage.Backend)
	assert.Equal(t, "/tmp/pix.bolt", s.Storage.Path)
	assert.Equal(t, 5, s.Scanner.FPS)
	assert.Equal(t, 500*time.Millisecond, s.Payment.ProcessingDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "unknown backend", key: "storage.backend", value: "redis"},
		{name: "zero fps", key: "scanner.fps", value: 0},
		{name: "negative qrbox", key: "scanner.qrbox", value: -1},
		{name: "bad facing", key: "scanner.facing", value: "sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("PIX_DIR", "/data/pix")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/home/tester", ExpandPath("~"))
	assert.Equal(t, filepath.Join("/home/tester", "pix.db"), ExpandPath("~/pix.db"))
	assert.Equal(t, "/data/pix/pix.db", ExpandPath("$PIX_DIR/pix.db"))
	assert.Equal(t, "relative/pix.db", ExpandPath("relative/pix.db"))
}
