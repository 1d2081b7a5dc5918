package tui

import (
	"os"
	"path/filepath"
	"testing"

	tuitesting "github.com/Veraticus/pix-flow/internal/tui/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("disabled without a directory", func(t *testing.T) {
		rec := NewRecorder("")
		assert.False(t, rec.Enabled())
		rec.RecordState(Model{}, nil)
		assert.Zero(t, rec.Frames())
		rec.Close()
	})

	t.Run("writes a frame per update", func(t *testing.T) {
		f := newFixture(t, ana, nil)
		rec := NewRecorder(t.TempDir())
		require.True(t, rec.Enabled())
		t.Cleanup(rec.Close)

		f.r.Model = recordingModel{Model: f.model(), rec: rec}
		f.r.Update(tuitesting.KeyPress("e"))

		require.Equal(t, 1, rec.Frames())
		frame, err := os.ReadFile(filepath.Join(rec.Dir(), "frame-0001.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(frame), "Olá, Ana")

		rec.Close()
		log, err := os.ReadFile(filepath.Join(rec.Dir(), "tui.log"))
		require.NoError(t, err)
		assert.Contains(t, string(log), "Message Type: tea.KeyMsg")
		assert.Contains(t, string(log), "Scanner: idle")
		assert.Contains(t, string(log), "1 frames captured")
	})
}
