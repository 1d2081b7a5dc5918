package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitWithProgress(t *testing.T) {
	t.Run("fills the bar", func(t *testing.T) {
		var out bytes.Buffer

		err := WaitWithProgress(context.Background(), &out, 20*time.Millisecond, "Processando pagamento...")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Processando pagamento...")
	})

	t.Run("zero delay finishes at once", func(t *testing.T) {
		var out bytes.Buffer

		err := WaitWithProgress(context.Background(), &out, 0, "Processando")

		require.NoError(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		var out bytes.Buffer
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := WaitWithProgress(ctx, &out, time.Hour, "Processando")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		icon   string
	}{
		{name: "success", render: FormatSuccess, icon: SuccessIcon},
		{name: "error", render: FormatError, icon: ErrorIcon},
		{name: "warning", render: FormatWarning, icon: WarningIcon},
		{name: "info", render: FormatInfo, icon: InfoIcon},
		{name: "title", render: FormatTitle, icon: PixIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("mensagem")
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "mensagem")
		})
	}
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Comprovante", FormatField("Valor", "R$ 50,00"))

	assert.Contains(t, out, "Comprovante")
	assert.Contains(t, out, "Valor:")
	assert.Contains(t, out, "R$ 50,00")
}
