package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-12-10 is a Wednesday.
var wednesday = time.Date(2025, 12, 10, 16, 48, 5, 0, time.UTC)

func TestDates(t *testing.T) {
	assert.Equal(t, "10/12/2025", Date(wednesday))
	assert.Equal(t, "quarta-feira, 10/12/2025", LongDate(wednesday))
	assert.Equal(t, "quarta-feira, 10 de dezembro", HeaderDate(wednesday))
	assert.Equal(t, "terça-feira, 9 de dezembro", HeaderDate(wednesday.AddDate(0, 0, -1)))
	assert.Equal(t, "sábado, 1 de março", HeaderDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTimes(t *testing.T) {
	assert.Equal(t, "16:48", Clock(wednesday))
	assert.Equal(t, "16h48", ReceiptTime(wednesday))
	assert.Equal(t, "07h05", ReceiptTime(time.Date(2025, 1, 1, 7, 5, 0, 0, time.UTC)))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		cents int64
	}{
		{name: "small", cents: 5000, want: "R$ 50,00"},
		{name: "with cents", cents: 2490, want: "R$ 24,90"},
		{name: "thousands", cents: 150000, want: "R$ 1.500,00"},
		{name: "negative", cents: -2490, want: "- R$ 24,90"},
		{name: "zero", cents: 0, want: "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.cents))
		})
	}

	assert.Equal(t, "+ R$ 1.500,00", SignedMoney(150000))
	assert.Equal(t, "- R$ 50,00", SignedMoney(-5000))
	assert.Equal(t, "50,00", Decimal(5000))
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Quarta-feira, 10/12/2025", CapitalizeFirst("quarta-feira, 10/12/2025"))
	assert.Equal(t, "Ábaco", CapitalizeFirst("ábaco"))
	assert.Equal(t, "Já", CapitalizeFirst("Já"))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "JOÃO DA SILVA", Upper(" João da Silva "))
}
