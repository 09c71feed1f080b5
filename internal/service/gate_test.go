package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainGate_InDomain(t *testing.T) {
	gate := NewDomainGate()

	longOffTopic := strings.Repeat("palabra ", 34) + "turismo"

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"island question", "¿Cuántos turistas visitaron Tenerife en enero de 2025?", true},
		{"off-topic question", "¿Cuál es la capital de Francia?", false},
		{"island name alone", "Háblame de Lanzarote", true},
		{"archipelago name", "Estadísticas de Canarias", true},
		{"generic island word", "¿Qué isla recibe más visitantes?", true},
		{"short tourism question", "¿Cuántos pasajeros llegaron este mes?", true},
		{"long message with one tourism word", longOffTopic, false},
		{"empty message", "", false},
		{"whitespace only", "   ", false},
		{"uppercase island", "DATOS DE FUERTEVENTURA", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gate.InDomain(tc.message))
		})
	}
}

func TestDomainGate_TokenBound(t *testing.T) {
	gate := NewDomainGate()

	// 29 tokens with a tourism term is accepted, 30 is not.
	accepted := strings.Repeat("x ", 28) + "turismo"
	rejected := strings.Repeat("x ", 29) + "turismo"

	assert.True(t, gate.InDomain(accepted))
	assert.False(t, gate.InDomain(rejected))
}
