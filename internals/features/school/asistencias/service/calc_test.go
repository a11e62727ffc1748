package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcularInasistencia(t *testing.T) {
	tests := []struct {
		name                 string
		totalClases          int
		presentes            int
		ausenciasRegistradas int
		wantAusencias        int
		wantPorcentaje       float64
		wantAlerta           bool
	}{
		{
			name:        "sin clases no hay porcentaje ni alerta",
			totalClases: 0, presentes: 0, ausenciasRegistradas: 0,
			wantAusencias: 0, wantPorcentaje: 0, wantAlerta: false,
		},
		{
			name:        "sin clases pero con ausencias registradas sigue sin alerta",
			totalClases: 0, presentes: 0, ausenciasRegistradas: 3,
			wantAusencias: 3, wantPorcentaje: 0, wantAlerta: false,
		},
		{
			name:        "borde exacto del 25 por ciento dispara alerta",
			totalClases: 8, presentes: 6, ausenciasRegistradas: 0,
			wantAusencias: 2, wantPorcentaje: 25, wantAlerta: true,
		},
		{
			name:        "las ausencias registradas ganan cuando superan la diferencia",
			totalClases: 8, presentes: 6, ausenciasRegistradas: 3,
			wantAusencias: 3, wantPorcentaje: 37.5, wantAlerta: true,
		},
		{
			name:        "debajo del umbral no hay alerta",
			totalClases: 8, presentes: 7, ausenciasRegistradas: 0,
			wantAusencias: 1, wantPorcentaje: 12.5, wantAlerta: false,
		},
		{
			name:        "asistencia perfecta",
			totalClases: 10, presentes: 10, ausenciasRegistradas: 0,
			wantAusencias: 0, wantPorcentaje: 0, wantAlerta: false,
		},
		{
			name:        "porcentaje redondeado a dos decimales",
			totalClases: 3, presentes: 2, ausenciasRegistradas: 0,
			wantAusencias: 1, wantPorcentaje: 33.33, wantAlerta: true,
		},
		{
			name:        "todo ausente",
			totalClases: 5, presentes: 0, ausenciasRegistradas: 5,
			wantAusencias: 5, wantPorcentaje: 100, wantAlerta: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularInasistencia(tt.totalClases, tt.presentes, tt.ausenciasRegistradas)
			assert.Equal(t, tt.wantAusencias, got.Ausencias)
			assert.InDelta(t, tt.wantPorcentaje, got.Porcentaje, 0.001)
			assert.Equal(t, tt.wantAlerta, got.Alerta25)
		})
	}
}

func TestNormalizarFecha(t *testing.T) {
	t.Run("fecha pura queda igual", func(t *testing.T) {
		iso, dia, err := NormalizarFecha("2025-03-15")
		assert.NoError(t, err)
		assert.Equal(t, "2025-03-15", iso)
		assert.Equal(t, "2025-03-15", dia.Format("2006-01-02"))
	})
	t.Run("timestamp RFC3339 se reduce a fecha", func(t *testing.T) {
		iso, _, err := NormalizarFecha("2025-03-15T10:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, "2025-03-15", iso)
	})
	t.Run("fecha invalida", func(t *testing.T) {
		_, _, err := NormalizarFecha("15/03/2025")
		assert.ErrorIs(t, err, ErrFechaInvalida)
	})
}
