package service

import "math"

// UmbralAlerta es el porcentaje de inasistencia (inclusivo) que dispara alerta.
const UmbralAlerta = 25.0

type Inasistencia struct {
	Ausencias  int
	Porcentaje float64
	Alerta25   bool
}

// CalcularInasistencia deriva ausencias, porcentaje y alerta para un estudiante.
// Ausencias = max(totalClases - presentes, ausenciasRegistradas): cuando no toda
// sesion ausente se registro explicitamente, manda la diferencia contra el total.
// Con totalClases == 0 no hay base de calculo: porcentaje 0, sin alerta.
func CalcularInasistencia(totalClases, presentes, ausenciasRegistradas int) Inasistencia {
	ausencias := totalClases - presentes
	if ausenciasRegistradas > ausencias {
		ausencias = ausenciasRegistradas
	}
	if totalClases == 0 {
		return Inasistencia{Ausencias: ausencias}
	}
	porcentaje := float64(ausencias) / float64(totalClases) * 100
	porcentaje = math.Round(porcentaje*100) / 100
	return Inasistencia{
		Ausencias:  ausencias,
		Porcentaje: porcentaje,
		Alerta25:   porcentaje >= UmbralAlerta,
	}
}
