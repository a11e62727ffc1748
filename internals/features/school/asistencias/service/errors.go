package service

import (
	"errors"
	"fmt"
	"strings"
)

// Errores esperados del registro y resumen de asistencias. El controller los
// traduce a HTTP; cualquier otro error de storage sube sin tocar.
var (
	// Cubre tambien el caso cross-tenant: un QR de otro colegio simplemente
	// no resuelve, para no filtrar existencia entre tenants.
	ErrEstudianteNoEncontrado = errors.New("Estudiante no encontrado")
	ErrSinPeriodoActivo       = errors.New("No existe periodo activo para la fecha")
	ErrCursoNoCoincide        = errors.New("El estudiante no pertenece al curso indicado")
	ErrRegistroDuplicado      = errors.New("Ya existe registro para este estudiante/curso/fecha")
	ErrCursoNoEncontrado      = errors.New("Curso no encontrado")
	ErrPeriodoNoEncontrado    = errors.New("Periodo no encontrado")
	ErrFechaInvalida          = errors.New("Fecha invalida")
)

// CamposFaltantesError indica campos requeridos ausentes en la entrada.
type CamposFaltantesError struct {
	Campos []string
}

func (e *CamposFaltantesError) Error() string {
	if len(e.Campos) == 1 {
		return fmt.Sprintf("%s es requerido", e.Campos[0])
	}
	n := len(e.Campos)
	return fmt.Sprintf("%s y %s son requeridos", strings.Join(e.Campos[:n-1], ", "), e.Campos[n-1])
}
