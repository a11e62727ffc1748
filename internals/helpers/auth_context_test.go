package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asistencia_backend/internals/constants"
)

func TestResolveSchoolID(t *testing.T) {
	admin := AuthContext{UserID: 1, Rol: constants.RoleAdmin, SchoolID: 10}
	docente := AuthContext{UserID: 2, Rol: constants.RoleDocente, SchoolID: 10}

	// Admin puede apuntar a otro colegio; sin schoolId usa el propio.
	assert.Equal(t, uint(20), admin.ResolveSchoolID(20))
	assert.Equal(t, uint(10), admin.ResolveSchoolID(0))

	// Docente siempre opera sobre su colegio, pida lo que pida.
	assert.Equal(t, uint(10), docente.ResolveSchoolID(20))
	assert.Equal(t, uint(10), docente.ResolveSchoolID(0))
}
