package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asistencia_backend/internals/features/school/asistencias/service"
)

func TestHubPublicarYSuscribir(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Suscribir()
	ch2, cancel2 := hub.Suscribir()
	defer cancel1()
	defer cancel2()
	assert.Equal(t, 2, hub.Suscriptores())

	ev := service.Evento{EstudianteID: 1, CursoID: 2, Fecha: "2025-03-10", Presente: true}
	hub.Publicar(ev)

	assert.Equal(t, ev, <-ch1)
	assert.Equal(t, ev, <-ch2)
}

func TestHubCancelarEsIdempotente(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Suscribir()
	cancel()
	cancel() // segunda llamada no debe entrar en panico

	assert.Equal(t, 0, hub.Suscriptores())

	// El canal queda cerrado para que el writer del websocket termine.
	_, abierto := <-ch
	assert.False(t, abierto)

	// Publicar sin suscriptores tampoco bloquea.
	hub.Publicar(service.Evento{EstudianteID: 9})
}

func TestHubBufferLlenoNoBloquea(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Suscribir()
	defer cancel()

	// Nadie lee: se llena el buffer y los eventos extra se descartan.
	for i := 0; i < bufferSuscriptor+5; i++ {
		hub.Publicar(service.Evento{EstudianteID: uint(i)})
	}
	require.Len(t, ch, bufferSuscriptor)

	// Lo recibido es el prefijo en orden; el resto se perdio.
	primero := <-ch
	assert.Equal(t, uint(0), primero.EstudianteID)
}
