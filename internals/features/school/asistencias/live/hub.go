// Feed en vivo de asistencias registradas. El Hub implementa el Publisher del
// service y reparte cada evento a los websockets suscritos.
package live

import (
	"sync"

	"asistencia_backend/internals/features/school/asistencias/service"
)

const bufferSuscriptor = 16

type Hub struct {
	mu   sync.RWMutex
	subs map[chan service.Evento]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan service.Evento]struct{})}
}

// Publicar reparte sin bloquear: un suscriptor con el buffer lleno pierde el
// evento en vez de frenar el registro de asistencia.
func (h *Hub) Publicar(ev service.Evento) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Suscribir devuelve el canal de eventos y la funcion para darse de baja.
func (h *Hub) Suscribir() (<-chan service.Evento, func()) {
	ch := make(chan service.Evento, bufferSuscriptor)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Suscriptores() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
