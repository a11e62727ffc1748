package service

import "log"

// Evento es la notificacion emitida tras registrar una asistencia.
type Evento struct {
	EstudianteID uint   `json:"estudianteId"`
	CursoID      uint   `json:"cursoId"`
	Fecha        string `json:"fecha"`
	Presente     bool   `json:"presente"`
}

// Publisher recibe eventos de asistencia registrada. La publicacion es
// best-effort: el registrador nunca falla por culpa del publisher.
type Publisher interface {
	Publicar(Evento)
}

func (s *AsistenciaService) publicar(ev Evento) {
	if s.Publisher == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[WARN] publisher de asistencias fallo: %v", r)
		}
	}()
	s.Publisher.Publicar(ev)
}
