package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"asistencia_backend/internals/features/school/asistencias/model"
	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	estudianteModel "asistencia_backend/internals/features/school/estudiantes/model"
	periodoModel "asistencia_backend/internals/features/school/periodos/model"
)

type AsistenciaService struct {
	DB        *gorm.DB
	Publisher Publisher
}

func NewAsistenciaService(db *gorm.DB, pub Publisher) *AsistenciaService {
	return &AsistenciaService{DB: db, Publisher: pub}
}

/* ===================== REGISTRO DESDE QR ===================== */

type RegistroQR struct {
	QR      string
	CursoID uint
	Fecha   string
	// nil = no enviado; el registro por defecto es presente.
	Presente *bool
}

// RegistrarDesdeQR valida y persiste un evento de asistencia. El pipeline corta
// en el primer fallo y cada paso tiene su error propio:
//
//	campos → estudiante (scoped al tenant) → fecha → periodo activo → curso → insert
//
// El schoolID viene del token autenticado, nunca del cliente. La deteccion de
// duplicados se apoya unicamente en el indice unico del insert.
func (s *AsistenciaService) RegistrarDesdeQR(ctx context.Context, schoolID uint, in RegistroQR) (*model.AsistenciaModel, error) {
	var faltantes []string
	if in.QR == "" {
		faltantes = append(faltantes, "qr")
	}
	if in.CursoID == 0 {
		faltantes = append(faltantes, "cursoId")
	}
	if in.Fecha == "" {
		faltantes = append(faltantes, "fecha")
	}
	if len(faltantes) > 0 {
		return nil, &CamposFaltantesError{Campos: faltantes}
	}

	db := s.DB.WithContext(ctx)

	// El join con cursos del tenant hace doble trabajo: valida el QR y aisla
	// el tenant (un QR de otro colegio no resuelve, sin revelar que existe).
	var est estudianteModel.EstudianteModel
	if err := db.
		Joins("JOIN cursos ON cursos.id = estudiantes.curso_id AND cursos.school_id = ?", schoolID).
		Where("estudiantes.qr = ?", in.QR).
		First(&est).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEstudianteNoEncontrado
		}
		return nil, err
	}

	fechaISO, fechaT, err := NormalizarFecha(in.Fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	// Rango [inicio, fin] inclusivo. Si hay periodos solapados gana el primero
	// segun el orden de la query; por convencion no se solapan.
	var per periodoModel.PeriodoModel
	if err := db.
		Where("school_id = ? AND fecha_inicio <= ? AND fecha_fin >= ?", schoolID, fechaT, fechaT).
		First(&per).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSinPeriodoActivo
		}
		return nil, err
	}

	if est.CursoID != in.CursoID {
		return nil, ErrCursoNoCoincide
	}

	presente := true
	if in.Presente != nil {
		presente = *in.Presente
	}

	registro := model.AsistenciaModel{
		Fecha:        fechaISO,
		Presente:     presente,
		EstudianteID: est.ID,
		CursoID:      in.CursoID,
		PeriodoID:    per.ID,
		SchoolID:     schoolID,
	}
	if err := db.Create(&registro).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRegistroDuplicado
		}
		return nil, err
	}

	s.publicar(Evento{
		EstudianteID: registro.EstudianteID,
		CursoID:      registro.CursoID,
		Fecha:        registro.Fecha,
		Presente:     registro.Presente,
	})

	return &registro, nil
}

// NormalizarFecha acepta fecha pura o timestamp y la reduce a YYYY-MM-DD.
// Devuelve tambien la medianoche UTC para comparar contra rangos de periodo.
func NormalizarFecha(fecha string) (string, time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, fecha); err == nil {
			iso := t.UTC().Format("2006-01-02")
			dia, _ := time.ParseInLocation("2006-01-02", iso, time.UTC)
			return iso, dia, nil
		}
	}
	return "", time.Time{}, ErrFechaInvalida
}

/* ===================== RESUMEN POR CURSO ===================== */

type ResumenEstudiante struct {
	EstudianteID           uint    `json:"estudianteId"`
	Nombre                 string  `json:"nombre"`
	Presentes              int     `json:"presentes"`
	Ausencias              int     `json:"ausencias"`
	PorcentajeInasistencia float64 `json:"porcentajeInasistencia"`
	Alerta25               bool    `json:"alerta25"`
}

type Alerta struct {
	EstudianteID uint   `json:"estudianteId"`
	Nombre       string `json:"nombre"`
	Motivo       string `json:"motivo"`
}

type ResumenCurso struct {
	CursoID            uint                `json:"cursoId"`
	PeriodoID          uint                `json:"periodoId"`
	TotalClasesPeriodo int                 `json:"totalClasesPeriodo"`
	Resumen            []ResumenEstudiante `json:"resumen"`
	Alertas            []Alerta            `json:"alertas"`
}

// ResumenCurso agrega asistencias de un curso/periodo en porcentajes de
// inasistencia por estudiante y lista de alertas (umbral 25% inclusivo).
// totalClasesParam permite declarar mas sesiones de las registradas (reporte a
// mitad de periodo); nunca puede bajar del total observado en los datos.
func (s *AsistenciaService) ResumenCurso(ctx context.Context, schoolID, cursoID, periodoID uint, totalClasesParam int) (*ResumenCurso, error) {
	db := s.DB.WithContext(ctx)

	if err := db.Where("id = ? AND school_id = ?", cursoID, schoolID).
		First(&cursoModel.CursoModel{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNoEncontrado
		}
		return nil, err
	}
	if err := db.Where("id = ? AND school_id = ?", periodoID, schoolID).
		First(&periodoModel.PeriodoModel{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodoNoEncontrado
		}
		return nil, err
	}

	var estudiantes []estudianteModel.EstudianteModel
	if err := db.Where("curso_id = ?", cursoID).Order("id").Find(&estudiantes).Error; err != nil {
		return nil, err
	}
	var asistencias []model.AsistenciaModel
	if err := db.
		Where("curso_id = ? AND periodo_id = ? AND school_id = ?", cursoID, periodoID, schoolID).
		Find(&asistencias).Error; err != nil {
		return nil, err
	}

	fechas := make(map[string]struct{}, len(asistencias))
	porEstudiante := make(map[uint][]model.AsistenciaModel, len(estudiantes))
	for _, a := range asistencias {
		fechas[a.Fecha] = struct{}{}
		porEstudiante[a.EstudianteID] = append(porEstudiante[a.EstudianteID], a)
	}

	totalClases := len(fechas)
	if totalClasesParam > totalClases {
		totalClases = totalClasesParam
	}

	resumen := make([]ResumenEstudiante, 0, len(estudiantes))
	alertas := make([]Alerta, 0)
	for _, est := range estudiantes {
		presentes, ausenciasReg := 0, 0
		for _, a := range porEstudiante[est.ID] {
			if a.Presente {
				presentes++
			} else {
				ausenciasReg++
			}
		}
		calc := CalcularInasistencia(totalClases, presentes, ausenciasReg)
		fila := ResumenEstudiante{
			EstudianteID:           est.ID,
			Nombre:                 est.NombreCompleto(),
			Presentes:              presentes,
			Ausencias:              calc.Ausencias,
			PorcentajeInasistencia: calc.Porcentaje,
			Alerta25:               calc.Alerta25,
		}
		resumen = append(resumen, fila)
		if fila.Alerta25 {
			alertas = append(alertas, Alerta{
				EstudianteID: est.ID,
				Nombre:       fila.Nombre,
				Motivo:       "Inasistencia >= 25%",
			})
		}
	}

	return &ResumenCurso{
		CursoID:            cursoID,
		PeriodoID:          periodoID,
		TotalClasesPeriodo: totalClases,
		Resumen:            resumen,
		Alertas:            alertas,
	}, nil
}

/* ===================== FILAS PARA EXPORT ===================== */

type RegistroDetallado struct {
	model.AsistenciaModel
	Estudiante string
}

// ListarRegistros devuelve las mismas filas filtradas que consume el resumen,
// con el nombre del estudiante resuelto. Lo usa el export CSV.
func (s *AsistenciaService) ListarRegistros(ctx context.Context, schoolID, cursoID, periodoID uint) ([]RegistroDetallado, error) {
	db := s.DB.WithContext(ctx)

	if err := db.Where("id = ? AND school_id = ?", cursoID, schoolID).
		First(&cursoModel.CursoModel{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCursoNoEncontrado
		}
		return nil, err
	}
	if err := db.Where("id = ? AND school_id = ?", periodoID, schoolID).
		First(&periodoModel.PeriodoModel{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodoNoEncontrado
		}
		return nil, err
	}

	var asistencias []model.AsistenciaModel
	if err := db.
		Where("curso_id = ? AND periodo_id = ? AND school_id = ?", cursoID, periodoID, schoolID).
		Order("fecha, estudiante_id").
		Find(&asistencias).Error; err != nil {
		return nil, err
	}

	var estudiantes []estudianteModel.EstudianteModel
	if err := db.Where("curso_id = ?", cursoID).Find(&estudiantes).Error; err != nil {
		return nil, err
	}
	nombres := make(map[uint]string, len(estudiantes))
	for _, e := range estudiantes {
		nombres[e.ID] = e.NombreCompleto()
	}

	filas := make([]RegistroDetallado, 0, len(asistencias))
	for _, a := range asistencias {
		filas = append(filas, RegistroDetallado{AsistenciaModel: a, Estudiante: nombres[a.EstudianteID]})
	}
	return filas, nil
}
