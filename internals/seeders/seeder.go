// Seeder de datos de ejemplo multi-colegio para desarrollo.
package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"asistencia_backend/internals/constants"
	colegioModel "asistencia_backend/internals/features/colegios/model"
	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	estudianteModel "asistencia_backend/internals/features/school/estudiantes/model"
	periodoModel "asistencia_backend/internals/features/school/periodos/model"
	authService "asistencia_backend/internals/features/users/auth/service"
	userModel "asistencia_backend/internals/features/users/user/model"
)

// Run carga datos de ejemplo. Es idempotente: si ya hay colegios no hace nada.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&colegioModel.ColegioModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[INFO] Seed omitido: ya existen colegios")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		central := colegioModel.ColegioModel{Nombre: "Colegio Central"}
		norte := colegioModel.ColegioModel{Nombre: "Colegio Norte"}
		for _, colegio := range []*colegioModel.ColegioModel{&central, &norte} {
			if err := tx.Create(colegio).Error; err != nil {
				return err
			}
		}

		usuarios := []struct {
			nombre, email, password string
			rol                     constants.Role
			schoolID                uint
		}{
			{"Admin Central", "admin@central.com", "admin123", constants.RoleAdmin, central.ID},
			{"Docente Central", "docente@central.com", "docente123", constants.RoleDocente, central.ID},
			{"Docente Central 2", "docente2@central.com", "docente123", constants.RoleDocente, central.ID},
			{"Admin Norte", "admin@norte.com", "admin123", constants.RoleAdmin, norte.ID},
			{"Docente Norte", "docente@norte.com", "docente123", constants.RoleDocente, norte.ID},
		}
		creados := make(map[string]uint, len(usuarios))
		for _, u := range usuarios {
			hash, err := authService.HashPassword(u.password)
			if err != nil {
				return err
			}
			usuario := userModel.UsuarioModel{
				Nombre:       u.nombre,
				Email:        u.email,
				PasswordHash: hash,
				Rol:          u.rol,
				SchoolID:     u.schoolID,
			}
			if err := tx.Create(&usuario).Error; err != nil {
				return err
			}
			creados[u.email] = usuario.ID
		}

		cursoCentral := cursoModel.CursoModel{Nombre: "9A", SchoolID: central.ID}
		cursoNorte := cursoModel.CursoModel{Nombre: "10B", SchoolID: norte.ID}
		for _, curso := range []*cursoModel.CursoModel{&cursoCentral, &cursoNorte} {
			if err := tx.Create(curso).Error; err != nil {
				return err
			}
		}

		asignaciones := []cursoModel.CursoDocenteModel{
			{CursoID: cursoCentral.ID, UsuarioID: creados["docente@central.com"], SchoolID: central.ID},
			{CursoID: cursoCentral.ID, UsuarioID: creados["docente2@central.com"], SchoolID: central.ID},
			{CursoID: cursoNorte.ID, UsuarioID: creados["docente@norte.com"], SchoolID: norte.ID},
		}
		for _, a := range asignaciones {
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}

		estudiantes := []estudianteModel.EstudianteModel{
			{Nombres: "Ana", Apellidos: "Perez", QR: "QR-ANA-001", CursoID: cursoCentral.ID},
			{Nombres: "Luis", Apellidos: "Gomez", QR: "QR-LUIS-002", CursoID: cursoCentral.ID},
			{Nombres: "Sara", Apellidos: "Lopez", QR: "QR-SARA-003", CursoID: cursoCentral.ID},
			{Nombres: "Marta", Apellidos: "Quinonez", QR: "QR-MARTA-004", CursoID: cursoNorte.ID},
		}
		for _, e := range estudiantes {
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
		}

		// 4 periodos de ~10 semanas por colegio
		periodosBase := []struct{ nombre, inicio, fin string }{
			{"P1", "2025-02-03", "2025-04-11"},
			{"P2", "2025-04-28", "2025-07-04"},
			{"P3", "2025-07-21", "2025-09-26"},
			{"P4", "2025-10-06", "2025-12-12"},
		}
		for _, colegioID := range []uint{central.ID, norte.ID} {
			for _, p := range periodosBase {
				inicio, err := time.ParseInLocation("2006-01-02", p.inicio, time.UTC)
				if err != nil {
					return err
				}
				fin, err := time.ParseInLocation("2006-01-02", p.fin, time.UTC)
				if err != nil {
					return err
				}
				if err := tx.Create(&periodoModel.PeriodoModel{
					Nombre:      p.nombre,
					FechaInicio: inicio,
					FechaFin:    fin,
					SchoolID:    colegioID,
				}).Error; err != nil {
					return err
				}
			}
		}

		log.Println("✅ Seed listo. Admins: admin@central.com / admin@norte.com (pass: admin123)")
		return nil
	})
}
