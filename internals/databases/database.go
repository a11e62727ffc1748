package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	colegioModel "asistencia_backend/internals/features/colegios/model"
	asistenciaModel "asistencia_backend/internals/features/school/asistencias/model"
	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	estudianteModel "asistencia_backend/internals/features/school/estudiantes/model"
	periodoModel "asistencia_backend/internals/features/school/periodos/model"
	authModel "asistencia_backend/internals/features/users/auth/model"
	userModel "asistencia_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=asistencia&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		// Violaciones de constraint unique llegan como gorm.ErrDuplicatedKey
		// sin importar el driver (el registrador de asistencias depende de esto).
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ No se pudo conectar a la DB: %v", err)
	}
	DB = db
	log.Println("✅ DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crea/actualiza el esquema completo. El indice unico de asistencias
// (fecha, estudiante_id, curso_id, school_id) es la garantia de idempotencia
// del registro, por eso vive en el modelo y no en SQL suelto.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&colegioModel.ColegioModel{},
		&userModel.UsuarioModel{},
		&authModel.TokenBlacklistModel{},
		&cursoModel.CursoModel{},
		&cursoModel.CursoDocenteModel{},
		&estudianteModel.EstudianteModel{},
		&periodoModel.PeriodoModel{},
		&asistenciaModel.AsistenciaModel{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
