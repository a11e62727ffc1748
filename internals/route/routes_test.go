package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"asistencia_backend/internals/configs"
	database "asistencia_backend/internals/databases"
	"asistencia_backend/internals/features/school/asistencias/live"
	cursoModel "asistencia_backend/internals/features/school/cursos/model"
	periodoModel "asistencia_backend/internals/features/school/periodos/model"
	"asistencia_backend/internals/seeders"
)

// newTestApp levanta la app completa contra sqlite en memoria con el seed de
// desarrollo cargado: dos colegios, cursos 9A/10B, estudiantes y periodos 2025.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "secreto-de-test"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, seeders.Run(db))

	app := fiber.New()
	SetupRoutes(app, db, live.NewHub())
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestFlujoCompletoAsistencia(t *testing.T) {
	app, db := newTestApp(t)

	var curso cursoModel.CursoModel
	require.NoError(t, db.Where("nombre = ?", "9A").First(&curso).Error)
	var periodo periodoModel.PeriodoModel
	require.NoError(t, db.Where("nombre = ? AND school_id = ?", "P1", curso.SchoolID).First(&periodo).Error)

	token := login(t, app, "docente@central.com", "docente123")

	t.Run("registro por QR", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/asistencias/qr", token, fiber.Map{
			"qr":      "QR-ANA-001",
			"cursoId": curso.ID,
			"fecha":   "2025-03-10",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Asistencia registrada", body["message"])
		registro, ok := body["registro"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2025-03-10", registro["fecha"])
		assert.Equal(t, true, registro["presente"])
		assert.Equal(t, float64(periodo.ID), registro["periodoId"])
	})

	t.Run("segundo escaneo el mismo dia devuelve 409", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/asistencias/qr", token, fiber.Map{
			"qr":      "QR-ANA-001",
			"cursoId": curso.ID,
			"fecha":   "2025-03-10",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("QR del otro colegio devuelve 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/asistencias/qr", token, fiber.Map{
			"qr":      "QR-MARTA-004",
			"cursoId": curso.ID,
			"fecha":   "2025-03-10",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("resumen del curso", func(t *testing.T) {
		// Luis ausente para provocar una alerta.
		presente := false
		resp := doJSON(t, app, http.MethodPost, "/api/asistencias/qr", token, fiber.Map{
			"qr":       "QR-LUIS-002",
			"cursoId":  curso.ID,
			"fecha":    "2025-03-10",
			"presente": presente,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/asistencias/resumen?cursoId=%d&periodoId=%d", curso.ID, periodo.ID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(1), body["totalClasesPeriodo"])
		resumen, ok := body["resumen"].([]any)
		require.True(t, ok)
		assert.Len(t, resumen, 3) // Ana, Luis y Sara
		alertas, ok := body["alertas"].([]any)
		require.True(t, ok)
		require.Len(t, alertas, 2) // Luis ausente y Sara sin registro
	})

	t.Run("export CSV", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/reportes/asistencias.csv?cursoId=%d&periodoId=%d", curso.ID, periodo.ID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "asistencias.csv")

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		csv := string(raw)
		assert.True(t, strings.HasPrefix(csv, "fecha,cursoId,periodoId,estudianteId,estudiante,presente"))
		assert.Contains(t, csv, "Ana Perez,SI")
		assert.Contains(t, csv, "Luis Gomez,NO")
	})

	t.Run("export CSV rechaza ids negativos", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/reportes/asistencias.csv?cursoId=-1&periodoId=%d", periodo.ID), token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAutenticacionYRoles(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("sin token devuelve 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/cursos", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token invalido devuelve 401", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/cursos", "no-es-un-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("credenciales invalidas", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "docente@central.com",
			"password": "incorrecta",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("docente no puede crear colegios", func(t *testing.T) {
		token := login(t, app, "docente@central.com", "docente123")
		resp := doJSON(t, app, http.MethodPost, "/api/colegios", token, fiber.Map{
			"nombre": "Colegio Pirata",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin si puede crear colegios", func(t *testing.T) {
		token := login(t, app, "admin@central.com", "admin123")
		resp := doJSON(t, app, http.MethodPost, "/api/colegios", token, fiber.Map{
			"nombre": "Colegio Nuevo",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("logout invalida el token", func(t *testing.T) {
		token := login(t, app, "docente@central.com", "docente123")

		resp := doJSON(t, app, http.MethodGet, "/api/cursos", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodGet, "/api/cursos", token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAislamientoDeTenant(t *testing.T) {
	app, db := newTestApp(t)

	var cursoNorte cursoModel.CursoModel
	require.NoError(t, db.Where("nombre = ?", "10B").First(&cursoNorte).Error)
	var periodoNorte periodoModel.PeriodoModel
	require.NoError(t, db.Where("nombre = ? AND school_id = ?", "P1", cursoNorte.SchoolID).First(&periodoNorte).Error)

	// Token del colegio Central consultando recursos del colegio Norte.
	token := login(t, app, "docente@central.com", "docente123")

	resp := doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/asistencias/resumen?cursoId=%d&periodoId=%d", cursoNorte.ID, periodoNorte.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/reportes/asistencias.csv?cursoId=%d&periodoId=%d", cursoNorte.ID, periodoNorte.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
