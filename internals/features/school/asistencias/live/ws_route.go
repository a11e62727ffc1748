package live

import (
	"errors"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"asistencia_backend/internals/configs"
)

// WSRoutes expone GET /ws/asistencias: mismo JWT de la API REST, pasado por
// header Authorization o por ?token= (los clientes websocket del navegador no
// siempre pueden mandar headers).
func WSRoutes(app *fiber.App, hub *Hub) {
	app.Use("/ws/asistencias", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			const p = "Bearer "
			if auth := c.Get("Authorization"); strings.HasPrefix(auth, p) {
				token = strings.TrimSpace(auth[len(p):])
			}
		}
		if err := verificarToken(token); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token invalido")
		}
		return c.Next()
	})

	app.Get("/ws/asistencias", websocket.New(func(conn *websocket.Conn) {
		eventos, cancelar := hub.Suscribir()
		defer cancelar()

		// Lector solo para detectar el cierre del peer.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev, ok := <-eventos:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}))
}

func verificarToken(token string) error {
	if token == "" {
		return errors.New("token requerido")
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metodo de firma inesperado")
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return err
	}
	if _, ok := claims["schoolId"]; !ok {
		return errors.New("token sin schoolId")
	}
	return nil
}
