package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"asistencia_backend/internals/configs"
	colegioModel "asistencia_backend/internals/features/colegios/model"
	authModel "asistencia_backend/internals/features/users/auth/model"
	userModel "asistencia_backend/internals/features/users/user/model"
)

const accessTTL = 8 * time.Hour

// Mismo mensaje para email inexistente y password incorrecto.
var ErrCredencialesInvalidas = errors.New("Credenciales invalidas")

type LoginResult struct {
	Token      string
	Usuario    userModel.UsuarioModel
	SchoolName string
}

// Login verifica email/password y emite el JWT con rol y schoolId.
func Login(ctx context.Context, db *gorm.DB, email, password string) (*LoginResult, error) {
	var user userModel.UsuarioModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	var colegio colegioModel.ColegioModel
	_ = db.WithContext(ctx).Where("id = ?", user.SchoolID).First(&colegio).Error

	claims := jwt.MapClaims{
		"id":         user.ID,
		"rol":        user.Rol,
		"nombre":     user.Nombre,
		"schoolId":   user.SchoolID,
		"schoolName": colegio.Nombre,
		"exp":        time.Now().Add(accessTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Usuario: user, SchoolName: colegio.Nombre}, nil
}

// Logout agrega el token al blacklist hasta su expiracion natural.
func Logout(ctx context.Context, db *gorm.DB, token string) error {
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	return db.WithContext(ctx).Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

// HashPassword centraliza el costo de bcrypt para todo el modulo.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
