package model

import "time"

// TokenBlacklistModel guarda tokens invalidados por logout hasta su expiracion;
// el scheduler de limpieza borra las filas vencidas.
type TokenBlacklistModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"-"`
	ExpiredAt time.Time `gorm:"not null;index" json:"expiredAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
