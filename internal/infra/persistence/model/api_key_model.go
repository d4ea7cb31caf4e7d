package model

import (
	"time"

	"github.com/google/uuid"
)

// ApiKeyModel mirrors the 'api_keys' table. Scopes are stored as a JSONB array.
type ApiKeyModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	KeyPrefix  string    `gorm:"type:varchar(16);not null"`
	KeyHash    string    `gorm:"type:varchar(255);unique;not null"`
	Scopes     []string  `gorm:"type:jsonb;serializer:json"`
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApiKeyModel) TableName() string {
	return "api_keys"
}
