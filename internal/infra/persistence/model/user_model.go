// Package model contains the GORM persistence models mirroring the database
// schema produced by the bootstrap procedure.
package model

import (
	"time"

	"happyshop/internal/domain/entity"
)

// UserModel mirrors the 'user_table' table. The store assigns user_id via an
// identity column; username carries the uniqueness constraint that backs
// signup safety.
type UserModel struct {
	UserID       int64     `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;type:varchar(50);unique;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(200);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user_table"
}

// ToDomain maps the persistence model to the pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:           m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedAt:    m.CreatedAt,
	}
}

// FromUserDomain maps a domain entity to the persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		UserID:       user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
	}
}
