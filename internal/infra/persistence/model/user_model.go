// Package model holds the GORM persistence models. They mirror the SQL schema and never leave the persistence layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(128);not null"`
	Token     *string   `gorm:"type:varchar(500);uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
