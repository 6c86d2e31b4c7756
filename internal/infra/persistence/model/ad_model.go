package model

import "time"

// AdModel mirrors the 'ads' table. Author references users.id.
type AdModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"not null"`
	Author      int64     `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AdModel) TableName() string {
	return "ads"
}
