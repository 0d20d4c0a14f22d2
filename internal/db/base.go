package db

import "time"

// Base holds the columns shared by every table.
type Base struct {
	ID        string `gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
