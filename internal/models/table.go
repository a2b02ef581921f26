package models

import "time"

type Table struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Number   int    `gorm:"uniqueIndex;not null" json:"number"`
	Capacity int    `gorm:"not null" json:"capacity"`
	Location string `gorm:"size:50;not null;index" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
