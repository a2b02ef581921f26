package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date   string `gorm:"size:10;not null;index" json:"date"`
	Time   string `gorm:"column:time;size:20;not null" json:"time"`
	Guests int    `gorm:"not null" json:"guests"`
	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Assignments []TableAssignment `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
