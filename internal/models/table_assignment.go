package models

import "time"

// TableAssignment prende uma mesa a uma reserva num slot (data + horário).
// O índice único idx_table_slot impede duas reservas na mesma mesa/slot.
type TableAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint `gorm:"not null;index" json:"reservation_id"`

	TableID uint   `gorm:"not null;uniqueIndex:idx_table_slot,priority:1" json:"table_id"`
	Table   *Table `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"table,omitempty"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_table_slot,priority:2" json:"date"`
	Time string `gorm:"column:time;size:20;not null;uniqueIndex:idx_table_slot,priority:3" json:"time"`

	CreatedAt time.Time `json:"created_at"`
}
