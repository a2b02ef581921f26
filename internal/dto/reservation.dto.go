package dto

import "time"

// CustomerReservationDTO é a reserva com dados do dono e números das mesas.
type CustomerReservationDTO struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Tables    []int     `json:"tables"`
	CreatedAt time.Time `json:"created_at"`
}
