package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/restaurant-api/internal/models"
)

type Kind string

const (
	KindReservationReceived  Kind = "reservation_received"
	KindReservationConfirmed Kind = "reservation_confirmed"
)

type Message struct {
	Kind          Kind      `json:"kind"`
	To            string    `json:"to"`
	Subject       string    `json:"subject"`
	Body          string    `json:"body"`
	ReservationID uint      `json:"reservation_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Sender entrega uma mensagem ao canal externo (fila, e-mail...).
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func ReservationReceived(user *models.User) Message {
	return Message{
		Kind:      KindReservationReceived,
		To:        user.Email,
		Subject:   fmt.Sprintf("Reserva recebida, %s!", user.Name),
		Body:      "Em breve você receberá um e-mail com a confirmação da sua reserva.",
		CreatedAt: time.Now().UTC(),
	}
}

func ReservationConfirmed(user *models.User, res *models.Reservation) Message {
	return Message{
		Kind:    KindReservationConfirmed,
		To:      user.Email,
		Subject: fmt.Sprintf("Boas notícias, %s!", user.Name),
		Body: fmt.Sprintf(
			"Sua reserva para %d pessoas em %s (%s) foi confirmada.",
			res.Guests, res.Date, res.Time,
		),
		ReservationID: res.ID,
		CreatedAt:     time.Now().UTC(),
	}
}
