package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender só registra a mensagem; usado quando não há REDIS_URL.
type LogSender struct {
	log *logrus.Logger
}

func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.WithFields(logrus.Fields{
		"kind":           msg.Kind,
		"to":             msg.To,
		"subject":        msg.Subject,
		"reservation_id": msg.ReservationID,
	}).Info("notification")
	return nil
}
