package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const sendTimeout = 10 * time.Second

type Dispatcher struct {
	sender Sender
	log    *logrus.Logger
	queue  chan Message
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sender Sender, log *logrus.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 100
	}

	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan Message, buffer),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.sender.Send(ctx, msg)
		cancel()

		if err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"kind":           msg.Kind,
				"to":             msg.To,
				"reservation_id": msg.ReservationID,
			}).Warn("notification failed")
		}
	}
}

// Dispatch nunca bloqueia: fila cheia ou fechada descarta a mensagem.
func (d *Dispatcher) Dispatch(msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.WithField("kind", msg.Kind).Warn("notification dispatcher closed, dropping message")
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.log.WithField("kind", msg.Kind).Warn("notification queue full, dropping message")
	}
}

// Close esvazia a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
