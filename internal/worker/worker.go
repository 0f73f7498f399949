package worker

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/alexndrfrd/programatorultau/internal/events"
	"github.com/alexndrfrd/programatorultau/internal/notifier"
	"github.com/alexndrfrd/programatorultau/pkg/mq"
)

// Worker consumes booking and contact events and forwards them to a
// Notifier. Handler errors Nack with requeue so a transient delivery
// failure is retried.
type Worker struct {
	consumer *mq.Consumer
	notifier notifier.Notifier
}

func New(consumer *mq.Consumer, n notifier.Notifier) *Worker {
	return &Worker{consumer: consumer, notifier: n}
}

func (w *Worker) Run(ctx context.Context) error {
	msgs, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.handle(d); err != nil {
				log.Printf("[notify] handle key=%s err=%v -> Nack&requeue", d.RoutingKey, err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKBookingCreated:
		ev, err := events.Decode[events.BookingCreated](d.Body)
		if err != nil {
			return err
		}
		return w.notifier.Notify("New booking",
			fmt.Sprintf("Booking %s: %s at %s for %s <%s>", ev.BookingID, ev.Date, ev.Time, ev.Name, ev.Email))

	case events.RKContactSubmitted:
		ev, err := events.Decode[events.ContactSubmitted](d.Body)
		if err != nil {
			return err
		}
		subject := ev.Subject
		if subject == "" {
			subject = "New contact message"
		}
		return w.notifier.Notify(subject,
			fmt.Sprintf("From %s <%s>:\n\n%s", ev.Name, ev.Email, ev.Message))

	default:
		// unknown key: ack and move on
		log.Printf("[notify] skip unknown key=%s", d.RoutingKey)
	}
	return nil
}
