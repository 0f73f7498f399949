package notifier

import "log"

// Notifier abstracts the delivery channel (console, email, later SMS or
// chat) so the worker never cares where a message lands.
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs notifications; the default when SMTP is not
// configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}
