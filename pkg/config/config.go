package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App is the configuration of the booking API. The notification worker
// carries its own smaller struct in cmd/notify.
type App struct {
	// Network
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:8000"`

	// DB
	PGBookingDSN string `envconfig:"PG_BOOKING_DSN" required:"true"`

	// JWT (admin endpoints)
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Slots: the closed set of bookable starting times. Configuration,
	// never user input.
	SlotTimes     []string `envconfig:"SLOT_TIMES" default:"09:00,10:00,11:00,12:00,14:00,15:00,16:00,17:00"`
	SlotCacheSize int      `envconfig:"SLOT_CACHE_SIZE" default:"256"`

	// RabbitMQ for publishing booking.* / contact.* events
	RabbitURL       string `envconfig:"RABBIT_URL" required:"true"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
