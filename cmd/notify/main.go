package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/alexndrfrd/programatorultau/internal/events"
	"github.com/alexndrfrd/programatorultau/internal/notifier"
	"github.com/alexndrfrd/programatorultau/internal/worker"
	"github.com/alexndrfrd/programatorultau/pkg/mq"
	"github.com/alexndrfrd/programatorultau/pkg/obs"
)

type Cfg struct {
	RabbitURL       string `envconfig:"RABBIT_URL" required:"true"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	NotifyQueue     string `envconfig:"NOTIFY_QUEUE" default:"notify.q"`
	Prefetch        int    `envconfig:"NOTIFY_PREFETCH" default:"8"`

	// SMTP; when unset, notifications go to the console
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL"`
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	var cfg Cfg
	must(0, envconfig.Process("", &cfg))

	shutdownTracer := obs.InitTracer("booking-notify")
	defer func() { _ = shutdownTracer(context.Background()) }()

	var n notifier.Notifier = notifier.NewConsole()
	if cfg.SMTPHost != "" && cfg.AdminEmail != "" {
		n = notifier.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPUser, cfg.AdminEmail)
		log.Println("[notify] using SMTP notifier ->", cfg.AdminEmail)
	}

	cons := must(mq.NewConsumer(cfg.RabbitURL, cfg.BookingExchange, cfg.NotifyQueue,
		[]string{events.RKBookingCreated, events.RKContactSubmitted}, cfg.Prefetch))
	defer cons.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.New(cons, n)
	log.Println("[notify] consuming", cfg.NotifyQueue)
	must(0, w.Run(ctx))
	log.Println("[notify] stopped")
}
