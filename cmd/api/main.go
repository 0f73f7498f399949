package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alexndrfrd/programatorultau/internal/handlers"
	"github.com/alexndrfrd/programatorultau/internal/middlewares"
	"github.com/alexndrfrd/programatorultau/internal/repository"
	"github.com/alexndrfrd/programatorultau/internal/service"
	"github.com/alexndrfrd/programatorultau/pkg/config"
	"github.com/alexndrfrd/programatorultau/pkg/mq"
	"github.com/alexndrfrd/programatorultau/pkg/obs"
)

const shutdownTimeout = 10 * time.Second

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("booking-api")
	defer func() { _ = shutdownTracer(context.Background()) }()

	// DB. TranslateError lets the repo see gorm.ErrDuplicatedKey for
	// unique-constraint violations.
	gdb := must(gorm.Open(postgres.Open(cfg.PGBookingDSN), &gorm.Config{TranslateError: true}))
	repo := repository.NewBookingRepo(gdb)
	must(0, repo.Migrate())

	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
	defer pub.Close()

	bookingSvc := must(service.NewBookingSvc(repo, pub, cfg.SlotTimes, cfg.SlotCacheSize))
	contactSvc := service.NewContactSvc(repo, pub)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	bh := handlers.NewBookingHandler(bookingSvc)
	ch := handlers.NewContactHandler(contactSvc)
	api := r.Group("/api")
	{
		api.POST("/bookings", bh.Create)
		api.GET("/bookings", bh.GetByDate)
		api.GET("/bookings/slots", bh.Slots)
		api.POST("/contact", ch.Submit)

		admin := api.Group("")
		admin.Use(middlewares.JWTAuth(cfg.JWTSecret), middlewares.RequireRole("ADMIN"))
		admin.GET("/bookings/all", bh.ListAll)
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	srvErr := make(chan error, 1)
	go func() {
		log.Println("[api] listening on", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[api] server error: %v", err)
		}
	case <-sig:
		log.Println("[api] shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
	log.Println("[api] stopped")
}
