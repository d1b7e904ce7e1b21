// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/api"
	"github.com/clubmesa/courtside/internal/api/auth"
	"github.com/clubmesa/courtside/internal/api/bookinggroups"
	"github.com/clubmesa/courtside/internal/api/checkin"
	"github.com/clubmesa/courtside/internal/api/courts"
	"github.com/clubmesa/courtside/internal/api/operatinghours"
	"github.com/clubmesa/courtside/internal/config"
	"github.com/clubmesa/courtside/internal/db"
	"github.com/clubmesa/courtside/internal/email"
	"github.com/clubmesa/courtside/internal/notify"
	"github.com/clubmesa/courtside/internal/paylink"
	"github.com/clubmesa/courtside/internal/ratelimit"
)

func newServer(cfg *config.Config, database *db.DB) *http.Server {
	router := http.NewServeMux()

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithAuth(auth.GatewayHeaderResolver{}),
	)

	publisher := notify.NewPublisher(cfg.Notify.URL, cfg.Notify.Exchange)
	limiter := ratelimit.New(ratelimit.DefaultConfig())

	var sender email.EmailSender
	if cfg.Email.AccessKeyID != "" {
		sesClient, err := email.NewSESClient(
			cfg.Email.AccessKeyID,
			cfg.Email.SecretAccessKey,
			cfg.Email.Region,
			cfg.Email.Sender,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Email disabled: SES client init failed")
		} else {
			sender = sesClient
		}
	}

	var links paylink.Generator
	if cfg.Payments.CheckoutBaseURL != "" {
		links = paylink.NewHostedGenerator(cfg.Payments.CheckoutBaseURL)
	}

	bookinggroups.InitHandlers(database, bookinggroups.Deps{
		Limiter:     limiter,
		Publisher:   publisher,
		Email:       sender,
		Links:       links,
		PhoneRegion: cfg.Booking.DefaultPhoneRegion,
		TrustProxy:  cfg.App.TrustProxy,
	})
	checkin.InitHandlers(database, publisher)
	courts.InitHandlers(database.Queries)
	operatinghours.InitHandlers(database.Queries)

	registerRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/v1/booking-groups", bookinggroups.HandleList)
	mux.HandleFunc("POST /api/v1/booking-groups", bookinggroups.HandleCreate)

	mux.HandleFunc("POST /api/v1/bookings/{id}/checkin", checkin.HandleCheckin)
	mux.HandleFunc("GET /api/v1/bookings/{id}/checkin", checkin.HandleStatus)

	mux.HandleFunc("GET /api/v1/courts", courts.HandleList)
	mux.HandleFunc("POST /api/v1/courts", courts.HandleCreate)
	mux.HandleFunc("DELETE /api/v1/courts/{id}", courts.HandleDeactivate)

	mux.HandleFunc("GET /api/v1/operating-hours", operatinghours.HandleList)
	mux.HandleFunc("PUT /api/v1/operating-hours/{day}", operatinghours.HandleUpdate)
}
