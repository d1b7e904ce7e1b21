// internal/api/checkin/handlers.go
package checkin

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/api/apiutil"
	"github.com/clubmesa/courtside/internal/api/authz"
	"github.com/clubmesa/courtside/internal/booking"
	appdb "github.com/clubmesa/courtside/internal/db"
	"github.com/clubmesa/courtside/internal/notify"
)

const checkinQueryTimeout = 5 * time.Second

var (
	store     *appdb.DB
	publisher *notify.Publisher
	storeOnce sync.Once
)

type checkinRequest struct {
	PlayersArrived  int64  `json:"playersArrived"`
	PaymentMethod   string `json:"paymentMethod"`
	ReferenceNumber string `json:"referenceNumber"`
	Timestamp       string `json:"timestamp"`
}

type checkinResponse struct {
	Success       bool       `json:"success"`
	ID            int64      `json:"id"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	CheckedInAt   *time.Time `json:"checkedInAt,omitempty"`
	LedgerWritten bool       `json:"ledgerWritten"`
	Warning       string     `json:"warning,omitempty"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, p *notify.Publisher) {
	if database == nil {
		return
	}
	storeOnce.Do(func() {
		store = database
		publisher = p
	})
}

// HandleCheckin serves POST /api/v1/bookings/{id}/checkin. The ID may belong
// to a single booking or a booking group; the response shape is the same.
func HandleCheckin(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if store == nil {
		logger.Error().Msg("Handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if !apiutil.RequireClubAccess(w, r, user.ClubID) {
		return
	}

	entityID, err := apiutil.ParsePositiveInt64Field(r.PathValue("id"), "booking id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req checkinRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var when time.Time
	if req.Timestamp != "" {
		when, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			http.Error(w, "timestamp must be RFC 3339", http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkinQueryTimeout)
	defer cancel()

	result, err := booking.CheckIn(ctx, store, user.ClubID, entityID, booking.CheckinRequest{
		PlayersArrived:  req.PlayersArrived,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Timestamp:       when,
		Actor:           user.Name,
	})
	if err != nil {
		writeCheckinError(w, logger, entityID, err)
		return
	}

	resp := buildCheckinResponse(result)

	if publisher != nil {
		event := notify.CheckedInEvent{
			EntityID:      result.Entity.ID(),
			EntityKind:    string(result.Entity.Kind),
			ClubID:        user.ClubID,
			PaymentStatus: result.PaymentStatus,
		}
		if resp.CheckedInAt != nil {
			event.CheckedInAt = resp.CheckedInAt.UTC().Format(time.RFC3339)
		}
		publisher.PublishAsync(notify.RouteBookingCheckedIn, event)
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Msg("Failed to write check-in response")
	}
}

// HandleStatus serves GET /api/v1/bookings/{id}/checkin.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if store == nil {
		logger.Error().Msg("Handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if !apiutil.RequireClubAccess(w, r, user.ClubID) {
		return
	}

	entityID, err := apiutil.ParsePositiveInt64Field(r.PathValue("id"), "booking id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkinQueryTimeout)
	defer cancel()

	status, err := booking.GetCheckinStatus(ctx, store.Queries, user.ClubID, entityID)
	if err != nil {
		writeCheckinError(w, logger, entityID, err)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, status); err != nil {
		logger.Error().Err(err).Msg("Failed to write check-in status response")
	}
}

func buildCheckinResponse(result *booking.CheckinResult) checkinResponse {
	resp := checkinResponse{
		Success:       true,
		ID:            result.Entity.ID(),
		Kind:          string(result.Entity.Kind),
		PaymentStatus: result.PaymentStatus,
		LedgerWritten: result.LedgerWritten,
		Warning:       result.LedgerWarning,
	}
	if result.Entity.Kind == booking.KindGroup {
		resp.Status = result.Entity.Group.Status
		if result.Entity.Group.CheckedInAt.Valid {
			t := result.Entity.Group.CheckedInAt.Time
			resp.CheckedInAt = &t
		}
	} else {
		resp.Status = result.Entity.Booking.Status
		if result.Entity.Booking.CheckedInAt.Valid {
			t := result.Entity.Booking.CheckedInAt.Time
			resp.CheckedInAt = &t
		}
	}
	return resp
}

func writeCheckinError(w http.ResponseWriter, logger *zerolog.Logger, entityID int64, err error) {
	var validationErr booking.ValidationError
	switch {
	case errors.Is(err, booking.ErrNotFound):
		http.Error(w, "Booking not found", http.StatusNotFound)
	case errors.Is(err, booking.ErrAlreadyCheckedIn):
		http.Error(w, "Already checked in", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Int64("entity_id", entityID).Msg("Check-in failed")
		http.Error(w, "Check-in failed", http.StatusInternalServerError)
	}
}
