// internal/api/operatinghours/handlers.go
package operatinghours

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/api/apiutil"
	"github.com/clubmesa/courtside/internal/api/authz"
	"github.com/clubmesa/courtside/internal/booking"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

const (
	hoursQueryTimeout = 5 * time.Second
	defaultOpensAt    = "08:00"
	defaultClosesAt   = "21:00"
)

var (
	queries     *dbgen.Queries
	queriesOnce sync.Once
)

type hoursRequest struct {
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
	IsClosed bool   `json:"isClosed"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries) {
	if q == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = q
	})
}

// HandleList serves GET /api/v1/operating-hours. Days without a stored row
// fall back to the default window.
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	user := requireStaff(w, r)
	if user == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), hoursQueryTimeout)
	defer cancel()

	stored, err := queries.ListClubHours(ctx, user.ClubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", user.ClubID).Msg("Failed to list operating hours")
		http.Error(w, "Failed to load operating hours", http.StatusInternalServerError)
		return
	}

	byDay := make(map[int64]dbgen.ClubHour, len(stored))
	for _, h := range stored {
		byDay[h.DayOfWeek] = h
	}
	week := make([]dbgen.ClubHour, 0, 7)
	for day := int64(0); day < 7; day++ {
		if h, ok := byDay[day]; ok {
			week = append(week, h)
			continue
		}
		week = append(week, dbgen.ClubHour{
			ClubID:    user.ClubID,
			DayOfWeek: day,
			OpensAt:   defaultOpensAt,
			ClosesAt:  defaultClosesAt,
		})
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"hours": week}); err != nil {
		logger.Error().Err(err).Msg("Failed to write operating hours response")
	}
}

// HandleUpdate serves PUT /api/v1/operating-hours/{day}.
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	user := requireStaff(w, r)
	if user == nil {
		return
	}

	day, err := strconv.ParseInt(r.PathValue("day"), 10, 64)
	if err != nil || day < 0 || day > 6 {
		http.Error(w, "day must be between 0 (Sunday) and 6 (Saturday)", http.StatusBadRequest)
		return
	}

	var req hoursRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !req.IsClosed {
		if _, err := booking.ParseClock(req.OpensAt); err != nil {
			http.Error(w, "opensAt must be HH:MM", http.StatusBadRequest)
			return
		}
		if _, err := booking.ParseClock(req.ClosesAt); err != nil {
			http.Error(w, "closesAt must be HH:MM", http.StatusBadRequest)
			return
		}
		if req.ClosesAt <= req.OpensAt {
			http.Error(w, "closesAt must be after opensAt", http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), hoursQueryTimeout)
	defer cancel()

	hours, err := queries.UpsertClubHours(ctx, dbgen.UpsertClubHoursParams{
		ClubID:    user.ClubID,
		DayOfWeek: day,
		OpensAt:   req.OpensAt,
		ClosesAt:  req.ClosesAt,
		IsClosed:  req.IsClosed,
	})
	if err != nil {
		logger.Error().Err(err).Int64("club_id", user.ClubID).Int64("day", day).Msg("Failed to update operating hours")
		http.Error(w, "Failed to update operating hours", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, hours); err != nil {
		logger.Error().Err(err).Msg("Failed to write operating hours response")
	}
}

func requireStaff(w http.ResponseWriter, r *http.Request) *authz.AuthUser {
	if queries == nil {
		log.Ctx(r.Context()).Error().Msg("Handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}

	user := authz.UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}
	if !user.IsStaff {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil
	}
	if !apiutil.RequireClubAccess(w, r, user.ClubID) {
		return nil
	}
	return user
}
