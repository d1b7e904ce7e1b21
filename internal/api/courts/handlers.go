// internal/api/courts/handlers.go
package courts

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/api/apiutil"
	"github.com/clubmesa/courtside/internal/api/authz"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

const courtQueryTimeout = 5 * time.Second

var (
	queries     *dbgen.Queries
	queriesOnce sync.Once
)

type createCourtRequest struct {
	Name         string `json:"name"`
	DisplayOrder int64  `json:"displayOrder"`
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

// HandleList serves GET /api/v1/courts, restricted to active courts.
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	user := requireStaff(w, r)
	if user == nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), courtQueryTimeout)
	defer cancel()

	courts, err := queries.ListActiveCourts(ctx, user.ClubID)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", user.ClubID).Msg("Failed to list courts")
		http.Error(w, "Failed to load courts", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"courts": courts}); err != nil {
		logger.Error().Err(err).Msg("Failed to write courts response")
	}
}

// HandleCreate serves POST /api/v1/courts.
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	user := requireStaff(w, r)
	if user == nil {
		return
	}

	var req createCourtRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "court name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), courtQueryTimeout)
	defer cancel()

	court, err := queries.CreateCourt(ctx, dbgen.CreateCourtParams{
		ClubID:       user.ClubID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	})
	if err != nil {
		logger.Error().Err(err).Int64("club_id", user.ClubID).Msg("Failed to create court")
		http.Error(w, "Failed to create court", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, court); err != nil {
		logger.Error().Err(err).Msg("Failed to write court response")
	}
}

// HandleDeactivate serves DELETE /api/v1/courts/{id}. Courts are never
// removed; deactivation keeps historical bookings intact.
func HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	user := requireStaff(w, r)
	if user == nil {
		return
	}

	courtID, err := apiutil.ParsePositiveInt64Field(r.PathValue("id"), "court id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), courtQueryTimeout)
	defer cancel()

	rows, err := queries.DeactivateCourt(ctx, dbgen.DeactivateCourtParams{ID: courtID, ClubID: user.ClubID})
	if err != nil {
		logger.Error().Err(err).Int64("court_id", courtID).Msg("Failed to deactivate court")
		http.Error(w, "Failed to deactivate court", http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Court not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
