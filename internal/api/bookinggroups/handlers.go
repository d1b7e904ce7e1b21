// internal/api/bookinggroups/handlers.go
package bookinggroups

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/api/apiutil"
	"github.com/clubmesa/courtside/internal/api/authz"
	"github.com/clubmesa/courtside/internal/booking"
	appdb "github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
	"github.com/clubmesa/courtside/internal/email"
	"github.com/clubmesa/courtside/internal/notify"
	"github.com/clubmesa/courtside/internal/paylink"
	"github.com/clubmesa/courtside/internal/phone"
	"github.com/clubmesa/courtside/internal/ratelimit"
)

const groupQueryTimeout = 10 * time.Second

// Deps are the collaborators wired in at startup. All but the store are
// optional; nil members disable the corresponding side effect.
type Deps struct {
	Limiter     *ratelimit.Limiter
	Publisher   *notify.Publisher
	Email       email.EmailSender
	Links       paylink.Generator
	PhoneRegion string
	TrustProxy  bool
}

var (
	queries     *dbgen.Queries
	store       *appdb.DB
	alloc       *booking.Allocator
	deps        Deps
	queriesOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, d Deps) {
	if database == nil {
		return
	}
	queriesOnce.Do(func() {
		queries = database.Queries
		store = database
		deps = d
		alloc = booking.NewAllocator(database, d.Links)
	})
}

type createGroupRequest struct {
	Name                string  `json:"name"`
	Type                string  `json:"type"`
	CourtIDs            []int64 `json:"courtIds"`
	MultiCourtCount     int64   `json:"multiCourtCount"`
	Date                string  `json:"date"`
	StartTime           string  `json:"startTime"`
	Duration            int64   `json:"duration"`
	PlayerName          string  `json:"playerName"`
	PlayerPhone         string  `json:"playerPhone"`
	PlayerEmail         string  `json:"playerEmail"`
	TotalPlayers        int64   `json:"totalPlayers"`
	PlayersPerCourt     int64   `json:"playersPerCourt"`
	SplitPaymentEnabled bool    `json:"splitPaymentEnabled"`
	SplitPaymentCount   int64   `json:"splitPaymentCount"`
	Notes               string  `json:"notes"`
	PaymentMethod       string  `json:"paymentMethod"`
	PaymentType         string  `json:"paymentType"`
}

type groupSummary struct {
	Courts             int    `json:"courts"`
	TotalPrice         int64  `json:"totalPrice"`
	PlayersExpected    int64  `json:"playersExpected"`
	PlayersPerCourt    int64  `json:"playersPerCourt"`
	SplitPayments      int    `json:"splitPayments"`
	AutoSelectedCourts int64  `json:"autoSelectedCourts"`
	TotalPriceDisplay  string `json:"totalPriceDisplay"`
}

type createGroupResponse struct {
	Success      bool               `json:"success"`
	BookingGroup dbgen.BookingGroup `json:"bookingGroup"`
	PaymentLink  string             `json:"paymentLink,omitempty"`
	Summary      groupSummary       `json:"summary"`
	Warnings     []string           `json:"warnings,omitempty"`
}

type groupListItem struct {
	dbgen.BookingGroup
	SplitPaymentProgress string   `json:"splitPaymentProgress"`
	SplitPaymentComplete bool     `json:"splitPaymentComplete"`
	CourtNames           []string `json:"courtNames"`
}

type errorResponse struct {
	Success         bool     `json:"success"`
	Error           string   `json:"error"`
	Field           string   `json:"field,omitempty"`
	RequiredCourts  int64    `json:"requiredCourts,omitempty"`
	AvailableCourts *int64   `json:"availableCourts,omitempty"`
	Courts          []string `json:"courts,omitempty"`
	RetryAfter      int64    `json:"retryAfter,omitempty"`
}

// HandleList serves GET /api/v1/booking-groups with optional date, status,
// and type filters.
func HandleList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
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

	ctx, cancel := context.WithTimeout(r.Context(), groupQueryTimeout)
	defer cancel()

	params := dbgen.ListBookingGroupsParams{
		ClubID: user.ClubID,
		Date:   strings.TrimSpace(r.URL.Query().Get("date")),
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Type:   strings.TrimSpace(r.URL.Query().Get("type")),
	}
	groups, err := queries.ListBookingGroups(ctx, params)
	if err != nil {
		logger.Error().Err(err).Int64("club_id", user.ClubID).Msg("Failed to list booking groups")
		http.Error(w, "Failed to load booking groups", http.StatusInternalServerError)
		return
	}

	items := make([]groupListItem, 0, len(groups))
	for _, group := range groups {
		item := groupListItem{BookingGroup: group}

		courtNames, err := queries.ListGroupCourtNames(ctx, group.ID)
		if err != nil {
			logger.Error().Err(err).Int64("group_id", group.ID).Msg("Failed to load court names")
		} else {
			item.CourtNames = courtNames
		}

		splits, err := queries.ListSplitPaymentsForGroup(ctx, group.ID)
		if err != nil {
			logger.Error().Err(err).Int64("group_id", group.ID).Msg("Failed to load split payments")
		}
		item.SplitPaymentProgress, item.SplitPaymentComplete = splitProgress(splits)

		items = append(items, item)
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"bookingGroups": items}); err != nil {
		logger.Error().Err(err).Msg("Failed to write booking groups response")
	}
}

// HandleCreate serves POST /api/v1/booking-groups.
func HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req createGroupRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		writeError(w, logger, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	normalizedPhone, err := phone.Normalize(req.PlayerPhone, deps.PhoneRegion)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "playerPhone"})
		return
	}

	clientIP := ratelimit.GetClientIP(r, deps.TrustProxy)
	if deps.Limiter != nil {
		if result := deps.Limiter.CheckCreate(normalizedPhone, clientIP); !result.Allowed {
			ratelimit.LogRateLimitExceeded("booking_create", normalizedPhone, clientIP, result.Reason)
			writeError(w, logger, http.StatusTooManyRequests, errorResponse{
				Error:      "too many reservation requests, try again later",
				RetryAfter: int64(result.RetryAfter.Seconds()),
			})
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), groupQueryTimeout)
	defer cancel()

	result, err := alloc.CreateGroupReservation(ctx, booking.GroupRequest{
		ClubID:              user.ClubID,
		Name:                req.Name,
		Type:                req.Type,
		CourtIDs:            req.CourtIDs,
		MultiCourtCount:     req.MultiCourtCount,
		Date:                req.Date,
		StartTime:           req.StartTime,
		DurationMinutes:     req.Duration,
		PlayerName:          req.PlayerName,
		PlayerPhone:         normalizedPhone,
		PlayerEmail:         req.PlayerEmail,
		TotalPlayers:        req.TotalPlayers,
		PlayersPerCourt:     req.PlayersPerCourt,
		SplitPaymentEnabled: req.SplitPaymentEnabled,
		SplitPaymentCount:   req.SplitPaymentCount,
		Notes:               req.Notes,
		PaymentMethod:       req.PaymentMethod,
		PaymentType:         req.PaymentType,
	})
	if err != nil {
		writeBookingError(w, logger, err)
		return
	}

	if deps.Limiter != nil {
		deps.Limiter.RecordCreate(normalizedPhone, clientIP)
	}

	sendConfirmation(ctx, logger, result, req.PlayerEmail)
	if deps.Publisher != nil {
		deps.Publisher.PublishAsync(notify.RouteGroupCreated, notify.GroupCreatedEvent{
			GroupID:         result.Group.ID,
			ClubID:          result.Group.ClubID,
			Date:            result.Group.Date,
			StartTime:       result.Group.StartTime,
			EndTime:         result.Group.EndTime,
			Courts:          len(result.Bookings),
			TotalPriceCents: result.TotalPriceCents,
			PlayerName:      result.Group.PlayerName,
		})
	}

	resp := createGroupResponse{
		Success:      true,
		BookingGroup: result.Group,
		PaymentLink:  result.PaymentLink,
		Summary: groupSummary{
			Courts:             len(result.Bookings),
			TotalPrice:         result.TotalPriceCents,
			PlayersExpected:    result.Group.TotalPlayers,
			PlayersPerCourt:    result.Group.PlayersPerCourt,
			SplitPayments:      len(result.SplitPayments),
			AutoSelectedCourts: result.AutoSelectedCourts,
			TotalPriceDisplay:  apiutil.FormatPriceCents(result.TotalPriceCents),
		},
		Warnings: result.Warnings,
	}
	if err := apiutil.WriteJSON(w, http.StatusCreated, resp); err != nil {
		logger.Error().Err(err).Msg("Failed to write reservation response")
	}
}

func sendConfirmation(ctx context.Context, logger *zerolog.Logger, result *booking.AllocationResult, recipient string) {
	if deps.Email == nil || recipient == "" {
		return
	}

	courtNames, err := queries.ListGroupCourtNames(ctx, result.Group.ID)
	if err != nil {
		logger.Error().Err(err).Int64("group_id", result.Group.ID).Msg("Failed to load court names for confirmation")
	}

	details := email.ConfirmationDetails{
		GroupName:  result.Group.Name,
		Date:       result.Group.Date,
		TimeRange:  result.Group.StartTime + " - " + result.Group.EndTime,
		Courts:     strings.Join(courtNames, ", "),
		TotalPrice: apiutil.FormatPriceCents(result.TotalPriceCents),
	}
	if club, err := queries.GetClubByID(ctx, result.Group.ClubID); err == nil {
		details.ClubName = club.Name
	}
	if n := len(result.SplitPayments); n > 0 {
		details.SplitNote = "Split between " + strconv.Itoa(n) + " players: " +
			apiutil.FormatPriceCents(result.SplitPayments[0].AmountCents) + " each."
	}

	email.SendConfirmationEmail(ctx, deps.Email, recipient, email.BuildGroupConfirmation(details), logger)
}

func splitProgress(splits []dbgen.SplitPayment) (string, bool) {
	if len(splits) == 0 {
		return "", false
	}
	var completed int
	for _, sp := range splits {
		if sp.Status == booking.PaymentCompleted {
			completed++
		}
	}
	return strconv.Itoa(completed) + "/" + strconv.Itoa(len(splits)), completed == len(splits)
}

func writeBookingError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var verr booking.ValidationError
	var mismatch booking.CourtCountMismatchError
	var insufficient booking.InsufficientAvailabilityError
	var unavailable booking.CourtsUnavailableError

	switch {
	case errors.As(err, &verr):
		writeError(w, logger, http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.As(err, &mismatch):
		writeError(w, logger, http.StatusBadRequest, errorResponse{
			Error:          mismatch.Error(),
			RequiredCourts: mismatch.Required,
		})
	case errors.As(err, &insufficient):
		writeError(w, logger, http.StatusConflict, errorResponse{
			Error:           insufficient.Error(),
			RequiredCourts:  insufficient.Required,
			AvailableCourts: &insufficient.Available,
		})
	case errors.As(err, &unavailable):
		writeError(w, logger, http.StatusConflict, errorResponse{
			Error:  unavailable.Error(),
			Courts: unavailable.Courts,
		})
	case errors.Is(err, booking.ErrNoPricingConfigured):
		logger.Error().Err(err).Msg("Reservation failed: pricing not configured")
		writeError(w, logger, http.StatusInternalServerError, errorResponse{
			Error: "no pricing is configured for the requested time",
		})
	default:
		logger.Error().Err(err).Msg("Failed to create group reservation")
		writeError(w, logger, http.StatusInternalServerError, errorResponse{
			Error: "failed to create reservation",
		})
	}
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, resp errorResponse) {
	resp.Success = false
	if err := apiutil.WriteJSON(w, status, resp); err != nil {
		logger.Error().Err(err).Msg("Failed to write error response")
	}
}
