package bookinggroups

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/clubmesa/courtside/internal/api/authz"
	"github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
	"github.com/clubmesa/courtside/internal/testutil"
)

func setupGroupsTest(t *testing.T, courtCount int) (*db.DB, int64) {
	t.Helper()

	database := testutil.NewTestDB(t)
	ctx := context.Background()

	club, err := database.Queries.CreateClub(ctx, dbgen.CreateClubParams{
		Name: "Mesa Padel Club", Slug: "mesa-padel", Timezone: "UTC",
	})
	if err != nil {
		t.Fatalf("seed club: %v", err)
	}
	for i := 0; i < courtCount; i++ {
		if _, err := database.Queries.CreateCourt(ctx, dbgen.CreateCourtParams{
			ClubID: club.ID, Name: "Court " + string(rune('1'+i)), DisplayOrder: int64(i + 1), IsActive: true,
		}); err != nil {
			t.Fatalf("seed court: %v", err)
		}
	}
	if _, err := database.Queries.CreatePricingRule(ctx, dbgen.CreatePricingRuleParams{
		ClubID: club.ID, StartsAt: "06:00", EndsAt: "23:00", PricePerHourCents: 30000, CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed pricing: %v", err)
	}

	resetHandlers()
	InitHandlers(database, Deps{PhoneRegion: "MX"})
	t.Cleanup(resetHandlers)

	return database, club.ID
}

func resetHandlers() {
	queries = nil
	store = nil
	alloc = nil
	deps = Deps{}
	queriesOnce = sync.Once{}
}

func withAuthUser(req *http.Request, clubID int64) *http.Request {
	user := &authz.AuthUser{ID: 1, Name: "Desk Staff", ClubID: clubID, IsStaff: true}
	return req.WithContext(authz.ContextWithUser(req.Context(), user))
}

func createBody(date string) string {
	return `{
		"name": "Saturday Social",
		"type": "SOCIAL",
		"date": "` + date + `",
		"startTime": "10:00",
		"duration": 90,
		"playerName": "Ana Reyes",
		"playerPhone": "+525512345678",
		"playerEmail": "ana@example.com",
		"totalPlayers": 4,
		"playersPerCourt": 4,
		"splitPaymentEnabled": false,
		"splitPaymentCount": 0,
		"paymentMethod": "CASH",
		"paymentType": "onsite"
	}`
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestHandleCreate_Success(t *testing.T) {
	_, clubID := setupGroupsTest(t, 2)

	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(createBody(futureDate(7))))
	req = withAuthUser(req, clubID)
	rec := httptest.NewRecorder()

	HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success      bool `json:"success"`
		BookingGroup struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"bookingGroup"`
		Summary struct {
			Courts             int   `json:"courts"`
			TotalPrice         int64 `json:"totalPrice"`
			PlayersExpected    int64 `json:"playersExpected"`
			AutoSelectedCourts int64 `json:"autoSelectedCourts"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.BookingGroup.ID == 0 {
		t.Errorf("response = %+v", resp)
	}
	if resp.BookingGroup.Status != "PENDING" {
		t.Errorf("status = %s, want PENDING", resp.BookingGroup.Status)
	}
	if resp.Summary.Courts != 1 || resp.Summary.TotalPrice != 45000 || resp.Summary.PlayersExpected != 4 {
		t.Errorf("summary = %+v", resp.Summary)
	}
	if resp.Summary.AutoSelectedCourts != 1 {
		t.Errorf("auto-selected = %d, want 1", resp.Summary.AutoSelectedCourts)
	}
}

func TestHandleCreate_ValidationError(t *testing.T) {
	_, clubID := setupGroupsTest(t, 1)

	body := strings.Replace(createBody(futureDate(7)), `"totalPlayers": 4`, `"totalPlayers": 0`, 1)
	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(body))
	req = withAuthUser(req, clubID)
	rec := httptest.NewRecorder()

	HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Field   string `json:"field"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Field != "totalPlayers" {
		t.Errorf("response = %+v", resp)
	}
}

func TestHandleCreate_BadPhone(t *testing.T) {
	_, clubID := setupGroupsTest(t, 1)

	body := strings.Replace(createBody(futureDate(7)), "+525512345678", "not-a-phone", 1)
	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(body))
	req = withAuthUser(req, clubID)
	rec := httptest.NewRecorder()

	HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCreate_UnknownField(t *testing.T) {
	_, clubID := setupGroupsTest(t, 1)

	body := strings.Replace(createBody(futureDate(7)), `"name"`, `"unexpected": 1, "name"`, 1)
	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(body))
	req = withAuthUser(req, clubID)
	rec := httptest.NewRecorder()

	HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandleCreate_ConflictReturns409(t *testing.T) {
	_, clubID := setupGroupsTest(t, 1)
	date := futureDate(7)

	first := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(createBody(date)))
	first = withAuthUser(first, clubID)
	rec := httptest.NewRecorder()
	HandleCreate(rec, first)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first reservation failed: %d %s", rec.Code, rec.Body.String())
	}

	second := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(createBody(date)))
	second = withAuthUser(second, clubID)
	rec = httptest.NewRecorder()
	HandleCreate(rec, second)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success        bool  `json:"success"`
		RequiredCourts int64 `json:"requiredCourts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Errorf("conflict response claims success")
	}
}

func TestHandleCreate_Unauthenticated(t *testing.T) {
	setupGroupsTest(t, 1)

	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(createBody(futureDate(7))))
	rec := httptest.NewRecorder()

	HandleCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHandleList_FiltersAndDerivedFields(t *testing.T) {
	database, clubID := setupGroupsTest(t, 2)
	date := futureDate(7)

	create := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(createBody(date)))
	create = withAuthUser(create, clubID)
	rec := httptest.NewRecorder()
	HandleCreate(rec, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed reservation failed: %d %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest("GET", "/api/v1/booking-groups?date="+date, nil)
	req = withAuthUser(req, clubID)
	rec = httptest.NewRecorder()
	HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		BookingGroups []struct {
			ID                   int64    `json:"id"`
			CourtNames           []string `json:"courtNames"`
			SplitPaymentProgress string   `json:"splitPaymentProgress"`
			SplitPaymentComplete bool     `json:"splitPaymentComplete"`
		} `json:"bookingGroups"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.BookingGroups) != 1 {
		t.Fatalf("got %d groups, want 1", len(resp.BookingGroups))
	}
	if len(resp.BookingGroups[0].CourtNames) != 1 {
		t.Errorf("court names = %v", resp.BookingGroups[0].CourtNames)
	}

	// Filter on a different date returns nothing.
	req = httptest.NewRequest("GET", "/api/v1/booking-groups?date=2020-01-01", nil)
	req = withAuthUser(req, clubID)
	rec = httptest.NewRecorder()
	HandleList(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.BookingGroups) != 0 {
		t.Errorf("date filter returned %d groups, want 0", len(resp.BookingGroups))
	}

	_ = database
}

func TestHandleList_SplitProgress(t *testing.T) {
	database, clubID := setupGroupsTest(t, 1)
	date := futureDate(7)
	ctx := context.Background()

	body := strings.Replace(createBody(date),
		`"splitPaymentEnabled": false,
		"splitPaymentCount": 0,`,
		`"splitPaymentEnabled": true,
		"splitPaymentCount": 2,`, 1)
	req := httptest.NewRequest("POST", "/api/v1/booking-groups", strings.NewReader(body))
	req = withAuthUser(req, clubID)
	rec := httptest.NewRecorder()
	HandleCreate(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed reservation failed: %d %s", rec.Code, rec.Body.String())
	}

	var created struct {
		BookingGroup struct {
			ID int64 `json:"id"`
		} `json:"bookingGroup"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	splits, err := database.Queries.ListSplitPaymentsForGroup(ctx, created.BookingGroup.ID)
	if err != nil || len(splits) != 2 {
		t.Fatalf("splits = %d (err %v), want 2", len(splits), err)
	}
	if _, err := database.Queries.CompleteSplitPayment(ctx, dbgen.CompleteSplitPaymentParams{
		ID: splits[0].ID, GroupID: created.BookingGroup.ID,
	}); err != nil {
		t.Fatalf("complete split: %v", err)
	}

	listReq := httptest.NewRequest("GET", "/api/v1/booking-groups", nil)
	listReq = withAuthUser(listReq, clubID)
	rec = httptest.NewRecorder()
	HandleList(rec, listReq)

	var resp struct {
		BookingGroups []struct {
			SplitPaymentProgress string `json:"splitPaymentProgress"`
			SplitPaymentComplete bool   `json:"splitPaymentComplete"`
		} `json:"bookingGroups"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.BookingGroups) != 1 {
		t.Fatalf("got %d groups", len(resp.BookingGroups))
	}
	got := resp.BookingGroups[0]
	if got.SplitPaymentProgress != "1/2" || got.SplitPaymentComplete {
		t.Errorf("split progress = %q complete=%v, want 1/2 false", got.SplitPaymentProgress, got.SplitPaymentComplete)
	}
}
