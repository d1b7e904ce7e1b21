package operatinghours

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/clubmesa/courtside/internal/api/authz"
	"github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
	"github.com/clubmesa/courtside/internal/testutil"
)

func setupHoursTest(t *testing.T) (*db.DB, int64) {
	t.Helper()

	database := testutil.NewTestDB(t)
	club, err := database.Queries.CreateClub(context.Background(), dbgen.CreateClubParams{
		Name: "Mesa Padel Club", Slug: "mesa-padel", Timezone: "UTC",
	})
	if err != nil {
		t.Fatalf("seed club: %v", err)
	}

	queries = nil
	queriesOnce = sync.Once{}
	InitHandlers(database.Queries)
	t.Cleanup(func() {
		queries = nil
		queriesOnce = sync.Once{}
	})

	return database, club.ID
}

func staffRequest(method, target, body string, clubID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	user := &authz.AuthUser{ID: 1, Name: "Desk Staff", ClubID: clubID, IsStaff: true}
	return req.WithContext(authz.ContextWithUser(req.Context(), user))
}

func updateDay(t *testing.T, clubID, day int64, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := staffRequest("PUT", "/api/v1/operating-hours/"+strconv.FormatInt(day, 10), body, clubID)
	req.SetPathValue("day", strconv.FormatInt(day, 10))
	rec := httptest.NewRecorder()
	HandleUpdate(rec, req)
	return rec
}

func TestHandleList_DefaultsWholeWeek(t *testing.T) {
	_, clubID := setupHoursTest(t)

	rec := httptest.NewRecorder()
	HandleList(rec, staffRequest("GET", "/api/v1/operating-hours", "", clubID))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Hours []dbgen.ClubHour `json:"hours"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Hours) != 7 {
		t.Fatalf("got %d days, want 7", len(resp.Hours))
	}
	for i, h := range resp.Hours {
		if h.DayOfWeek != int64(i) {
			t.Errorf("day %d out of order: %+v", i, h)
		}
		if h.OpensAt != "08:00" || h.ClosesAt != "21:00" || h.IsClosed {
			t.Errorf("day %d not defaulted: %+v", i, h)
		}
	}
}

func TestHandleUpdate_PersistsAndLists(t *testing.T) {
	_, clubID := setupHoursTest(t)

	rec := updateDay(t, clubID, 1, `{"opensAt": "06:30", "closesAt": "22:00", "isClosed": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = updateDay(t, clubID, 0, `{"opensAt": "", "closesAt": "", "isClosed": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("close-day status = %d, body = %s", rec.Code, rec.Body.String())
	}

	listRec := httptest.NewRecorder()
	HandleList(listRec, staffRequest("GET", "/api/v1/operating-hours", "", clubID))
	var resp struct {
		Hours []dbgen.ClubHour `json:"hours"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Hours[1].OpensAt != "06:30" || resp.Hours[1].ClosesAt != "22:00" {
		t.Errorf("Monday = %+v", resp.Hours[1])
	}
	if !resp.Hours[0].IsClosed {
		t.Errorf("Sunday = %+v", resp.Hours[0])
	}
	if resp.Hours[2].OpensAt != "08:00" {
		t.Errorf("Tuesday lost default: %+v", resp.Hours[2])
	}
}

func TestHandleUpdate_Upserts(t *testing.T) {
	_, clubID := setupHoursTest(t)

	if rec := updateDay(t, clubID, 3, `{"opensAt": "07:00", "closesAt": "20:00", "isClosed": false}`); rec.Code != http.StatusOK {
		t.Fatalf("first update: %d", rec.Code)
	}
	rec := updateDay(t, clubID, 3, `{"opensAt": "09:00", "closesAt": "18:00", "isClosed": false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second update: %d", rec.Code)
	}

	var hours dbgen.ClubHour
	if err := json.Unmarshal(rec.Body.Bytes(), &hours); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hours.OpensAt != "09:00" || hours.ClosesAt != "18:00" {
		t.Errorf("hours = %+v", hours)
	}
}

func TestHandleUpdate_Validation(t *testing.T) {
	_, clubID := setupHoursTest(t)

	tests := []struct {
		name string
		day  int64
		body string
	}{
		{"bad day", 9, `{"opensAt": "08:00", "closesAt": "21:00"}`},
		{"bad opens", 1, `{"opensAt": "8am", "closesAt": "21:00"}`},
		{"bad closes", 1, `{"opensAt": "08:00", "closesAt": "9pm"}`},
		{"inverted window", 1, `{"opensAt": "21:00", "closesAt": "08:00"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := updateDay(t, clubID, tc.day, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestNonStaffForbidden(t *testing.T) {
	_, clubID := setupHoursTest(t)

	req := httptest.NewRequest("GET", "/api/v1/operating-hours", nil)
	user := &authz.AuthUser{ID: 2, Name: "Member", ClubID: clubID, IsStaff: false}
	req = req.WithContext(authz.ContextWithUser(req.Context(), user))

	rec := httptest.NewRecorder()
	HandleList(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
