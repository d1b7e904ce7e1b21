package booking

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 0, true},
		{"10:65", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseClock(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("10:00", 90)
	if err != nil || got != "11:30" {
		t.Errorf("AddMinutes(10:00, 90) = %q, %v", got, err)
	}

	got, err = AddMinutes("22:30", 90)
	if err != nil || got != "24:00" {
		t.Errorf("AddMinutes(22:30, 90) = %q, %v; want 24:00", got, err)
	}

	if _, err := AddMinutes("23:30", 60); err == nil {
		t.Errorf("crossing midnight should fail")
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-07 is a Saturday.
	day, err := WeekdayOf(testDay)
	if err != nil || day != 6 {
		t.Errorf("WeekdayOf(%s) = %d, %v; want 6", testDay, day, err)
	}
	if _, err := WeekdayOf("07-03-2026"); err == nil {
		t.Errorf("malformed date accepted")
	}
}
