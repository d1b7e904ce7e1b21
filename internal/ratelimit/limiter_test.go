package ratelimit

import (
	"net/http"
	"sync"
	"testing"
	"time"
)

// mockClock is a controllable clock for testing.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(clock Clock) *Limiter {
	return New(&Config{
		CreateCooldown:     10 * time.Second,
		CreateMaxPerHour:   3,
		CreateMaxIPPerHour: 5,
		Clock:              clock,
	})
}

func TestCheckCreate_Cooldown(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	phone := "+5215512345678"
	ip := "203.0.113.7"

	result := limiter.CheckCreate(phone, ip)
	if !result.Allowed {
		t.Errorf("First request should be allowed, got blocked: %s", result.Reason)
	}
	limiter.RecordCreate(phone, ip)

	clock.Advance(5 * time.Second)
	result = limiter.CheckCreate(phone, ip)
	if result.Allowed {
		t.Error("Request within cooldown should be blocked")
	}
	if result.Reason != "cooldown" {
		t.Errorf("Expected reason 'cooldown', got '%s'", result.Reason)
	}
	if result.RetryAfter != 5*time.Second {
		t.Errorf("Expected 5s retry, got %v", result.RetryAfter)
	}

	clock.Advance(5 * time.Second)
	result = limiter.CheckCreate(phone, ip)
	if !result.Allowed {
		t.Errorf("Request after cooldown should be allowed, got: %s", result.Reason)
	}
}

func TestCheckCreate_PhoneHourlyLimit(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	phone := "+5215512345678"

	for i := 0; i < 3; i++ {
		// Different IPs so only the phone limit applies.
		ip := "203.0.113." + string(rune('1'+i))
		if result := limiter.CheckCreate(phone, ip); !result.Allowed {
			t.Fatalf("Request %d should be allowed: %s", i+1, result.Reason)
		}
		limiter.RecordCreate(phone, ip)
		clock.Advance(time.Minute)
	}

	result := limiter.CheckCreate(phone, "203.0.113.9")
	if result.Allowed {
		t.Error("Fourth reservation within the hour should be blocked")
	}
	if result.Reason != "phone_hourly_limit" {
		t.Errorf("Expected 'phone_hourly_limit', got '%s'", result.Reason)
	}

	clock.Advance(time.Hour)
	if result := limiter.CheckCreate(phone, "203.0.113.9"); !result.Allowed {
		t.Errorf("New hour window should allow, got: %s", result.Reason)
	}
}

func TestCheckCreate_IPHourlyLimit(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	ip := "203.0.113.7"
	phones := []string{"+5215500000001", "+5215500000002", "+5215500000003", "+5215500000004", "+5215500000005"}

	for _, phone := range phones {
		if result := limiter.CheckCreate(phone, ip); !result.Allowed {
			t.Fatalf("Request for %s should be allowed: %s", phone, result.Reason)
		}
		limiter.RecordCreate(phone, ip)
		clock.Advance(time.Minute)
	}

	result := limiter.CheckCreate("+5215500000006", ip)
	if result.Allowed {
		t.Error("Sixth reservation from one IP should be blocked")
	}
	if result.Reason != "ip_hourly_limit" {
		t.Errorf("Expected 'ip_hourly_limit', got '%s'", result.Reason)
	}
}

func TestCheckCreate_CheckDoesNotRecord(t *testing.T) {
	clock := newMockClock()
	limiter := newTestLimiter(clock)
	defer limiter.Close()

	phone := "+5215512345678"
	ip := "203.0.113.7"

	// Repeated checks without records must all pass.
	for i := 0; i < 10; i++ {
		if result := limiter.CheckCreate(phone, ip); !result.Allowed {
			t.Fatalf("Check %d blocked without any recorded create: %s", i+1, result.Reason)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	req, _ := http.NewRequest("POST", "/", nil)
	req.RemoteAddr = "198.51.100.4:54321"

	if ip := GetClientIP(req, false); ip != "198.51.100.4" {
		t.Errorf("direct: got %s", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if ip := GetClientIP(req, false); ip != "198.51.100.4" {
		t.Errorf("untrusted proxy must ignore XFF, got %s", ip)
	}
	if ip := GetClientIP(req, true); ip != "203.0.113.9" {
		t.Errorf("trusted proxy: got %s", ip)
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	if got := SanitizeIdentifier("+5215512345678"); got != "***5678" {
		t.Errorf("got %q", got)
	}
	if got := SanitizeIdentifier("55"); got != "***" {
		t.Errorf("got %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	limiter := New(nil)
	defer limiter.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			phone := "+52155000000" + string(rune('0'+n%10))
			limiter.CheckCreate(phone, "203.0.113.7")
			limiter.RecordCreate(phone, "203.0.113.7")
		}(i)
	}
	wg.Wait()
}
