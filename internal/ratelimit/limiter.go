// Package ratelimit throttles reservation creation per organizer phone and
// per client IP.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config holds the reservation-creation limits.
type Config struct {
	CreateCooldown     time.Duration // minimum gap between reservations per phone
	CreateMaxPerHour   int           // reservations per phone per hour
	CreateMaxIPPerHour int           // reservations per IP per hour

	Clock Clock // nil uses the system clock
}

func DefaultConfig() *Config {
	return &Config{
		CreateCooldown:     10 * time.Second,
		CreateMaxPerHour:   10,
		CreateMaxIPPerHour: 30,
	}
}

// LimitResult reports the outcome of a limit check.
type LimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string
}

type entry struct {
	count   int
	firstAt time.Time // start of the hourly window
	lastAt  time.Time // most recent hit, drives the cooldown
}

// Limiter tracks reservation attempts in memory, keyed by hashed phone and
// IP. Stale windows are swept by a background goroutine.
type Limiter struct {
	config  *Config
	clock   Clock
	mu      sync.RWMutex
	byPhone map[string]*entry
	byIP    map[string]*entry

	cleanupCtx    context.Context
	cleanupCancel context.CancelFunc
	cleanupOnce   sync.Once
	cleanupWg     sync.WaitGroup
}

func New(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Limiter{
		config:        cfg,
		clock:         clock,
		byPhone:       make(map[string]*entry),
		byIP:          make(map[string]*entry),
		cleanupCtx:    ctx,
		cleanupCancel: cancel,
	}
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.cleanupCancel()
	l.cleanupWg.Wait()
}

// CheckCreate reports whether a reservation may be created. It does not
// record the attempt; call RecordCreate once the reservation commits so
// rejected requests don't consume quota.
func (l *Limiter) CheckCreate(phone, ip string) LimitResult {
	l.startCleanup()
	now := l.clock.Now()
	phoneKey := hashKey("create:phone:", normalizeIdentifier(phone))
	ipKey := hashKey("create:ip:", ip)

	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := l.byPhone[phoneKey]; e != nil {
		if elapsed := now.Sub(e.lastAt); elapsed < l.config.CreateCooldown {
			return LimitResult{
				RetryAfter: l.config.CreateCooldown - elapsed,
				Reason:     "cooldown",
			}
		}
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.CreateMaxPerHour {
			return LimitResult{
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "phone_hourly_limit",
			}
		}
	}

	if e := l.byIP[ipKey]; e != nil {
		if now.Sub(e.firstAt) < time.Hour && e.count >= l.config.CreateMaxIPPerHour {
			return LimitResult{
				RetryAfter: time.Hour - now.Sub(e.firstAt),
				Reason:     "ip_hourly_limit",
			}
		}
	}

	return LimitResult{Allowed: true}
}

// RecordCreate counts a committed reservation against both limits.
func (l *Limiter) RecordCreate(phone, ip string) {
	now := l.clock.Now()
	phoneKey := hashKey("create:phone:", normalizeIdentifier(phone))
	ipKey := hashKey("create:ip:", ip)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(l.byPhone, phoneKey, now)
	l.record(l.byIP, ipKey, now)
}

func (l *Limiter) record(m map[string]*entry, key string, now time.Time) {
	e := m[key]
	if e == nil || now.Sub(e.firstAt) >= time.Hour {
		m[key] = &entry{count: 1, firstAt: now, lastAt: now}
		return
	}
	e.count++
	e.lastAt = now
}

func hashKey(prefix, value string) string {
	sum := sha256.Sum256([]byte(value))
	return prefix + hex.EncodeToString(sum[:8])
}

// normalizeIdentifier lowercases the identifier to prevent case-based bypass.
func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

func (l *Limiter) startCleanup() {
	l.cleanupOnce.Do(func() {
		l.cleanupWg.Add(1)
		go func() {
			defer l.cleanupWg.Done()
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-l.cleanupCtx.Done():
					return
				case <-ticker.C:
					l.cleanup()
				}
			}
		}()
	})
}

func (l *Limiter) cleanup() {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, m := range []map[string]*entry{l.byPhone, l.byIP} {
		for k, e := range m {
			if now.Sub(e.lastAt) > time.Hour {
				delete(m, k)
			}
		}
	}
}

// GetClientIP extracts the client IP. With trustProxy set it walks
// X-Forwarded-For from the right, skipping private ranges, and falls back to
// X-Real-IP. Without it, forwarding headers are ignored entirely since any
// client can forge them.
func GetClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			for i := len(parts) - 1; i >= 0; i-- {
				ip := strings.TrimSpace(parts[i])
				if ip != "" && !isPrivateIP(ip) {
					return ip
				}
			}
			return strings.TrimSpace(parts[len(parts)-1])
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}
	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		if candidate := r.RemoteAddr[:idx]; net.ParseIP(candidate) != nil {
			return candidate
		}
	}
	return r.RemoteAddr
}

var privateNetworks = func() []*net.IPNet {
	ranges := []string{
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"127.0.0.0/8",
		"::1/128",
		"fc00::/7",
		"fe80::/10",
	}
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, cidr := range ranges {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("invalid private CIDR: " + cidr)
		}
		nets = append(nets, network)
	}
	return nets
}()

// isPrivateIP also handles IPv4-mapped IPv6 addresses (::ffff:192.168.1.1).
func isPrivateIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		ip = ipv4
	}
	for _, network := range privateNetworks {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// SanitizeIdentifier masks a phone number down to its last four digits for
// logging.
func SanitizeIdentifier(identifier string) string {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if len(identifier) >= 4 {
		return "***" + identifier[len(identifier)-4:]
	}
	return "***"
}

func LogRateLimitExceeded(limitType, identifier, ip, reason string) {
	log.Warn().
		Str("event", "rate_limit_exceeded").
		Str("type", limitType).
		Str("identifier", SanitizeIdentifier(identifier)).
		Str("ip", ip).
		Str("reason", reason).
		Msg("Rate limit exceeded")
}
