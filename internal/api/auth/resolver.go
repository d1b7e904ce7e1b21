// Package auth resolves request sessions. Authentication itself happens at
// the edge; this package only materializes the identity the edge attests to.
package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/clubmesa/courtside/internal/api/authz"
)

// Gateway headers carrying the attested session.
const (
	HeaderUserID   = "X-Auth-User"
	HeaderUserName = "X-Auth-Name"
	HeaderClubID   = "X-Club-Id"
	HeaderStaff    = "X-Auth-Staff"
)

// SessionResolver turns an incoming request into an AuthUser, or nil when the
// request carries no session.
type SessionResolver interface {
	Resolve(r *http.Request) (*authz.AuthUser, error)
}

// GatewayHeaderResolver trusts identity headers set by the fronting gateway.
// It must only be used behind a gateway that strips these headers from
// client traffic.
type GatewayHeaderResolver struct{}

func (GatewayHeaderResolver) Resolve(r *http.Request) (*authz.AuthUser, error) {
	rawUser := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if rawUser == "" {
		return nil, nil
	}
	userID, err := strconv.ParseInt(rawUser, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("malformed %s header", HeaderUserID)
	}

	rawClub := strings.TrimSpace(r.Header.Get(HeaderClubID))
	clubID, err := strconv.ParseInt(rawClub, 10, 64)
	if err != nil || clubID <= 0 {
		return nil, fmt.Errorf("malformed %s header", HeaderClubID)
	}

	return &authz.AuthUser{
		ID:      userID,
		Name:    strings.TrimSpace(r.Header.Get(HeaderUserName)),
		ClubID:  clubID,
		IsStaff: r.Header.Get(HeaderStaff) == "true",
	}, nil
}
