// Package phone normalizes player phone numbers to E.164 so lookups and the
// per-club uniqueness constraint behave regardless of input formatting.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses raw into E.164 form using defaultRegion when the number
// carries no country prefix.
func Normalize(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("phone number is required")
	}

	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number for region %s", defaultRegion)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
