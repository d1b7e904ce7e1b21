package email

import (
	"fmt"
	"strings"
)

type ConfirmationEmail struct {
	Subject string
	Body    string
}

// ConfirmationDetails describes a committed reservation for the confirmation
// email. All fields are preformatted display strings.
type ConfirmationDetails struct {
	ClubName   string
	GroupName  string
	Date       string
	TimeRange  string
	Courts     string
	TotalPrice string
	SplitNote  string
}

// BuildGroupConfirmation renders the confirmation for a group reservation.
func BuildGroupConfirmation(details ConfirmationDetails) ConfirmationEmail {
	clubName := strings.TrimSpace(details.ClubName)
	if clubName == "" {
		clubName = "your club"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your reservation at %s is confirmed.\n\n", clubName)
	if details.GroupName != "" {
		fmt.Fprintf(&b, "Event: %s\n", details.GroupName)
	}
	fmt.Fprintf(&b, "Date: %s\n", details.Date)
	fmt.Fprintf(&b, "Time: %s\n", details.TimeRange)
	if details.Courts != "" {
		fmt.Fprintf(&b, "Courts: %s\n", details.Courts)
	}
	if details.TotalPrice != "" {
		fmt.Fprintf(&b, "Total: %s\n", details.TotalPrice)
	}
	if details.SplitNote != "" {
		fmt.Fprintf(&b, "\n%s\n", details.SplitNote)
	}
	b.WriteString("\nSee you on the court!\n")

	return ConfirmationEmail{
		Subject: fmt.Sprintf("Reservation Confirmed - %s", details.Date),
		Body:    b.String(),
	}
}
