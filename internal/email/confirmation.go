package email

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const confirmationEmailTimeout = 5 * time.Second

// SendConfirmationEmail sends a reservation confirmation asynchronously.
// Missing recipient or an unconfigured sender are silent no-ops; the booking
// flow never waits on delivery.
func SendConfirmationEmail(ctx context.Context, sender EmailSender, recipient string, confirmation ConfirmationEmail, logger *zerolog.Logger) {
	if sender == nil {
		return
	}
	if confirmation.Subject == "" || confirmation.Body == "" {
		return
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return
	}

	// Detach cancellation so handler-scoped contexts don't abort the send.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), confirmationEmailTimeout)
	go func() {
		defer cancel()
		if err := sender.Send(sendCtx, recipient, confirmation.Subject, confirmation.Body); err != nil && logger != nil {
			logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send confirmation email")
		}
	}()
}
