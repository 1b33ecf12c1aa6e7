package emails

import "errors"

var (
	// ErrMissingRecipients is returned when an email would be scheduled or
	// updated without any resolvable recipients. Raised before any write.
	ErrMissingRecipients = errors.New("no recipients for scheduled email")

	// ErrMissingTemplate is returned when no active template exists for the
	// requested signal, or a scheduled email lost its template link.
	ErrMissingTemplate = errors.New("no active template for signal")
)
