package interfaces

import "context"

// Fetcher defines the operation for retrieving a remote changelog document.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body as UTF-8
	// text. Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) (string, error)
}

// Store defines the fingerprint store contract. One fingerprint exists per
// source key; values are opaque equality tokens.
type Store interface {
	// GetValue returns the stored value for key, or defaultValue when the
	// key is absent or unreadable.
	GetValue(ctx context.Context, key, defaultValue string) (string, error)

	// SetValue durably associates key with value, overwriting any prior
	// value (last-writer-wins).
	SetValue(ctx context.Context, key, value string) error
}

// Notifier delivers a formatted notification message to a chat audience.
type Notifier interface {
	Send(ctx context.Context, message string) error
}
