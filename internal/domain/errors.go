package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the repository and services. Handlers map these
// to HTTP status codes in a single table; nothing else decides status codes.
var (
	ErrNotFound           = errors.New("todo not found")
	ErrInvalidID          = errors.New("invalid todo ID format")
	ErrTitleRequired      = errors.New("title is required")
	ErrNothingToSummarize = errors.New("no incomplete todos to summarize")
)

// ConfigurationError reports a required external-service setting that is
// missing at the time a workflow needs it. Absence is detected per request,
// not at startup.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// NotificationDeliveryError reports a failed webhook delivery.
type NotificationDeliveryError struct {
	Err error
}

func (e *NotificationDeliveryError) Error() string {
	return fmt.Sprintf("error sending to Slack: %v", e.Err)
}

func (e *NotificationDeliveryError) Unwrap() error {
	return e.Err
}
