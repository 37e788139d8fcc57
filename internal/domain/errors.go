package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the pricing engine. Callers branch on these with
// errors.Is rather than matching message strings.
var (
	// ErrInvalidRequest indicates caller-supplied data violates a documented
	// precondition. Never recovered locally; always surfaced with the full
	// list of violations.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrPackageNotFound indicates the referenced package does not exist.
	ErrPackageNotFound = errors.New("package not found")

	// ErrHotelNotFound indicates a referenced hotel does not exist.
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrProviderUnavailable indicates the live-pricing subsystem is degraded.
	ErrProviderUnavailable = errors.New("rate provider unavailable")
)

// ProviderErrorKind classifies third-party hotel system failures.
type ProviderErrorKind string

// Provider error kinds.
const (
	// KindTimeout: the provider did not answer within the deadline.
	KindTimeout ProviderErrorKind = "timeout"

	// KindInvalidResponse: the provider answered with a payload the client
	// could not interpret.
	KindInvalidResponse ProviderErrorKind = "invalid_response"

	// KindNoAvailability: the provider has no bookable rooms for the request.
	// Callers should prompt for another hotel or date.
	KindNoAvailability ProviderErrorKind = "no_availability"

	// KindRateChanged: prebook found a different price or availability than
	// the original search. Callers should refresh pricing and retry.
	KindRateChanged ProviderErrorKind = "rate_changed"
)

// ProviderError wraps a third-party hotel system failure with its kind so
// callers can branch on the failure class.
type ProviderError struct {
	// Provider identifies the inventory provider
	Provider string

	// Kind classifies the failure
	Kind ProviderErrorKind

	// Err is the underlying error, if any
	Err error

	// Retryable indicates whether an identical call could succeed later.
	// Timeouts are retryable by the caller; rate changes are not.
	Retryable bool
}

// NewProviderError creates a ProviderError of the given kind. Timeouts are
// marked retryable.
func NewProviderError(provider string, kind ProviderErrorKind, err error) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Kind:      kind,
		Err:       err,
		Retryable: kind == KindTimeout,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
}

// Unwrap returns the underlying error for errors.Is / errors.As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts a ProviderError from an error chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsProviderKind reports whether err is a ProviderError of the given kind.
func IsProviderKind(err error, kind ProviderErrorKind) bool {
	pe, ok := AsProviderError(err)
	return ok && pe.Kind == kind
}

// Violation is a single broken precondition, tied to the field that broke it.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations collects every broken precondition of a request so callers see
// the complete list at once, not just the first.
type Violations struct {
	List []Violation `json:"violations"`
}

// Add records a violation.
func (v *Violations) Add(field, message string) {
	v.List = append(v.List, Violation{Field: field, Message: message})
}

// Empty reports whether no violations were recorded.
func (v *Violations) Empty() bool {
	return len(v.List) == 0
}

// Err returns nil when no violations were recorded, otherwise an
// *InvalidInputError carrying them.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &InvalidInputError{Violations: v.List}
}

// ToMap converts the violations to a field → message map for API responses.
func (v *Violations) ToMap() map[string]string {
	result := make(map[string]string, len(v.List))
	for _, item := range v.List {
		result[item.Field] = item.Message
	}
	return result
}

// InvalidInputError carries the full set of precondition violations of a
// request. It matches ErrInvalidRequest under errors.Is.
type InvalidInputError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidRequest.Error()
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is(err, ErrInvalidRequest) succeed.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidRequest
}

// ToMap converts the violations to a field → message map.
func (e *InvalidInputError) ToMap() map[string]string {
	result := make(map[string]string, len(e.Violations))
	for _, v := range e.Violations {
		result[v.Field] = v.Message
	}
	return result
}
