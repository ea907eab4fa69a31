package errors

import "github.com/cockroachdb/errors"

// Static errors for the assistant client.
var (
	// ErrServiceNil is returned when a dispatcher is created without an assistant service.
	ErrServiceNil = errors.New("assistant service cannot be nil")

	// ErrStoreNil is returned when a dispatcher is created without a conversation store.
	ErrStoreNil = errors.New("conversation store cannot be nil")

	// ErrDispatcherNil is returned when the chat TUI is created without a dispatcher.
	ErrDispatcherNil = errors.New("request dispatcher cannot be nil")

	// ErrServiceStatus indicates the assistant service answered with a non-success HTTP status.
	ErrServiceStatus = errors.New("assistant service returned a non-success status")

	// ErrMalformedResponse indicates the assistant service body could not be decoded.
	ErrMalformedResponse = errors.New("assistant service returned a malformed response")

	// ErrUnknownMateria is returned when a materia filter is not one of the known subject areas.
	ErrUnknownMateria = errors.New("unknown materia")

	// ErrSemesterOutOfRange is returned when a semester filter is outside 1-10.
	ErrSemesterOutOfRange = errors.New("semester level must be between 1 and 10")

	// ErrMissingBaseURL is returned when no assistant service address is configured.
	ErrMissingBaseURL = errors.New("api.base_url is not configured")
)
