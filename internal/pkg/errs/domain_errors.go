package errs

import "errors"

// Domain-specific sentinel errors shared across the usecase and handler layers
var (
	// Session errors
	ErrSessionNotFound        = errors.New("booking session not found")
	ErrConcurrentModification = errors.New("booking session modified concurrently")

	// Collaborator errors
	ErrTargetNotFound   = errors.New("booking target not found")
	ErrProviderFailed   = errors.New("data provider failed")
	ErrSubmissionFailed = errors.New("booking submission failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
