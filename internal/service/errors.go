package service

import "errors"

// Pipeline stage errors. Each stage surfaces its own failure and the
// pipeline halts there; nothing retries automatically.
var (
	// ErrInvalidFile means the uploaded bytes are not a decodable image or PDF.
	ErrInvalidFile = errors.New("file is not a supported image or PDF")

	// ErrExtraction covers extraction failures: the model call failed, the
	// response contained no isolable payload, or the payload was not valid JSON.
	ErrExtraction = errors.New("extraction failed")

	// ErrReconciliation wraps a storage failure while committing a reviewed
	// record to the ledger.
	ErrReconciliation = errors.New("reconciliation failed")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrReceiptNotFound    = errors.New("receipt not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrForbidden          = errors.New("resource belongs to another user")
)
