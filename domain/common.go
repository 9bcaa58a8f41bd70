package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrEntryNotFound  = errors.New("journal entry not found")
	ErrNoFileUploaded = errors.New("no file uploaded")
)
