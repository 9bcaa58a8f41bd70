package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	EntryStatusPending  = "Pending"
	EntryStatusComplete = "Complete"

	ExtractionModeVision   = "vision"
	ExtractionModeTextract = "textract"
)

var (
	MessageSuccessUploadEntry    = "journal entry uploaded successfully"
	MessageSuccessSweep          = "pending entries processed"
	MessageSuccessGetEntries     = "journal entries retrieved successfully"
	MessageSuccessAnalyzeEntries = "today's entries analyzed successfully"

	MessageFailedUploadEntry    = "failed to upload journal entry"
	MessageFailedSweep          = "failed to process pending entries"
	MessageFailedGetEntries     = "failed to retrieve journal entries"
	MessageFailedAnalyzeEntries = "failed to analyze today's entries"

	ErrInvalidDateOfEntry = errors.New("invalid date of entry")
	ErrStorageUpload      = errors.New("failed to upload image to storage")
	ErrStorageDelete      = errors.New("failed to delete image from storage")
	ErrSignedURL          = errors.New("failed to create signed url")
	ErrOcrSubmit          = errors.New("failed to submit document for text detection")
	ErrOcrPoll            = errors.New("failed to poll text detection job")
	ErrEmptyExtraction    = errors.New("vision model returned no text")
	ErrNormalization      = errors.New("text correction failed")
)

type (
	UploadEntryRequest struct {
		File        *multipart.FileHeader `json:"file" form:"file" validate:"required"`
		DateOfEntry string                `json:"date_of_entry" form:"date_of_entry" validate:"omitempty"`
	}

	UploadEntryResponse struct {
		ID          string    `json:"id"`
		DateOfEntry time.Time `json:"date_of_entry"`
		Text        string    `json:"text,omitempty"`
		OcrJobID    string    `json:"ocr_job_id,omitempty"`
		Status      string    `json:"status"`
	}

	JournalEntryResponse struct {
		ID          string    `json:"id"`
		DateOfEntry time.Time `json:"date_of_entry"`
		Text        string    `json:"text"`
		BlobKey     string    `json:"blob_key,omitempty"`
		OcrJobID    string    `json:"ocr_job_id,omitempty"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
	}

	SweepResponse struct {
		Processed int `json:"processed"`
		Skipped   int `json:"skipped"`
		Failed    int `json:"failed"`
	}

	AnalysisResponse struct {
		Analysis   string `json:"analysis"`
		EntryCount int    `json:"entry_count"`
	}
)
