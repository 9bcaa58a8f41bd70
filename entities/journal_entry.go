package entities

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DateOfEntry time.Time `gorm:"type:timestamp" json:"date_of_entry"`
	Text        string    `json:"text" gorm:"type:text"`
	BlobKey     string    `json:"blob_key,omitempty"`
	OcrJobID    string    `json:"ocr_job_id,omitempty"`

	Timestamp
}
