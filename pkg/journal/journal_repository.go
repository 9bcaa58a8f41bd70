package journal

import (
	"Journal-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	JournalRepository interface {
		Create(ctx context.Context, entry *entities.JournalEntry) error
		GetByID(ctx context.Context, id string) (*entities.JournalEntry, error)
		// FindPendingWithJob returns entries still waiting on an async text
		// detection job: empty text, non-empty job id, created no earlier
		// than since. Entries with text are never returned.
		FindPendingWithJob(ctx context.Context, since time.Time) ([]*entities.JournalEntry, error)
		FindByDateRange(ctx context.Context, start, end time.Time) ([]*entities.JournalEntry, error)
		FindAllNonEmpty(ctx context.Context) ([]*entities.JournalEntry, error)
		UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	}

	journalRepository struct {
		db *gorm.DB
	}
)

// date_of_entry is set once at creation, and ocr_job_id is never reassigned
// once set. Partial updates silently drop them.
var protectedColumns = []string{"id", "date_of_entry", "ocr_job_id", "created_at"}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(ctx context.Context, entry *entities.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) GetByID(ctx context.Context, id string) (*entities.JournalEntry, error) {
	var entry entities.JournalEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) FindPendingWithJob(ctx context.Context, since time.Time) ([]*entities.JournalEntry, error) {
	var entries []*entities.JournalEntry

	if err := r.db.WithContext(ctx).
		Where("text = ? AND ocr_job_id <> ? AND created_at >= ?", "", "", since).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entities.JournalEntry, error) {
	var entries []*entities.JournalEntry

	if err := r.db.WithContext(ctx).
		Where("date_of_entry BETWEEN ? AND ?", start, end).
		Order("date_of_entry asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) FindAllNonEmpty(ctx context.Context) ([]*entities.JournalEntry, error) {
	var entries []*entities.JournalEntry

	if err := r.db.WithContext(ctx).
		Where("text <> ?", "").
		Order("date_of_entry asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	sanitized := sanitizeUpdateFields(fields)
	if len(sanitized) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&entities.JournalEntry{}).
		Where("id = ?", id).
		Updates(sanitized).Error
}

func sanitizeUpdateFields(fields map[string]interface{}) map[string]interface{} {
	sanitized := make(map[string]interface{}, len(fields))
	for column, value := range fields {
		sanitized[column] = value
	}
	for _, column := range protectedColumns {
		delete(sanitized, column)
	}
	return sanitized
}
