package journal

import (
	"Journal-Backend/domain"
	"Journal-Backend/entities"
	"Journal-Backend/internal/utils/storage"
	"Journal-Backend/pkg/llm"
	"Journal-Backend/pkg/ocr"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	JournalService interface {
		UploadEntry(ctx context.Context, req domain.UploadEntryRequest) (domain.UploadEntryResponse, error)
		Sweep(ctx context.Context) (domain.SweepResponse, error)
		GetAllPopulatedEntries(ctx context.Context) ([]domain.JournalEntryResponse, error)
		GetEntriesFromToday(ctx context.Context, now time.Time) ([]domain.JournalEntryResponse, error)
		AnalyzeTodaysEntries(ctx context.Context, now time.Time) (domain.AnalysisResponse, error)
	}

	journalService struct {
		journalRepository JournalRepository
		s3                storage.AwsS3
		ocrClient         ocr.OcrClient
		llmClient         llm.LlmClient
		extractionMode    string
		maxPendingAge     time.Duration
	}
)

func NewJournalService(
	journalRepository JournalRepository,
	s3 storage.AwsS3,
	ocrClient ocr.OcrClient,
	llmClient llm.LlmClient,
	extractionMode string,
	maxPendingAge time.Duration,
) JournalService {
	if extractionMode == "" {
		extractionMode = domain.ExtractionModeTextract
	}
	return &journalService{
		journalRepository: journalRepository,
		s3:                s3,
		ocrClient:         ocrClient,
		llmClient:         llmClient,
		extractionMode:    extractionMode,
		maxPendingAge:     maxPendingAge,
	}
}

func (s *journalService) UploadEntry(ctx context.Context, req domain.UploadEntryRequest) (domain.UploadEntryResponse, error) {
	if req.File == nil {
		return domain.UploadEntryResponse{}, domain.ErrNoFileUploaded
	}

	dateOfEntry, err := parseDateOfEntry(req.DateOfEntry)
	if err != nil {
		return domain.UploadEntryResponse{}, err
	}

	file, err := req.File.Open()
	if err != nil {
		return domain.UploadEntryResponse{}, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.UploadEntryResponse{}, err
	}

	objectKey := uuid.New().String()
	if err := s.s3.UploadBytes(objectKey, fileData); err != nil {
		return domain.UploadEntryResponse{}, fmt.Errorf("%w: %v", domain.ErrStorageUpload, err)
	}

	if s.extractionMode == domain.ExtractionModeVision {
		return s.ingestVision(ctx, dateOfEntry, objectKey)
	}
	return s.ingestTextract(ctx, dateOfEntry, objectKey)
}

// ingestVision extracts text in one round trip and persists a complete entry.
// On extraction or persistence failure the object is left in storage for
// manual inspection; there is no retry inside this call.
func (s *journalService) ingestVision(ctx context.Context, dateOfEntry time.Time, objectKey string) (domain.UploadEntryResponse, error) {
	signedURL, err := s.s3.PresignGet(objectKey)
	if err != nil {
		return domain.UploadEntryResponse{}, fmt.Errorf("%w: %v", domain.ErrSignedURL, err)
	}

	text, err := s.llmClient.ExtractTextFromImage(ctx, signedURL)
	if err != nil {
		return domain.UploadEntryResponse{}, err
	}

	entry := &entities.JournalEntry{
		ID:          uuid.New(),
		DateOfEntry: dateOfEntry,
		Text:        text,
		BlobKey:     objectKey,
	}

	if err := s.journalRepository.Create(ctx, entry); err != nil {
		return domain.UploadEntryResponse{}, err
	}

	// The persisted record is the source of truth; the blob is disposable
	// cache. A delete failure is logged and the record stands.
	if err := s.s3.DeleteFile(objectKey); err != nil {
		log.Printf("error deleting object %s after persist: %v", objectKey, err)
	} else if err := s.journalRepository.UpdateFields(ctx, entry.ID.String(), map[string]interface{}{"blob_key": ""}); err != nil {
		log.Printf("error clearing blob key for entry %s: %v", entry.ID.String(), err)
	}

	return domain.UploadEntryResponse{
		ID:          entry.ID.String(),
		DateOfEntry: entry.DateOfEntry,
		Text:        entry.Text,
		Status:      domain.EntryStatusComplete,
	}, nil
}

// ingestTextract submits an async text detection job and persists a pending
// entry. A failed submit still persists the entry, with an empty job id, so
// the upload stays visible; such entries are never picked up by the sweep.
func (s *journalService) ingestTextract(ctx context.Context, dateOfEntry time.Time, objectKey string) (domain.UploadEntryResponse, error) {
	jobID, err := s.ocrClient.SubmitJob(ctx, objectKey)
	if err != nil {
		log.Printf("error submitting object %s for text detection: %v", objectKey, err)
		jobID = ""
	}
	if jobID == "" {
		log.Printf("no job id for object %s; entry will not be swept", objectKey)
	}

	entry := &entities.JournalEntry{
		ID:          uuid.New(),
		DateOfEntry: dateOfEntry,
		Text:        "",
		BlobKey:     objectKey,
		OcrJobID:    jobID,
	}

	if err := s.journalRepository.Create(ctx, entry); err != nil {
		return domain.UploadEntryResponse{}, err
	}

	return domain.UploadEntryResponse{
		ID:          entry.ID.String(),
		DateOfEntry: entry.DateOfEntry,
		OcrJobID:    entry.OcrJobID,
		Status:      domain.EntryStatusPending,
	}, nil
}

// Sweep advances entries left pending by the async ingest path. Safe under
// repeated invocation: entries whose jobs have not finished are skipped and
// retried next time, and a failure on one entry never aborts the rest of the
// batch.
func (s *journalService) Sweep(ctx context.Context) (domain.SweepResponse, error) {
	since := time.Time{}
	if s.maxPendingAge > 0 {
		since = time.Now().Add(-s.maxPendingAge)
	}

	pending, err := s.journalRepository.FindPendingWithJob(ctx, since)
	if err != nil {
		return domain.SweepResponse{}, err
	}

	var result domain.SweepResponse
	for _, entry := range pending {
		status, err := s.ocrClient.GetJobStatus(ctx, entry.OcrJobID)
		if err != nil {
			log.Printf("error polling job %s for entry %s: %v", entry.OcrJobID, entry.ID.String(), err)
			result.Failed++
			continue
		}

		if !status.Complete {
			result.Skipped++
			continue
		}

		rawText := assembleText(status.Lines)
		corrected, err := s.llmClient.Correct(ctx, rawText)
		if err != nil {
			// Extracted text is not persisted raw; the entry stays pending
			// and is corrected on a later sweep.
			log.Printf("error correcting text for entry %s: %v", entry.ID.String(), err)
			result.Failed++
			continue
		}

		if err := s.journalRepository.UpdateFields(ctx, entry.ID.String(), map[string]interface{}{"text": corrected}); err != nil {
			log.Printf("error updating entry %s: %v", entry.ID.String(), err)
			result.Failed++
			continue
		}

		result.Processed++
	}

	return result, nil
}

func (s *journalService) GetAllPopulatedEntries(ctx context.Context) ([]domain.JournalEntryResponse, error) {
	entries, err := s.journalRepository.FindAllNonEmpty(ctx)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *journalService) GetEntriesFromToday(ctx context.Context, now time.Time) ([]domain.JournalEntryResponse, error) {
	start, end := dayBounds(now)
	entries, err := s.journalRepository.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *journalService) AnalyzeTodaysEntries(ctx context.Context, now time.Time) (domain.AnalysisResponse, error) {
	entries, err := s.GetEntriesFromToday(ctx, now)
	if err != nil {
		return domain.AnalysisResponse{}, err
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry.Text)
	}

	if sb.Len() == 0 {
		return domain.AnalysisResponse{EntryCount: len(entries)}, nil
	}

	analysis, err := s.llmClient.AnalyzeEntries(ctx, sb.String())
	if err != nil {
		return domain.AnalysisResponse{}, err
	}

	return domain.AnalysisResponse{
		Analysis:   analysis,
		EntryCount: len(entries),
	}, nil
}

// assembleText joins line blocks in service order, each preceded by a single
// newline. No reordering, no deduplication; this is the text the user sees.
func assembleText(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}

// dayBounds returns the inclusive bounds of the calendar day containing now,
// 00:00:00.000 through 23:59:59.999 in now's location.
func dayBounds(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999000000, now.Location())
	return start, end
}

func parseDateOfEntry(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, domain.ErrInvalidDateOfEntry
}

func toEntryResponses(entries []*entities.JournalEntry) []domain.JournalEntryResponse {
	var response []domain.JournalEntryResponse
	for _, entry := range entries {
		status := domain.EntryStatusComplete
		if entry.Text == "" {
			status = domain.EntryStatusPending
		}
		response = append(response, domain.JournalEntryResponse{
			ID:          entry.ID.String(),
			DateOfEntry: entry.DateOfEntry,
			Text:        entry.Text,
			BlobKey:     entry.BlobKey,
			OcrJobID:    entry.OcrJobID,
			Status:      status,
			CreatedAt:   entry.CreatedAt,
		})
	}
	return response
}
