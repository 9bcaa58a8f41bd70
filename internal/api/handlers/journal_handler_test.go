package handlers_test

import (
	"Journal-Backend/domain"
	"Journal-Backend/internal/api/handlers"
	"Journal-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) UploadEntry(ctx context.Context, req domain.UploadEntryRequest) (domain.UploadEntryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.UploadEntryResponse), args.Error(1)
}

func (m *MockJournalService) Sweep(ctx context.Context) (domain.SweepResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SweepResponse), args.Error(1)
}

func (m *MockJournalService) GetAllPopulatedEntries(ctx context.Context) ([]domain.JournalEntryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryResponse), args.Error(1)
}

func (m *MockJournalService) GetEntriesFromToday(ctx context.Context, now time.Time) ([]domain.JournalEntryResponse, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryResponse), args.Error(1)
}

func (m *MockJournalService) AnalyzeTodaysEntries(ctx context.Context, now time.Time) (domain.AnalysisResponse, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(domain.AnalysisResponse), args.Error(1)
}

func newTestApp(service *MockJournalService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := handlers.NewJournalHandler(service, utils.Validate)

	journal := app.Group("/api/v1/journal")
	journal.Post("/upload", handler.UploadEntry)
	journal.Get("/check-status-and-process", handler.CheckStatusAndProcess)
	journal.Get("/entries", handler.GetEntries)
	journal.Get("/entries/today", handler.GetEntriesToday)
	journal.Get("/entries/today/analysis", handler.AnalyzeToday)
	return app
}

func TestUploadEntry_MissingFile(t *testing.T) {
	service := new(MockJournalService)
	app := newTestApp(service)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("date_of_entry", "2024-01-01"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	service.AssertNotCalled(t, "UploadEntry", mock.Anything, mock.Anything)
}

func TestUploadEntry_Success(t *testing.T) {
	service := new(MockJournalService)
	app := newTestApp(service)

	service.On("UploadEntry", mock.Anything, mock.MatchedBy(func(req domain.UploadEntryRequest) bool {
		return req.File != nil && req.DateOfEntry == "2024-01-01"
	})).Return(domain.UploadEntryResponse{
		ID:       "abc",
		OcrJobID: "J1",
		Status:   domain.EntryStatusPending,
	}, nil).Once()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "page.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("date_of_entry", "2024-01-01"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journal/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	service.AssertExpectations(t)
}

func TestCheckStatusAndProcess_ReturnsCounts(t *testing.T) {
	service := new(MockJournalService)
	app := newTestApp(service)

	service.On("Sweep", mock.Anything).
		Return(domain.SweepResponse{Processed: 2, Skipped: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/check-status-and-process", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		Data domain.SweepResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, 2, parsed.Data.Processed)
	assert.Equal(t, 1, parsed.Data.Skipped)
}

func TestGetEntries(t *testing.T) {
	service := new(MockJournalService)
	app := newTestApp(service)

	service.On("GetAllPopulatedEntries", mock.Anything).
		Return([]domain.JournalEntryResponse{
			{ID: "abc", Text: "Dear diary.", Status: domain.EntryStatusComplete},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/entries", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		Data []domain.JournalEntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Len(t, parsed.Data, 1)
	assert.Equal(t, "Dear diary.", parsed.Data[0].Text)
}

func TestGetEntries_ServiceError(t *testing.T) {
	service := new(MockJournalService)
	app := newTestApp(service)

	service.On("GetAllPopulatedEntries", mock.Anything).
		Return(nil, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/journal/entries", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
