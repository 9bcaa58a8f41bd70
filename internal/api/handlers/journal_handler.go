package handlers

import (
	"Journal-Backend/domain"
	"Journal-Backend/internal/api/presenters"
	"Journal-Backend/pkg/journal"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	JournalHandler interface {
		UploadEntry(c *fiber.Ctx) error
		CheckStatusAndProcess(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		GetEntriesToday(c *fiber.Ctx) error
		AnalyzeToday(c *fiber.Ctx) error
	}

	journalHandler struct {
		journalService journal.JournalService
		validator      *validator.Validate
	}
)

func NewJournalHandler(journalService journal.JournalService, validator *validator.Validate) JournalHandler {
	return &journalHandler{
		journalService: journalService,
		validator:      validator,
	}
}

func (h *journalHandler) UploadEntry(c *fiber.Ctx) error {
	req := new(domain.UploadEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEntry, domain.ErrNoFileUploaded)
	}

	req.File = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEntry, err)
	}

	res, err := h.journalService.UploadEntry(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadEntry)
}

func (h *journalHandler) CheckStatusAndProcess(c *fiber.Ctx) error {
	res, err := h.journalService.Sweep(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSweep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSweep)
}

func (h *journalHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.journalService.GetAllPopulatedEntries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *journalHandler) GetEntriesToday(c *fiber.Ctx) error {
	entries, err := h.journalService.GetEntriesFromToday(c.Context(), time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *journalHandler) AnalyzeToday(c *fiber.Ctx) error {
	res, err := h.journalService.AnalyzeTodaysEntries(c.Context(), time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeEntries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeEntries)
}
