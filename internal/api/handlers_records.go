package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/habitual/internal/services"
)

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	skip, limit, err := parsePagination(c)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	handler.ensureDependencies()
	records, total, err := handler.recordService.ListRecords(target.user.ID, target.habitID, skip, limit)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newPageView(records, total, newRecordView))
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	input := recordCreateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	record, err := handler.recordService.CreateRecord(target.user.ID, target.habitID, services.NewRecord{
		Completed:   input.Completed,
		Value:       input.Value,
		CompletedAt: input.CompletedAt,
	}, handler.now())
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newRecordView(&record))
}

func (handler *Handler) ReadRecord(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	recordID, ok := parseRecordID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	handler.ensureDependencies()
	record, err := handler.recordService.GetRecord(target.user.ID, target.habitID, recordID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newRecordView(&record))
}

func (handler *Handler) UpdateRecord(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	recordID, ok := parseRecordID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}
	input := recordUpdateInput{}
	if ok, err := handler.bindInput(c, &input); !ok {
		return err
	}

	handler.ensureDependencies()
	record, err := handler.recordService.UpdateRecord(target.user.ID, target.habitID, recordID, services.RecordChanges{
		Completed:   input.Completed,
		Value:       input.Value,
		CompletedAt: input.CompletedAt,
	})
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(newRecordView(&record))
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	target, ok, err := handler.habitRequestTarget(c)
	if !ok {
		return err
	}
	recordID, ok := parseRecordID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid record id")
	}

	handler.ensureDependencies()
	if err := handler.recordService.DeleteRecord(target.user.ID, target.habitID, recordID); err != nil {
		return handler.respondServiceError(c, err)
	}
	return messageResponse(c, "Record deleted successfully")
}

func parseRecordID(c *fiber.Ctx) (uuid.UUID, bool) {
	return parseUUIDParam(c, "record_id")
}
