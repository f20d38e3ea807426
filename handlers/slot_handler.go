package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/services"
)

type AddSlotRequest struct {
	FacultyID string `json:"faculty_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

func AddEvaluationSlot(c *fiber.Ctx) error {
	var req AddSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Slots must always point at an existing faculty member.
	var faculty models.FacultyMember
	if err := database.DB.Where("id = ?", req.FacultyID).First(&faculty).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty member not found"})
	}

	newSlot := models.EvaluationSlot{
		FacultyID: faculty.ID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    "available",
	}
	if err := database.DB.Create(&newSlot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create evaluation slot"})
	}
	newSlot.Faculty = faculty

	go services.RecordActivity(fmt.Sprintf("Added evaluation slot for %s", faculty.Name))

	return c.Status(fiber.StatusCreated).JSON(newSlot)
}

func ListEvaluationSlots(c *fiber.Ctx) error {
	var slots []models.EvaluationSlot
	if err := database.DB.Preload("Faculty").Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch evaluation slots"})
	}
	return c.JSON(slots)
}

func DeleteEvaluationSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")

	var slot models.EvaluationSlot
	if err := database.DB.Preload("Faculty").Where("id = ?", slotID).First(&slot).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Evaluation slot not found"})
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete evaluation slot"})
	}

	go services.RecordActivity(fmt.Sprintf("Removed evaluation slot for %s", slot.Faculty.Name))

	return c.SendStatus(fiber.StatusNoContent)
}
