package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/services"
)

type AddFacultyRequest struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Domain      string      `json:"domain" validate:"required"`
	Slots       interface{} `json:"slots"`
	OfficeHours string      `json:"office_hours"`
}

type UpdateFacultyRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email" validate:"omitempty,email"`
	Domain      *string     `json:"domain"`
	Slots       interface{} `json:"slots"`
	OfficeHours *string     `json:"office_hours"`
}

// coerceSlots accepts supervision capacity as either a JSON number or a
// numeric string; the admin form submits both.
func coerceSlots(value interface{}) (int, error) {
	if value == nil {
		return 0, nil
	}
	return services.CoerceSlots(fmt.Sprint(value))
}

// ListFaculty is the public directory view. Supports ?q= substring search on
// name or domain, ?domain= exact filtering ("all" passes through),
// ?office_hours= substring filtering, and ?min_slots= for remaining capacity.
func ListFaculty(c *fiber.Ctx) error {
	var faculty []models.FacultyMember
	if err := database.DB.Order("created_at asc").Find(&faculty).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch faculty"})
	}

	faculty = services.FilterFaculty(faculty, c.Query("q"))
	faculty = services.FilterByDomain(faculty, c.Query("domain"))
	faculty = services.FilterByOfficeHours(faculty, c.Query("office_hours"))
	faculty = services.FilterByMinSlots(faculty, c.Query("min_slots"))

	if faculty == nil {
		faculty = []models.FacultyMember{}
	}
	return c.JSON(faculty)
}

func ListDomains(c *fiber.Ctx) error {
	return c.JSON(services.Domains)
}

func AddFacultyMember(c *fiber.Ctx) error {
	var req AddFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !services.IsValidDomain(req.Domain) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown research domain"})
	}

	slots, err := coerceSlots(req.Slots)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slots must be a non-negative number"})
	}

	newMember := models.FacultyMember{
		Name:        req.Name,
		Email:       req.Email,
		Domain:      req.Domain,
		Slots:       slots,
		OfficeHours: req.OfficeHours,
	}
	if err := database.DB.Create(&newMember).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A faculty member with this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add faculty member"})
	}

	go services.RecordActivity(fmt.Sprintf("Added faculty: %s", newMember.Name))
	go services.Notify(fmt.Sprintf("Faculty %s added.", newMember.Name))

	return c.Status(fiber.StatusCreated).JSON(newMember)
}

func UpdateFacultyMember(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")

	var req UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var member models.FacultyMember
	if err := database.DB.Where("id = ?", facultyID).First(&member).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty member not found"})
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Domain != nil {
		if !services.IsValidDomain(*req.Domain) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown research domain"})
		}
		member.Domain = *req.Domain
	}
	if req.Slots != nil {
		slots, err := coerceSlots(req.Slots)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slots must be a non-negative number"})
		}
		member.Slots = slots
	}
	if req.OfficeHours != nil {
		member.OfficeHours = *req.OfficeHours
	}

	if err := database.DB.Save(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A faculty member with this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update faculty member"})
	}

	go services.RecordActivity(fmt.Sprintf("Updated faculty: %s", member.Name))

	return c.JSON(member)
}

// DeleteFacultyMember removes a faculty member and every evaluation slot
// referencing them. Slots go first so a partial failure never leaves slots
// pointing at a missing member.
func DeleteFacultyMember(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")

	var member models.FacultyMember
	if err := database.DB.Where("id = ?", facultyID).First(&member).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Faculty member not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var slots []models.EvaluationSlot
		if err := tx.Find(&slots).Error; err != nil {
			return err
		}
		for _, slot := range services.SlotsOwnedBy(slots, member.ID) {
			if err := tx.Delete(&slot).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete faculty member"})
	}

	go services.RecordActivity(fmt.Sprintf("Removed faculty: %s", member.Name))
	go services.Notify(fmt.Sprintf("Faculty %s removed.", member.Name))

	return c.SendStatus(fiber.StatusNoContent)
}
