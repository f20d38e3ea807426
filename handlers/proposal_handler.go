package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/services"
	"github.com/mzohaibtariq/fyp_portal/utils"
)

type SubmitProposalRequest struct {
	Title         string  `json:"title" validate:"required,min=5"`
	Description   string  `json:"description" validate:"required,min=20"`
	SupervisorID  *string `json:"supervisor_id" validate:"omitempty,uuid"`
	AttachmentURL *string `json:"attachment_url" validate:"omitempty,url"`
}

func SubmitProposal(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SubmitProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var student models.User
	if err := database.DB.Where("id = ?", userID).First(&student).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "You must be logged in to submit a proposal"})
	}

	studentName := student.FullName
	if studentName == "" {
		studentName = "Anonymous Student"
	}

	// Domain is copied from the chosen supervisor at submission time; an
	// unknown or absent supervisor yields the default domain.
	var supervisor *models.FacultyMember
	var supervisorID *uuid.UUID
	if req.SupervisorID != nil {
		id, _ := uuid.Parse(*req.SupervisorID)
		var member models.FacultyMember
		if err := database.DB.Where("id = ?", id).First(&member).Error; err == nil {
			supervisor = &member
			supervisorID = &member.ID
		}
	}

	var newProposal models.Proposal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueProposalReference(tx)
		if err != nil {
			return err
		}

		newProposal = models.Proposal{
			Reference:     reference,
			Title:         req.Title,
			Description:   req.Description,
			StudentName:   studentName,
			StudentEmail:  student.Email,
			SubmittedBy:   student.ID,
			SupervisorID:  supervisorID,
			Domain:        services.ResolveDomain(supervisor),
			Status:        services.StatusPending,
			AttachmentURL: req.AttachmentURL,
		}
		return tx.Create(&newProposal).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit proposal"})
	}
	newProposal.Supervisor = supervisor

	go services.RecordActivity(fmt.Sprintf("New proposal submitted: %s by %s", newProposal.Title, studentName))

	return c.Status(fiber.StatusCreated).JSON(newProposal)
}

// GetMyProposals lists the signed-in student's proposals, most recent first.
func GetMyProposals(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var proposals []models.Proposal
	err := database.DB.
		Preload("Supervisor").
		Preload("Comments").
		Where("submitted_by = ?", userID).
		Order("submitted_at desc, id").
		Find(&proposals).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch proposals"})
	}

	return c.JSON(proposals)
}

// DeleteMyProposal lets the submitting student withdraw a proposal. No one
// else may delete it through this endpoint.
func DeleteMyProposal(c *fiber.Ctx) error {
	userID := currentUserID(c)
	proposalID := c.Params("proposalId")

	var proposal models.Proposal
	if err := database.DB.Where("id = ?", proposalID).First(&proposal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}

	if proposal.SubmittedBy != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own proposals"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_id = ?", proposal.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&proposal).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete proposal"})
	}

	go services.RecordActivity(fmt.Sprintf("Proposal withdrawn: %s", proposal.Title))

	return c.SendStatus(fiber.StatusNoContent)
}
