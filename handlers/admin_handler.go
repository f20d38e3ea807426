package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/mzohaibtariq/fyp_portal/database"
	"github.com/mzohaibtariq/fyp_portal/models"
	"github.com/mzohaibtariq/fyp_portal/services"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// ListAllProposals is the review view for admins and faculty. Supports ?q=
// substring search on title or student name.
func ListAllProposals(c *fiber.Ctx) error {
	query := database.DB.Preload("Supervisor").Preload("Comments")

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title ILIKE ? OR student_name ILIKE ?", pattern, pattern)
	}

	var proposals []models.Proposal
	if err := query.Find(&proposals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch proposals"})
	}

	return c.JSON(proposals)
}

func UpdateProposalStatus(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status, err := services.CanonicalStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status must be one of pending, approved, rejected, revision"})
	}

	var proposal models.Proposal
	if err := database.DB.Preload("Supervisor").Where("id = ?", proposalID).First(&proposal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}

	if err := database.DB.Model(&proposal).Update("status", status).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update proposal status"})
	}
	proposal.Status = status

	go services.RecordActivity(fmt.Sprintf("Project %s status changed to %s", proposal.Title, status))
	go services.Notify(fmt.Sprintf("Proposal %q is now %s.", proposal.Title, status))

	if status == services.StatusApproved {
		go services.GenerateApprovalLetter(proposal)
	}

	return c.JSON(proposal)
}

func AddProposalComment(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	// Whitespace-only comments are dropped without touching the thread.
	text, ok := services.NormalizeComment(req.Text)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment cannot be empty"})
	}

	var proposal models.Proposal
	if err := database.DB.Where("id = ?", proposalID).First(&proposal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}

	author := "Admin"
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	var reviewer models.User
	if err := database.DB.Where("id = ?", claims["user_id"]).First(&reviewer).Error; err == nil {
		author = reviewer.FullName
	}

	comment := models.Comment{
		ProposalID: proposal.ID,
		Author:     author,
		Text:       text,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add comment"})
	}

	go services.RecordActivity(fmt.Sprintf("Comment added to project %s", proposal.Title))

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ApproveAllPending flips every pending proposal to approved in one action.
func ApproveAllPending(c *fiber.Ctx) error {
	var pending []models.Proposal
	if err := database.DB.Preload("Supervisor").Where("status = ?", services.StatusPending).Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pending proposals"})
	}

	if len(pending) == 0 {
		return c.JSON(fiber.Map{"message": "No pending proposals", "approved": 0})
	}

	err := database.DB.Model(&models.Proposal{}).
		Where("status = ?", services.StatusPending).
		Update("status", services.StatusApproved).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve pending proposals"})
	}

	for _, proposal := range pending {
		proposal.Status = services.StatusApproved
		go services.RecordActivity(fmt.Sprintf("Project %s status changed to %s", proposal.Title, services.StatusApproved))
		go services.GenerateApprovalLetter(proposal)
	}
	go services.Notify(fmt.Sprintf("%d pending proposals approved.", len(pending)))

	return c.JSON(fiber.Map{"message": "All pending proposals approved", "approved": len(pending)})
}

// GetDashboardStats returns the totals and the per-status breakdown shown on
// the admin dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	var proposals []models.Proposal
	if err := database.DB.Find(&proposals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch proposals"})
	}

	var facultyCount, slotCount int64
	database.DB.Model(&models.FacultyMember{}).Count(&facultyCount)
	database.DB.Model(&models.EvaluationSlot{}).Count(&slotCount)

	return c.JSON(fiber.Map{
		"total_proposals":  len(proposals),
		"total_faculty":    facultyCount,
		"total_slots":      slotCount,
		"status_breakdown": services.StatusCounts(proposals),
	})
}

func GetActivityLog(c *fiber.Ctx) error {
	var entries []models.ActivityLogEntry
	if err := database.DB.Order("created_at desc").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch activity log"})
	}
	return c.JSON(entries)
}

func GetNotifications(c *fiber.Ctx) error {
	var items []models.Notification
	if err := database.DB.Order("created_at desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}
	return c.JSON(items)
}
