package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mzohaibtariq/fyp_portal/handlers"
	"github.com/mzohaibtariq/fyp_portal/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.GetDashboardStats)
	admin.Get("/activity-log", handlers.GetActivityLog)
	admin.Get("/notifications", handlers.GetNotifications)

	admin.Get("/proposals", handlers.ListAllProposals)
	admin.Put("/proposals/:proposalId/status", handlers.UpdateProposalStatus)
	admin.Post("/proposals/:proposalId/comments", handlers.AddProposalComment)
	admin.Post("/proposals/approve-pending", handlers.ApproveAllPending)

	faculty := admin.Group("/faculty")
	faculty.Post("", handlers.AddFacultyMember)
	faculty.Put("/:facultyId", handlers.UpdateFacultyMember)
	faculty.Delete("/:facultyId", handlers.DeleteFacultyMember)

	slots := admin.Group("/evaluation-slots")
	slots.Get("", handlers.ListEvaluationSlots)
	slots.Post("", handlers.AddEvaluationSlot)
	slots.Delete("/:slotId", handlers.DeleteEvaluationSlot)
}
