package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mzohaibtariq/fyp_portal/handlers"
	"github.com/mzohaibtariq/fyp_portal/middleware"
)

func FacultyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	faculty := api.Group("/faculty", middleware.Protected(), middleware.FacultyRequired())
	faculty.Post("", handlers.AddFacultyMember)
	faculty.Put("/:facultyId", handlers.UpdateFacultyMember)

	review := api.Group("/review", middleware.Protected(), middleware.FacultyRequired())
	review.Get("/proposals", handlers.ListAllProposals)
	review.Put("/proposals/:proposalId/status", handlers.UpdateProposalStatus)
	review.Post("/proposals/:proposalId/comments", handlers.AddProposalComment)
}
