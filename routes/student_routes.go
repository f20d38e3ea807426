package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mzohaibtariq/fyp_portal/handlers"
	"github.com/mzohaibtariq/fyp_portal/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	proposals := api.Group("/proposals", middleware.Protected())
	proposals.Post("", handlers.SubmitProposal)
	proposals.Get("/me", handlers.GetMyProposals)
	proposals.Delete("/:proposalId", handlers.DeleteMyProposal)

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
