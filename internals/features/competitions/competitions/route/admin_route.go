package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	competitionController "forumlk_backend/internals/features/competitions/competitions/controller"
)

// 🔐 Admin (manage competitions)
func AdminCompetitionRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := competitionController.NewCompetitionController(db)

	comps := router.Group("/competitions")
	comps.Post("/", ctrl.CreateCompetition)
	comps.Put("/:id", ctrl.UpdateCompetition)
	comps.Delete("/:id", ctrl.DeleteCompetition)
}
