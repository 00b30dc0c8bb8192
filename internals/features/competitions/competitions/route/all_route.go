package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	competitionController "forumlk_backend/internals/features/competitions/competitions/controller"
)

// 🌐 Public (read-only)
func AllCompetitionRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := competitionController.NewCompetitionController(db)

	comps := router.Group("/competitions")
	comps.Get("/", ctrl.GetAllCompetitions)        // 📄 All competitions
	comps.Get("/:slug", ctrl.GetCompetitionBySlug) // 🔍 Detail + current pricing
}
