package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/ads/advertisements/controller"
)

// Public ad serving and click tracking.
func AllAdvertisementRoutes(api fiber.Router, db *gorm.DB) {
	adCtrl := controller.NewAdvertisementController(db)

	ads := api.Group("/ads")
	ads.Get("/", adCtrl.GetActiveAdvertisements)
	ads.Post("/:id/click", adCtrl.TrackClick)
}
