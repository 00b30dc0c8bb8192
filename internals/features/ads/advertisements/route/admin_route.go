package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/ads/advertisements/controller"
)

// Admin ad management.
func AdminAdvertisementRoutes(api fiber.Router, db *gorm.DB) {
	adCtrl := controller.NewAdvertisementController(db)

	ads := api.Group("/ads")
	ads.Get("/", adCtrl.GetAllAdvertisements)
	ads.Post("/", adCtrl.CreateAdvertisement)
	ads.Put("/:id", adCtrl.UpdateAdvertisement)
	ads.Delete("/:id", adCtrl.DeleteAdvertisement)
}
