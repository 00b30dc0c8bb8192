package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/comments/controller"
)

// Authenticated comment routes.
func UserCommentRoutes(api fiber.Router, db *gorm.DB) {
	commentCtrl := controller.NewCommentController(db)

	api.Post("/posts/:post_id/comments", commentCtrl.CreateComment)
	api.Put("/comments/:id", commentCtrl.UpdateComment)
	api.Delete("/comments/:id", commentCtrl.DeleteComment)
}
