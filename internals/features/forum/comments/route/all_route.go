package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/comments/controller"
)

// Public comment listing, nested under the post.
func AllCommentRoutes(api fiber.Router, db *gorm.DB) {
	commentCtrl := controller.NewCommentController(db)

	api.Get("/posts/:post_id/comments", commentCtrl.GetCommentsByPost)
}
