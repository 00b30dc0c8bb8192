package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/posts/controller"
)

// Public, read-only post routes.
func AllPostRoutes(api fiber.Router, db *gorm.DB) {
	postCtrl := controller.NewPostController(db)

	posts := api.Group("/posts")
	posts.Get("/", postCtrl.GetAllPosts)
	posts.Get("/:slug", postCtrl.GetPostBySlug)
}
