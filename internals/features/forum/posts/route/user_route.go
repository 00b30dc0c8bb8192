package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/posts/controller"
)

// Authenticated post routes (author actions).
func UserPostRoutes(api fiber.Router, db *gorm.DB) {
	postCtrl := controller.NewPostController(db)

	posts := api.Group("/posts")
	posts.Post("/", postCtrl.CreatePost)
	posts.Get("/mine", postCtrl.GetMyPosts)
	posts.Put("/:id", postCtrl.UpdatePost)
	posts.Delete("/:id", postCtrl.DeletePost)
}
