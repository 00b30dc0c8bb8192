package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	RegistrationRoutes "forumlk_backend/internals/features/competitions/registrations/route"
	CommentRoutes "forumlk_backend/internals/features/forum/comments/route"
	PostRoutes "forumlk_backend/internals/features/forum/posts/route"
	VoteRoutes "forumlk_backend/internals/features/forum/votes/route"
	AccountRoutes "forumlk_backend/internals/features/users/user/route"
)

// UserRoutes: any authenticated user.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	AccountRoutes.UserAccountRoutes(api, db)
	PostRoutes.UserPostRoutes(api, db)
	CommentRoutes.UserCommentRoutes(api, db)
	VoteRoutes.UserVoteRoutes(api, db)
	RegistrationRoutes.UserRegistrationRoutes(api, db)
}
