package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"forumlk_backend/internals/features/forum/votes/controller"
	"forumlk_backend/internals/middlewares"
)

// Authenticated voting routes, rate limited per user.
func UserVoteRoutes(api fiber.Router, db *gorm.DB) {
	voteCtrl := controller.NewVoteController(db)

	api.Post("/posts/:post_id/vote", middlewares.VoteRateLimiter(), voteCtrl.CastVote)
	api.Delete("/posts/:post_id/vote", voteCtrl.RemoveVote)
}
