package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/http/middleware"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) analyticsRouter(r fiber.Router, auth fiber.Handler) {
	analyticsGroup := r.Group("/team/:teamId/analytics")
	{
		analyticsGroup.Get("/dashboard", auth, rt.teamDashboard)
		analyticsGroup.Get("/mentee/:userId", auth, rt.menteeProgress)
		analyticsGroup.Get("/comparison", auth, rt.teamComparison)
	}
}

func (rt *Router) teamDashboard(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapViewAnalytics)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.analytics.Dashboard(member.TeamId)
	if err != nil {
		log.Errorf("compute team dashboard failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

// menteeProgress is self-service for the mentee and otherwise restricted to
// mentors and coaches.
func (rt *Router) menteeProgress(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapViewAnalytics)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	userId := c.Params("userId")
	if userId == "" {
		return rt.replyServiceError(c, errUserIdEmpty)
	}

	if userId != middleware.UserId(c) {
		if err := rt.permission.VerifyMentorOrCoach(member); err != nil {
			return rt.replyServiceError(c, err)
		}
	}

	result, err := rt.analytics.MenteeProgress(member.TeamId, userId)
	if err != nil {
		log.Errorf("compute mentee progress failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) teamComparison(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapViewAnalytics)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.analytics.TeamComparison(member.TeamId)
	if err != nil {
		log.Errorf("compute team comparison failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}
