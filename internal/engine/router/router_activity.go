package router

import (
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) activityRouter(r fiber.Router, auth fiber.Handler) {
	activityGroup := r.Group("/team/:teamId/activity")
	{
		activityGroup.Get("/feed", auth, rt.activityFeed)
		activityGroup.Get("/milestones", auth, rt.activityMilestones)
	}
}

func (rt *Router) activityFeed(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.activity.Feed(member.TeamId, c.QueryInt("limit"), c.QueryInt("offset"))
	if err != nil {
		log.Errorf("load activity feed failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) activityMilestones(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.activity.Milestones(member.TeamId)
	if err != nil {
		log.Errorf("load milestones failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}
