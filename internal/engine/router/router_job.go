package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) jobRouter(r fiber.Router, auth fiber.Handler) {
	jobGroup := r.Group("/team/:teamId/job")
	{
		jobGroup.Post("/share", auth, rt.shareJob)
		jobGroup.Get("/shared", auth, rt.listSharedJobs)
	}
}

func (rt *Router) shareJob(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapShareJobs)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.ShareJobReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.job.ShareJob(member.TeamId, member.UserId, &req)
	if err != nil {
		log.Errorf("share job failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepCreated(c, result)
}

func (rt *Router) listSharedJobs(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.job.ListSharedJobs(member.TeamId)
	if err != nil {
		log.Errorf("list shared jobs failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}
