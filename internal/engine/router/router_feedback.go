package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) feedbackRouter(r fiber.Router, auth fiber.Handler) {
	feedbackGroup := r.Group("/team/:teamId/feedback")
	{
		feedbackGroup.Post("/create", auth, rt.createFeedback)
		feedbackGroup.Get("/list", auth, rt.listFeedback)
		feedbackGroup.Get("/:feedbackId", auth, rt.getFeedback)
	}
}

func (rt *Router) getFeedback(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.feedback.GetFeedback(member.TeamId, c.Params("feedbackId"))
	if err != nil {
		log.Errorf("get feedback failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) createFeedback(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapProvideFeedback)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.permission.VerifyMentorOrCoach(member); err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.CreateFeedbackReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.feedback.CreateFeedback(member.TeamId, member.UserId, &req)
	if err != nil {
		log.Errorf("create feedback failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepCreated(c, result)
}

func (rt *Router) listFeedback(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	query := &model.FeedbackQuery{
		TeamId:       member.TeamId,
		FeedbackType: c.Query("feedbackType"),
		MenteeId:     c.Query("menteeId"),
		Limit:        c.QueryInt("limit"),
		Offset:       c.QueryInt("offset"),
	}

	result, err := rt.feedback.ListFeedback(query)
	if err != nil {
		log.Errorf("list feedback failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}
