package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) memberRouter(r fiber.Router, auth fiber.Handler) {
	memberGroup := r.Group("/team/:teamId/member")
	{
		memberGroup.Get("/list", auth, rt.listMembers)
		memberGroup.Get("/mentees", auth, rt.listMentees)
		memberGroup.Put("/:memberId/role", auth, rt.changeRole)
		memberGroup.Delete("/:memberId", auth, rt.removeMember)
	}
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.member.ListMembers(member.TeamId)
	if err != nil {
		log.Errorf("list members failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) listMentees(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.permission.VerifyMentorOrCoach(member); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.member.ListMentees(member.TeamId)
	if err != nil {
		log.Errorf("list mentees failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) changeRole(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapManageMembers)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.ChangeRoleReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.member.ChangeRole(member.TeamId, c.Params("memberId"), req.Role)
	if err != nil {
		log.Errorf("change member role failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) removeMember(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.member.RemoveMember(member.TeamId, c.Params("memberId"), member); err != nil {
		log.Errorf("remove member failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepNotDetail(c)
}
