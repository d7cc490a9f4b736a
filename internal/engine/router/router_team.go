package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/http/middleware"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) teamRouter(r fiber.Router, auth fiber.Handler) {
	teamGroup := r.Group("/team")
	{
		teamGroup.Post("/create", auth, rt.createTeam)
		teamGroup.Get("/myteams", auth, rt.myTeams)
		teamGroup.Get("/:teamId", auth, rt.getTeam)
		teamGroup.Put("/:teamId", auth, rt.updateTeam)
		teamGroup.Delete("/:teamId", auth, rt.deleteTeam)
		teamGroup.Post("/:teamId/join", auth, rt.joinTeam)
		teamGroup.Post("/:teamId/leave", auth, rt.leaveTeam)
	}
}

func (rt *Router) createTeam(c *fiber.Ctx) error {
	var req model.CreateTeamReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.team.CreateTeam(&req, middleware.UserId(c))
	if err != nil {
		log.Errorf("create team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepCreated(c, result)
}

func (rt *Router) myTeams(c *fiber.Ctx) error {
	result, err := rt.team.MyTeams(middleware.UserId(c))
	if err != nil {
		log.Errorf("list user teams failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) getTeam(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.team.GetTeam(member.TeamId)
	if err != nil {
		log.Errorf("get team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) updateTeam(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapManageMembers)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.UpdateTeamReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.team.UpdateTeam(member.TeamId, &req)
	if err != nil {
		log.Errorf("update team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) deleteTeam(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapDeleteTeam)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if _, err := rt.permission.VerifyOwnership(member.TeamId, member.UserId); err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.team.DeleteTeam(member.TeamId); err != nil {
		log.Errorf("delete team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepNotDetail(c)
}

func (rt *Router) joinTeam(c *fiber.Ctx) error {
	teamId := c.Params("teamId")
	if teamId == "" {
		return rt.replyServiceError(c, errTeamIdEmpty)
	}

	var req model.JoinTeamReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.team.JoinTeam(teamId, middleware.UserId(c), req.Role)
	if err != nil {
		log.Errorf("join team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepCreated(c, result)
}

func (rt *Router) leaveTeam(c *fiber.Ctx) error {
	teamId := c.Params("teamId")
	if teamId == "" {
		return rt.replyServiceError(c, errTeamIdEmpty)
	}

	if err := rt.team.LeaveTeam(teamId, middleware.UserId(c)); err != nil {
		log.Errorf("leave team failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepNotDetail(c)
}
