package router

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	httpx "github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (rt *Router) taskRouter(r fiber.Router, auth fiber.Handler) {
	taskGroup := r.Group("/team/:teamId/task")
	{
		taskGroup.Post("/create", auth, rt.createTask)
		taskGroup.Get("/list", auth, rt.listTasks)
		taskGroup.Get("/mine", auth, rt.myTasks)
		taskGroup.Put("/:taskId", auth, rt.updateTask)
		taskGroup.Delete("/:taskId", auth, rt.deleteTask)
	}
}

func (rt *Router) createTask(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapAssignTasks)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.permission.VerifyMentorOrCoach(member); err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.CreateTaskReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.task.CreateTask(member.TeamId, member.UserId, &req)
	if err != nil {
		log.Errorf("create task failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepCreated(c, result)
}

func (rt *Router) listTasks(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	query := &model.TaskQuery{
		TeamId:     member.TeamId,
		Status:     c.Query("status"),
		AssignedTo: c.Query("assignedTo"),
		Limit:      c.QueryInt("limit"),
		Offset:     c.QueryInt("offset"),
	}

	result, err := rt.task.ListTasks(query)
	if err != nil {
		log.Errorf("list tasks failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) myTasks(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.task.TasksAssignedTo(member.TeamId, member.UserId)
	if err != nil {
		log.Errorf("list assigned tasks failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) updateTask(c *fiber.Ctx) error {
	member, err := rt.requireMember(c)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	var req model.UpdateTaskReq
	if err := parseBody(c, &req); err != nil {
		return rt.replyServiceError(c, err)
	}

	result, err := rt.task.UpdateTask(member.TeamId, c.Params("taskId"), member.UserId, &req)
	if err != nil {
		log.Errorf("update task failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepJSON(c, result)
}

func (rt *Router) deleteTask(c *fiber.Ctx) error {
	member, err := rt.requireCapability(c, model.CapAssignTasks)
	if err != nil {
		return rt.replyServiceError(c, err)
	}

	if err := rt.task.DeleteTask(member.TeamId, c.Params("taskId")); err != nil {
		log.Errorf("delete task failed: %v", err)
		return rt.replyServiceError(c, err)
	}

	return httpx.WithRepNotDetail(c)
}
