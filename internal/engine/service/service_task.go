package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo   repo.ITaskRepository
	memberRepo repo.IMemberRepository
	activity   *ActivityService
}

func NewTaskService(taskRepo repo.ITaskRepository, memberRepo repo.IMemberRepository, activity *ActivityService) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		activity:   activity,
	}
}

// CreateTask assigns a task to an active member of the team.
func (s *TaskService) CreateTask(teamId, assignedBy string, req *model.CreateTaskReq) (*model.TaskResp, error) {
	if _, err := s.memberRepo.GetActiveMember(teamId, req.AssignedTo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("check assignee failed: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}

	task := &model.TeamTask{
		TaskId:       id.GetUUID(),
		TeamId:       teamId,
		AssignedTo:   req.AssignedTo,
		AssignedBy:   assignedBy,
		Title:        req.Title,
		Description:  req.Description,
		Status:       model.TaskStatusPending,
		Priority:     priority,
		DueDate:      req.DueDate,
		RelatedJobId: req.RelatedJobId,
	}

	if err := s.taskRepo.CreateTask(task); err != nil {
		log.Errorw("create task failed", "teamId", teamId, "error", err)
		return nil, fmt.Errorf("create task failed: %w", err)
	}

	s.activity.Record(teamId, assignedBy, model.ActivityTaskAssigned, "task", task.TaskId, map[string]any{
		"title":      task.Title,
		"assignedTo": task.AssignedTo,
	})

	return model.ToTaskResp(task), nil
}

// ListTasks applies the typed filter descriptor.
func (s *TaskService) ListTasks(query *model.TaskQuery) ([]*model.TaskResp, error) {
	tasks, err := s.taskRepo.ListTasks(query)
	if err != nil {
		return nil, fmt.Errorf("list tasks failed: %w", err)
	}

	resp := make([]*model.TaskResp, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, model.ToTaskResp(t))
	}
	return resp, nil
}

// TasksAssignedTo lists a member's tasks within the team.
func (s *TaskService) TasksAssignedTo(teamId, userId string) ([]*model.TaskResp, error) {
	tasks, err := s.taskRepo.ListByAssignee(teamId, userId)
	if err != nil {
		return nil, fmt.Errorf("list assigned tasks failed: %w", err)
	}

	resp := make([]*model.TaskResp, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, model.ToTaskResp(t))
	}
	return resp, nil
}

// UpdateTask applies partial updates. CompletedAt is set exactly when the
// status transitions into completed and cleared when it leaves it.
func (s *TaskService) UpdateTask(teamId, taskId, updatedBy string, req *model.UpdateTaskReq) (*model.TaskResp, error) {
	task, err := s.getTeamTask(teamId, taskId)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	completedNow := false
	if req.Status != nil && *req.Status != task.Status {
		updates["status"] = *req.Status
		switch {
		case *req.Status == model.TaskStatusCompleted:
			now := time.Now()
			updates["completed_at"] = &now
			completedNow = true
		case task.Status == model.TaskStatusCompleted:
			updates["completed_at"] = nil
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.taskRepo.UpdateTask(taskId, updates); err != nil {
			log.Errorw("update task failed", "taskId", taskId, "error", err)
			return nil, fmt.Errorf("update task failed: %w", err)
		}
	}

	task, err = s.getTeamTask(teamId, taskId)
	if err != nil {
		return nil, err
	}

	if completedNow {
		s.activity.Record(teamId, updatedBy, model.ActivityTaskCompleted, "task", task.TaskId, map[string]any{
			"title": task.Title,
		})
	}

	return model.ToTaskResp(task), nil
}

func (s *TaskService) DeleteTask(teamId, taskId string) error {
	if _, err := s.getTeamTask(teamId, taskId); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(taskId); err != nil {
		return fmt.Errorf("delete task failed: %w", err)
	}
	return nil
}

func (s *TaskService) getTeamTask(teamId, taskId string) (*model.TeamTask, error) {
	task, err := s.taskRepo.GetTaskById(taskId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task failed: %w", err)
	}
	if task.TeamId != teamId {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
