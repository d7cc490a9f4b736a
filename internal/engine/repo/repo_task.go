package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

type ITaskRepository interface {
	CreateTask(t *model.TeamTask) error
	GetTaskById(taskId string) (*model.TeamTask, error)
	ListTasks(query *model.TaskQuery) ([]*model.TeamTask, error)
	UpdateTask(taskId string, updates map[string]interface{}) error
	DeleteTask(taskId string) error
	ListByAssignee(teamId, userId string) ([]*model.TeamTask, error)
	CountCompleted(teamId, userId string) (int64, error)
}

type TaskRepo struct {
	database.IDatabase
}

func NewTaskRepo(db database.IDatabase) ITaskRepository {
	return &TaskRepo{IDatabase: db}
}

func (r *TaskRepo) CreateTask(t *model.TeamTask) error {
	return r.Database().Create(t).Error
}

func (r *TaskRepo) GetTaskById(taskId string) (*model.TeamTask, error) {
	var t model.TeamTask
	err := r.Database().Where("task_id = ?", taskId).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks applies the typed filter descriptor; empty fields are skipped.
func (r *TaskRepo) ListTasks(query *model.TaskQuery) ([]*model.TeamTask, error) {
	db := r.Database().Model(&model.TeamTask{}).Where("team_id = ?", query.TeamId)

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.AssignedTo != "" {
		db = db.Where("assigned_to = ?", query.AssignedTo)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var tasks []*model.TeamTask
	err := db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) UpdateTask(taskId string, updates map[string]interface{}) error {
	return r.Database().Model(&model.TeamTask{}).
		Where("task_id = ?", taskId).
		Updates(updates).Error
}

func (r *TaskRepo) DeleteTask(taskId string) error {
	return r.Database().Where("task_id = ?", taskId).Delete(&model.TeamTask{}).Error
}

func (r *TaskRepo) ListByAssignee(teamId, userId string) ([]*model.TeamTask, error) {
	var tasks []*model.TeamTask
	err := r.Database().
		Where("team_id = ? AND assigned_to = ?", teamId, userId).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) CountCompleted(teamId, userId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.TeamTask{}).
		Where("team_id = ? AND assigned_to = ? AND status = ?", teamId, userId, model.TaskStatusCompleted).
		Count(&count).Error
	return count, err
}
