package model

import "time"

// Task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// Task priorities.
const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
	TaskPriorityUrgent = "urgent"
)

// TeamTask is a unit of work assigned to a member. CompletedAt is set
// exactly when the status transitions to completed.
type TeamTask struct {
	BaseModel
	TaskId       string     `gorm:"column:task_id;uniqueIndex" json:"taskId"`
	TeamId       string     `gorm:"column:team_id;not null;index" json:"teamId"`
	AssignedTo   string     `gorm:"column:assigned_to;index" json:"assignedTo"`
	AssignedBy   string     `gorm:"column:assigned_by" json:"assignedBy"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description" json:"description"`
	Status       string     `gorm:"column:status" json:"status"`
	Priority     string     `gorm:"column:priority" json:"priority"`
	DueDate      *time.Time `gorm:"column:due_date" json:"dueDate,omitempty"`
	CompletedAt  *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
	RelatedJobId string     `gorm:"column:related_job_id" json:"relatedJobId,omitempty"`
}

func (TeamTask) TableName() string {
	return "t_team_task"
}

// CreateTaskReq create task request
type CreateTaskReq struct {
	AssignedTo   string     `json:"assignedTo" validate:"required"`
	Title        string     `json:"title" validate:"required,min=2,max=128"`
	Description  string     `json:"description" validate:"max=2048"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	RelatedJobId string     `json:"relatedJobId,omitempty"`
}

// UpdateTaskReq update task request
type UpdateTaskReq struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=2,max=128"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=2048"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// TaskQuery is the typed filter descriptor for task listings. Optional
// fields are skipped when empty.
type TaskQuery struct {
	TeamId     string
	Status     string
	AssignedTo string
	Limit      int
	Offset     int
}

// TaskResp task response
type TaskResp struct {
	TaskId       string     `json:"taskId"`
	TeamId       string     `json:"teamId"`
	AssignedTo   string     `json:"assignedTo"`
	AssignedBy   string     `json:"assignedBy"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	RelatedJobId string     `json:"relatedJobId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ToTaskResp convert TeamTask to TaskResp
func ToTaskResp(t *TeamTask) *TaskResp {
	if t == nil {
		return nil
	}
	return &TaskResp{
		TaskId:       t.TaskId,
		TeamId:       t.TeamId,
		AssignedTo:   t.AssignedTo,
		AssignedBy:   t.AssignedBy,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		RelatedJobId: t.RelatedJobId,
		CreatedAt:    t.CreatedAt,
	}
}
