package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity types recorded into the team feed.
const (
	ActivityTeamCreated          = "team_created"
	ActivityMemberJoined         = "member_joined"
	ActivityMemberLeft           = "member_left"
	ActivityJobShared            = "job_shared"
	ActivityCommentAdded         = "comment_added"
	ActivityTaskAssigned         = "task_assigned"
	ActivityTaskCompleted        = "task_completed"
	ActivityFeedbackGiven        = "feedback_given"
	ActivityMilestoneReached     = "milestone_reached"
	ActivityApplicationSubmitted = "application_submitted"
	ActivityInterviewScheduled   = "interview_scheduled"
)

// TeamActivity is an append-only feed entry. Rows are never updated or
// deleted once written.
type TeamActivity struct {
	BaseModel
	ActivityId   string         `gorm:"column:activity_id;uniqueIndex" json:"activityId"`
	TeamId       string         `gorm:"column:team_id;not null;index" json:"teamId"`
	UserId       string         `gorm:"column:user_id;not null;index" json:"userId"`
	ActivityType string         `gorm:"column:activity_type;not null" json:"activityType"`
	EntityType   string         `gorm:"column:entity_type" json:"entityType,omitempty"`
	EntityId     string         `gorm:"column:entity_id" json:"entityId,omitempty"`
	Metadata     datatypes.JSON `gorm:"column:metadata;type:json" json:"metadata,omitempty"`
}

func (TeamActivity) TableName() string {
	return "t_team_activity"
}

// ActivityResp feed entry response with the actor's display name and a
// human-readable description attached.
type ActivityResp struct {
	ActivityId   string         `json:"activityId"`
	TeamId       string         `json:"teamId"`
	UserId       string         `json:"userId"`
	ActorName    string         `json:"actorName"`
	ActivityType string         `json:"activityType"`
	EntityType   string         `json:"entityType,omitempty"`
	EntityId     string         `json:"entityId,omitempty"`
	Description  string         `json:"description"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ActivityFeedResp paginated feed response
type ActivityFeedResp struct {
	Activities []*ActivityResp `json:"activities"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}
