package model

import (
	"time"

	"gorm.io/datatypes"
)

// Application history statuses the analytics counters care about.
const (
	ApplicationStatusApplied = "applied"
	ApplicationStatusOffer   = "offer"
)

// Job opportunity terminal statuses; anything else counts as active.
const (
	JobStatusRejected = "rejected"
	JobStatusOffer    = "offer"
)

// JobOpportunity is a user's tracked job lead, owned by the job-tracking
// collaborator. Pathway reads it for analytics and share gating only.
type JobOpportunity struct {
	BaseModel
	JobId              string             `gorm:"column:job_id;uniqueIndex" json:"jobId"`
	UserId             string             `gorm:"column:user_id;index" json:"userId"`
	Title              string             `gorm:"column:title" json:"title"`
	Company            string             `gorm:"column:company" json:"company"`
	Status             string             `gorm:"column:status" json:"status"`
	ApplicationHistory []ApplicationEntry `gorm:"foreignKey:JobId;references:JobId" json:"applicationHistory,omitempty"`
	Interviews         []Interview        `gorm:"foreignKey:JobId;references:JobId" json:"interviews,omitempty"`
}

func (JobOpportunity) TableName() string {
	return "t_job_opportunity"
}

// ApplicationEntry is one step of a job's application history.
type ApplicationEntry struct {
	BaseModel
	JobId     string    `gorm:"column:job_id;index" json:"jobId"`
	Status    string    `gorm:"column:status" json:"status"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	Note      string    `gorm:"column:note" json:"note,omitempty"`
}

func (ApplicationEntry) TableName() string {
	return "t_application_entry"
}

// Interview is a scheduled interview for a job opportunity.
type Interview struct {
	BaseModel
	InterviewId string    `gorm:"column:interview_id;uniqueIndex" json:"interviewId"`
	JobId       string    `gorm:"column:job_id;index" json:"jobId"`
	Round       string    `gorm:"column:round" json:"round,omitempty"`
	ScheduledAt time.Time `gorm:"column:scheduled_at" json:"scheduledAt"`
}

func (Interview) TableName() string {
	return "t_interview"
}

// SharedJob links a member's job opportunity into the team.
type SharedJob struct {
	BaseModel
	SharedJobId string `gorm:"column:shared_job_id;uniqueIndex" json:"sharedJobId"`
	TeamId      string `gorm:"column:team_id;not null;index" json:"teamId"`
	JobId       string `gorm:"column:job_id;not null;index" json:"jobId"`
	SharedBy    string `gorm:"column:shared_by" json:"sharedBy"`
	Comment     string `gorm:"column:comment" json:"comment,omitempty"`
}

func (SharedJob) TableName() string {
	return "t_shared_job"
}

// ShareJobReq share job request
type ShareJobReq struct {
	JobId   string `json:"jobId" validate:"required"`
	Comment string `json:"comment" validate:"max=512"`
}

// SkillsGap is one skills-gap-analysis row for a user, produced by the
// skills-analysis collaborator. Missing and matched skills are JSON string
// arrays.
type SkillsGap struct {
	BaseModel
	AnalysisId    string         `gorm:"column:analysis_id;uniqueIndex" json:"analysisId"`
	UserId        string         `gorm:"column:user_id;index" json:"userId"`
	JobId         string         `gorm:"column:job_id" json:"jobId,omitempty"`
	MissingSkills datatypes.JSON `gorm:"column:missing_skills;type:json" json:"missingSkills"`
	MatchedSkills datatypes.JSON `gorm:"column:matched_skills;type:json" json:"matchedSkills"`
}

func (SkillsGap) TableName() string {
	return "t_skills_gap"
}
