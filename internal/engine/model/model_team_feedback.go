package model

import "time"

// Feedback types.
const (
	FeedbackResumeReview      = "resume_review"
	FeedbackCoverLetterReview = "cover_letter_review"
	FeedbackInterviewPrep     = "interview_prep"
	FeedbackGeneralGuidance   = "general_guidance"
	FeedbackApplicationReview = "application_review"
)

// TeamFeedback is guidance written by a mentor or coach for a mentee.
type TeamFeedback struct {
	BaseModel
	FeedbackId        string `gorm:"column:feedback_id;uniqueIndex" json:"feedbackId"`
	TeamId            string `gorm:"column:team_id;not null;index" json:"teamId"`
	MenteeId          string `gorm:"column:mentee_id;not null;index" json:"menteeId"`
	MentorId          string `gorm:"column:mentor_id;not null" json:"mentorId"`
	FeedbackType      string `gorm:"column:feedback_type" json:"feedbackType"`
	Content           string `gorm:"column:content" json:"content"`
	RelatedEntityType string `gorm:"column:related_entity_type" json:"relatedEntityType,omitempty"`
	RelatedEntityId   string `gorm:"column:related_entity_id" json:"relatedEntityId,omitempty"`
}

func (TeamFeedback) TableName() string {
	return "t_team_feedback"
}

// CreateFeedbackReq create feedback request
type CreateFeedbackReq struct {
	MenteeId          string `json:"menteeId" validate:"required"`
	FeedbackType      string `json:"feedbackType" validate:"required,oneof=resume_review cover_letter_review interview_prep general_guidance application_review"`
	Content           string `json:"content" validate:"required,min=1,max=8192"`
	RelatedEntityType string `json:"relatedEntityType,omitempty"`
	RelatedEntityId   string `json:"relatedEntityId,omitempty"`
}

// FeedbackQuery is the typed filter descriptor for feedback listings.
type FeedbackQuery struct {
	TeamId       string
	FeedbackType string
	MenteeId     string
	Limit        int
	Offset       int
}

// FeedbackResp feedback response
type FeedbackResp struct {
	FeedbackId        string    `json:"feedbackId"`
	TeamId            string    `json:"teamId"`
	MenteeId          string    `json:"menteeId"`
	MentorId          string    `json:"mentorId"`
	FeedbackType      string    `json:"feedbackType"`
	Content           string    `json:"content"`
	RelatedEntityType string    `json:"relatedEntityType,omitempty"`
	RelatedEntityId   string    `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToFeedbackResp convert TeamFeedback to FeedbackResp
func ToFeedbackResp(f *TeamFeedback) *FeedbackResp {
	if f == nil {
		return nil
	}
	return &FeedbackResp{
		FeedbackId:        f.FeedbackId,
		TeamId:            f.TeamId,
		MenteeId:          f.MenteeId,
		MentorId:          f.MentorId,
		FeedbackType:      f.FeedbackType,
		Content:           f.Content,
		RelatedEntityType: f.RelatedEntityType,
		RelatedEntityId:   f.RelatedEntityId,
		CreatedAt:         f.CreatedAt,
	}
}
