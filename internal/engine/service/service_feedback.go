package service

import (
	"errors"
	"fmt"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm"
)

type FeedbackService struct {
	feedbackRepo repo.IFeedbackRepository
	memberRepo   repo.IMemberRepository
	activity     *ActivityService
}

func NewFeedbackService(feedbackRepo repo.IFeedbackRepository, memberRepo repo.IMemberRepository, activity *ActivityService) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		memberRepo:   memberRepo,
		activity:     activity,
	}
}

// CreateFeedback records mentor/coach guidance for a mentee, who must be an
// active member of the team.
func (s *FeedbackService) CreateFeedback(teamId, mentorId string, req *model.CreateFeedbackReq) (*model.FeedbackResp, error) {
	if _, err := s.memberRepo.GetActiveMember(teamId, req.MenteeId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("check mentee failed: %w", err)
	}

	feedback := &model.TeamFeedback{
		FeedbackId:        id.GetUUID(),
		TeamId:            teamId,
		MenteeId:          req.MenteeId,
		MentorId:          mentorId,
		FeedbackType:      req.FeedbackType,
		Content:           req.Content,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityId:   req.RelatedEntityId,
	}

	if err := s.feedbackRepo.CreateFeedback(feedback); err != nil {
		log.Errorw("create feedback failed", "teamId", teamId, "error", err)
		return nil, fmt.Errorf("create feedback failed: %w", err)
	}

	s.activity.Record(teamId, mentorId, model.ActivityFeedbackGiven, "feedback", feedback.FeedbackId, map[string]any{
		"menteeId":     feedback.MenteeId,
		"feedbackType": feedback.FeedbackType,
	})

	return model.ToFeedbackResp(feedback), nil
}

// GetFeedback looks up a single feedback entry, scoped to the team so a
// feedback id from another team reads as missing.
func (s *FeedbackService) GetFeedback(teamId, feedbackId string) (*model.FeedbackResp, error) {
	feedback, err := s.feedbackRepo.GetFeedbackById(feedbackId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("get feedback failed: %w", err)
	}
	if feedback.TeamId != teamId {
		return nil, ErrFeedbackNotFound
	}
	return model.ToFeedbackResp(feedback), nil
}

// ListFeedback applies the typed filter descriptor.
func (s *FeedbackService) ListFeedback(query *model.FeedbackQuery) ([]*model.FeedbackResp, error) {
	feedback, err := s.feedbackRepo.ListFeedback(query)
	if err != nil {
		return nil, fmt.Errorf("list feedback failed: %w", err)
	}

	resp := make([]*model.FeedbackResp, 0, len(feedback))
	for _, f := range feedback {
		resp = append(resp, model.ToFeedbackResp(f))
	}
	return resp, nil
}
