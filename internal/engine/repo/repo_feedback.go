package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

type IFeedbackRepository interface {
	CreateFeedback(f *model.TeamFeedback) error
	GetFeedbackById(feedbackId string) (*model.TeamFeedback, error)
	ListFeedback(query *model.FeedbackQuery) ([]*model.TeamFeedback, error)
}

type FeedbackRepo struct {
	database.IDatabase
}

func NewFeedbackRepo(db database.IDatabase) IFeedbackRepository {
	return &FeedbackRepo{IDatabase: db}
}

func (r *FeedbackRepo) CreateFeedback(f *model.TeamFeedback) error {
	return r.Database().Create(f).Error
}

func (r *FeedbackRepo) GetFeedbackById(feedbackId string) (*model.TeamFeedback, error) {
	var f model.TeamFeedback
	err := r.Database().Where("feedback_id = ?", feedbackId).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListFeedback applies the typed filter descriptor; empty fields are skipped.
func (r *FeedbackRepo) ListFeedback(query *model.FeedbackQuery) ([]*model.TeamFeedback, error) {
	db := r.Database().Model(&model.TeamFeedback{}).Where("team_id = ?", query.TeamId)

	if query.FeedbackType != "" {
		db = db.Where("feedback_type = ?", query.FeedbackType)
	}
	if query.MenteeId != "" {
		db = db.Where("mentee_id = ?", query.MenteeId)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var feedback []*model.TeamFeedback
	err := db.Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}
