package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

type IActivityRepository interface {
	Append(a *model.TeamActivity) error
	ListByTeam(teamId string, limit, offset int) ([]*model.TeamActivity, error)
	ListByType(teamId, activityType string, limit int) ([]*model.TeamActivity, error)
	ListByUser(teamId, userId string, limit int) ([]*model.TeamActivity, error)
}

type ActivityRepo struct {
	database.IDatabase
}

func NewActivityRepo(db database.IDatabase) IActivityRepository {
	return &ActivityRepo{IDatabase: db}
}

// Append inserts a feed row. The log is append-only; no update or delete
// methods exist on this repository.
func (r *ActivityRepo) Append(a *model.TeamActivity) error {
	return r.Database().Create(a).Error
}

func (r *ActivityRepo) ListByTeam(teamId string, limit, offset int) ([]*model.TeamActivity, error) {
	var activities []*model.TeamActivity
	err := r.Database().
		Where("team_id = ?", teamId).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepo) ListByType(teamId, activityType string, limit int) ([]*model.TeamActivity, error) {
	var activities []*model.TeamActivity
	err := r.Database().
		Where("team_id = ? AND activity_type = ?", teamId, activityType).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepo) ListByUser(teamId, userId string, limit int) ([]*model.TeamActivity, error) {
	var activities []*model.TeamActivity
	err := r.Database().
		Where("team_id = ? AND user_id = ?", teamId, userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
