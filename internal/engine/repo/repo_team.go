// Copyright 2025 Pathway Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
	"gorm.io/gorm"
)

type ITeamRepository interface {
	// CreateTeamWithOwner writes the team and its owner membership in one
	// transaction so a partial failure cannot leave an ownerless team.
	CreateTeamWithOwner(t *model.Team, owner *model.TeamMember) error
	GetTeamById(teamId string) (*model.Team, error)
	UpdateTeam(teamId string, updates map[string]interface{}) error
	DeactivateTeam(teamId string) error
	GetTeamsByUserId(userId string) ([]*model.Team, error)
	CheckTeamNameExists(name string) (bool, error)
}

type TeamRepo struct {
	database.IDatabase
}

func NewTeamRepo(db database.IDatabase) ITeamRepository {
	return &TeamRepo{IDatabase: db}
}

func (r *TeamRepo) CreateTeamWithOwner(t *model.Team, owner *model.TeamMember) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
}

func (r *TeamRepo) GetTeamById(teamId string) (*model.Team, error) {
	var t model.Team
	err := r.Database().Where("team_id = ?", teamId).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepo) UpdateTeam(teamId string, updates map[string]interface{}) error {
	return r.Database().Model(&model.Team{}).
		Where("team_id = ?", teamId).
		Updates(updates).Error
}

// DeactivateTeam soft-deletes a team. Membership, task and feedback rows
// stay in place; the guard rejects all further access through the team's
// is_active flag.
func (r *TeamRepo) DeactivateTeam(teamId string) error {
	return r.Database().Model(&model.Team{}).
		Where("team_id = ?", teamId).
		Update("is_active", false).Error
}

func (r *TeamRepo) GetTeamsByUserId(userId string) ([]*model.Team, error) {
	var teams []*model.Team
	err := r.Database().
		Joins("JOIN t_team_member m ON m.team_id = t_team.team_id").
		Where("m.user_id = ? AND m.is_active = ? AND t_team.is_active = ?", userId, true, true).
		Find(&teams).Error
	return teams, err
}

func (r *TeamRepo) CheckTeamNameExists(name string) (bool, error) {
	var count int64
	err := r.Database().Model(&model.Team{}).
		Where("name = ? AND is_active = ?", name, true).
		Count(&count).Error
	return count > 0, err
}
