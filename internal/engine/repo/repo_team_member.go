package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

type IMemberRepository interface {
	CreateMember(m *model.TeamMember) error
	GetActiveMember(teamId, userId string) (*model.TeamMember, error)
	GetMemberById(memberId string) (*model.TeamMember, error)
	GetMemberAnyState(teamId, userId string) (*model.TeamMember, error)
	ListActiveMembers(teamId string) ([]*model.TeamMember, error)
	ListActiveByRole(teamId, role string) ([]*model.TeamMember, error)
	CountActiveMembers(teamId string) (int64, error)
	CountActiveByRole(teamId string) (map[string]int, error)
	UpdateRole(memberId, role string) error
	DeactivateMember(memberId string) error
	ReactivateMember(memberId, role string) error
}

type MemberRepo struct {
	database.IDatabase
}

func NewMemberRepo(db database.IDatabase) IMemberRepository {
	return &MemberRepo{IDatabase: db}
}

func (r *MemberRepo) CreateMember(m *model.TeamMember) error {
	return r.Database().Create(m).Error
}

func (r *MemberRepo) GetActiveMember(teamId, userId string) (*model.TeamMember, error) {
	var m model.TeamMember
	err := r.Database().
		Where("team_id = ? AND user_id = ? AND is_active = ?", teamId, userId, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepo) GetMemberById(memberId string) (*model.TeamMember, error) {
	var m model.TeamMember
	err := r.Database().Where("member_id = ?", memberId).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMemberAnyState also returns soft-removed rows, used by join to
// reactivate a previous membership instead of inserting a duplicate.
func (r *MemberRepo) GetMemberAnyState(teamId, userId string) (*model.TeamMember, error) {
	var m model.TeamMember
	err := r.Database().
		Where("team_id = ? AND user_id = ?", teamId, userId).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepo) ListActiveMembers(teamId string) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := r.Database().
		Where("team_id = ? AND is_active = ?", teamId, true).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *MemberRepo) ListActiveByRole(teamId, role string) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	err := r.Database().
		Where("team_id = ? AND role = ? AND is_active = ?", teamId, role, true).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *MemberRepo) CountActiveMembers(teamId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.TeamMember{}).
		Where("team_id = ? AND is_active = ?", teamId, true).
		Count(&count).Error
	return count, err
}

// CountActiveByRole groups active members by role.
func (r *MemberRepo) CountActiveByRole(teamId string) (map[string]int, error) {
	type roleCount struct {
		Role  string
		Count int
	}
	var rows []roleCount
	err := r.Database().Model(&model.TeamMember{}).
		Select("role, COUNT(*) AS count").
		Where("team_id = ? AND is_active = ?", teamId, true).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

func (r *MemberRepo) UpdateRole(memberId, role string) error {
	return r.Database().Model(&model.TeamMember{}).
		Where("member_id = ?", memberId).
		Update("role", role).Error
}

func (r *MemberRepo) DeactivateMember(memberId string) error {
	return r.Database().Model(&model.TeamMember{}).
		Where("member_id = ?", memberId).
		Update("is_active", false).Error
}

func (r *MemberRepo) ReactivateMember(memberId, role string) error {
	return r.Database().Model(&model.TeamMember{}).
		Where("member_id = ?", memberId).
		Updates(map[string]interface{}{"is_active": true, "role": role}).Error
}
