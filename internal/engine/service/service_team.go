package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm"
)

const defaultMaxMembers = 50

type TeamService struct {
	teamRepo   repo.ITeamRepository
	memberRepo repo.IMemberRepository
	activity   *ActivityService
}

func NewTeamService(teamRepo repo.ITeamRepository, memberRepo repo.IMemberRepository, activity *ActivityService) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		activity:   activity,
	}
}

// CreateTeam creates the team and its owner membership atomically, then
// records the team_created activity best-effort.
func (s *TeamService) CreateTeam(req *model.CreateTeamReq, ownerId string) (*model.TeamResp, error) {
	taken, err := s.teamRepo.CheckTeamNameExists(req.Name)
	if err != nil {
		return nil, fmt.Errorf("check team name failed: %w", err)
	}
	if taken {
		return nil, ErrTeamNameTaken
	}

	maxMembers := req.MaxMembers
	if maxMembers == 0 {
		maxMembers = defaultMaxMembers
	}

	team := &model.Team{
		TeamId:      id.GetUUID(),
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		OwnerId:     ownerId,
		MaxMembers:  maxMembers,
		IsActive:    true,
	}
	owner := &model.TeamMember{
		MemberId: id.GetUUID(),
		TeamId:   team.TeamId,
		UserId:   ownerId,
		Role:     model.TeamRoleOwner,
		IsActive: true,
		JoinedAt: time.Now(),
	}

	if err := s.teamRepo.CreateTeamWithOwner(team, owner); err != nil {
		log.Errorw("create team failed", "name", team.Name, "error", err)
		return nil, fmt.Errorf("create team failed: %w", err)
	}

	log.Infow("team created", "teamId", team.TeamId, "name", team.Name, "ownerId", ownerId)

	s.activity.Record(team.TeamId, ownerId, model.ActivityTeamCreated, "team", team.TeamId, map[string]any{
		"teamName": team.Name,
	})

	return model.ToTeamResp(team), nil
}

func (s *TeamService) GetTeam(teamId string) (*model.TeamResp, error) {
	team, err := s.teamRepo.GetTeamById(teamId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team failed: %w", err)
	}
	return model.ToTeamResp(team), nil
}

// MyTeams lists the active teams the user actively belongs to.
func (s *TeamService) MyTeams(userId string) ([]*model.TeamResp, error) {
	teams, err := s.teamRepo.GetTeamsByUserId(userId)
	if err != nil {
		return nil, fmt.Errorf("list teams failed: %w", err)
	}

	resp := make([]*model.TeamResp, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, model.ToTeamResp(t))
	}
	return resp, nil
}

func (s *TeamService) UpdateTeam(teamId string, req *model.UpdateTeamReq) (*model.TeamResp, error) {
	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MaxMembers != nil {
		updates["max_members"] = *req.MaxMembers
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.teamRepo.UpdateTeam(teamId, updates); err != nil {
			log.Errorw("update team failed", "teamId", teamId, "error", err)
			return nil, fmt.Errorf("update team failed: %w", err)
		}
	}

	return s.GetTeam(teamId)
}

// DeleteTeam soft-deletes the team. Callers must have passed the ownership
// check; membership rows are left untouched.
func (s *TeamService) DeleteTeam(teamId string) error {
	if err := s.teamRepo.DeactivateTeam(teamId); err != nil {
		log.Errorw("deactivate team failed", "teamId", teamId, "error", err)
		return fmt.Errorf("deactivate team failed: %w", err)
	}
	log.Infow("team deactivated", "teamId", teamId)
	return nil
}

// JoinTeam adds the user as an active member, reactivating a previous
// soft-removed membership when one exists. Joining as owner is impossible:
// the owner membership only ever comes from CreateTeam.
func (s *TeamService) JoinTeam(teamId, userId, role string) (*model.MemberResp, error) {
	team, err := s.teamRepo.GetTeamById(teamId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team failed: %w", err)
	}
	if !team.IsActive {
		return nil, ErrTeamInactive
	}

	if role == "" {
		role = model.TeamRoleMember
	}

	count, err := s.memberRepo.CountActiveMembers(teamId)
	if err != nil {
		return nil, fmt.Errorf("count members failed: %w", err)
	}
	if team.MaxMembers > 0 && count >= int64(team.MaxMembers) {
		return nil, ErrTeamFull
	}

	existing, err := s.memberRepo.GetMemberAnyState(teamId, userId)
	switch {
	case err == nil && existing.IsActive:
		return nil, ErrAlreadyMember
	case err == nil:
		if err := s.memberRepo.ReactivateMember(existing.MemberId, role); err != nil {
			return nil, fmt.Errorf("reactivate member failed: %w", err)
		}
		existing.IsActive = true
		existing.Role = role
		s.activity.Record(teamId, userId, model.ActivityMemberJoined, "member", existing.MemberId, nil)
		return model.ToMemberResp(existing), nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("get membership failed: %w", err)
	}

	member := &model.TeamMember{
		MemberId: id.GetUUID(),
		TeamId:   teamId,
		UserId:   userId,
		Role:     role,
		IsActive: true,
		JoinedAt: time.Now(),
	}
	if err := s.memberRepo.CreateMember(member); err != nil {
		log.Errorw("create member failed", "teamId", teamId, "userId", userId, "error", err)
		return nil, fmt.Errorf("create member failed: %w", err)
	}

	s.activity.Record(teamId, userId, model.ActivityMemberJoined, "member", member.MemberId, nil)

	return model.ToMemberResp(member), nil
}

// LeaveTeam is self-removal. The owner may never leave: a team without its
// owner would violate the single-active-owner invariant.
func (s *TeamService) LeaveTeam(teamId, userId string) error {
	member, err := s.memberRepo.GetActiveMember(teamId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAMember
		}
		return fmt.Errorf("get membership failed: %w", err)
	}
	if member.Role == model.TeamRoleOwner {
		return ErrForbidden
	}

	if err := s.memberRepo.DeactivateMember(member.MemberId); err != nil {
		return fmt.Errorf("deactivate member failed: %w", err)
	}

	s.activity.Record(teamId, userId, model.ActivityMemberLeft, "member", member.MemberId, nil)
	return nil
}
