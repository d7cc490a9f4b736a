package service

import (
	"errors"
	"fmt"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm"
)

type MemberService struct {
	memberRepo repo.IMemberRepository
	userRepo   repo.IUserRepository
	activity   *ActivityService
}

func NewMemberService(memberRepo repo.IMemberRepository, userRepo repo.IUserRepository, activity *ActivityService) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		userRepo:   userRepo,
		activity:   activity,
	}
}

// ListMembers returns the team's active members with display names.
func (s *MemberService) ListMembers(teamId string) ([]*model.MemberResp, error) {
	members, err := s.memberRepo.ListActiveMembers(teamId)
	if err != nil {
		return nil, fmt.Errorf("list members failed: %w", err)
	}
	return s.withNames(members)
}

// ListMentees returns active members holding the member role, the coached
// population in a mentorship team.
func (s *MemberService) ListMentees(teamId string) ([]*model.MemberResp, error) {
	members, err := s.memberRepo.ListActiveByRole(teamId, model.TeamRoleMember)
	if err != nil {
		return nil, fmt.Errorf("list mentees failed: %w", err)
	}
	return s.withNames(members)
}

// ChangeRole updates a member's role. The owner's role is immutable: any
// attempt to change it fails with ErrForbidden regardless of who asks.
func (s *MemberService) ChangeRole(teamId, memberId, newRole string) (*model.MemberResp, error) {
	target, err := s.getTeamMember(teamId, memberId)
	if err != nil {
		return nil, err
	}

	if target.Role == model.TeamRoleOwner {
		return nil, ErrForbidden
	}
	if newRole == model.TeamRoleOwner {
		// Exactly one owner per team, assigned at creation only.
		return nil, ErrForbidden
	}

	if err := s.memberRepo.UpdateRole(target.MemberId, newRole); err != nil {
		log.Errorw("update member role failed", "memberId", memberId, "error", err)
		return nil, fmt.Errorf("update member role failed: %w", err)
	}

	target.Role = newRole
	return model.ToMemberResp(target), nil
}

// RemoveMember soft-removes a member. The owner can never be removed.
// Self-removal is always allowed; removing someone else requires the
// requester to be owner or mentor.
func (s *MemberService) RemoveMember(teamId, memberId string, requester *model.TeamMember) error {
	target, err := s.getTeamMember(teamId, memberId)
	if err != nil {
		return err
	}

	if target.Role == model.TeamRoleOwner {
		return ErrForbidden
	}

	selfRemoval := requester != nil && requester.UserId == target.UserId
	if !selfRemoval {
		if requester == nil || (requester.Role != model.TeamRoleOwner && requester.Role != model.TeamRoleMentor) {
			return ErrForbidden
		}
	}

	if err := s.memberRepo.DeactivateMember(target.MemberId); err != nil {
		log.Errorw("deactivate member failed", "memberId", memberId, "error", err)
		return fmt.Errorf("deactivate member failed: %w", err)
	}

	s.activity.Record(teamId, target.UserId, model.ActivityMemberLeft, "member", target.MemberId, nil)
	return nil
}

func (s *MemberService) getTeamMember(teamId, memberId string) (*model.TeamMember, error) {
	target, err := s.memberRepo.GetMemberById(memberId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member failed: %w", err)
	}
	if target.TeamId != teamId || !target.IsActive {
		return nil, ErrMemberNotFound
	}
	return target, nil
}

func (s *MemberService) withNames(members []*model.TeamMember) ([]*model.MemberResp, error) {
	userIds := make([]string, 0, len(members))
	for _, m := range members {
		userIds = append(userIds, m.UserId)
	}

	users, err := s.userRepo.ListUsersByIds(userIds)
	if err != nil {
		return nil, fmt.Errorf("resolve member names failed: %w", err)
	}

	resp := make([]*model.MemberResp, 0, len(members))
	for _, m := range members {
		r := model.ToMemberResp(m)
		if u, ok := users[m.UserId]; ok {
			r.UserName = u.Name
		}
		resp = append(resp, r)
	}
	return resp, nil
}
