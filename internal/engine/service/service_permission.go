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

package service

import (
	"errors"
	"fmt"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"gorm.io/gorm"
)

// PermissionService is the membership/permission guard. Every team-scoped
// request passes through VerifyMembership before its handler runs; the
// finer checks layer on top of the returned membership.
type PermissionService struct {
	teamRepo   repo.ITeamRepository
	memberRepo repo.IMemberRepository
}

func NewPermissionService(teamRepo repo.ITeamRepository, memberRepo repo.IMemberRepository) *PermissionService {
	return &PermissionService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

// VerifyMembership returns the caller's active membership. It fails with
// ErrTeamNotFound, ErrTeamInactive or ErrNotAMember.
func (s *PermissionService) VerifyMembership(teamId, userId string) (*model.TeamMember, error) {
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

	member, err := s.memberRepo.GetActiveMember(teamId, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("get membership failed: %w", err)
	}
	return member, nil
}

// VerifyCapability checks the static policy table for the member's role.
func (s *PermissionService) VerifyCapability(member *model.TeamMember, capability model.Capability) error {
	if member == nil || !model.HasCapability(member.Role, capability) {
		return ErrInsufficientPermission
	}
	return nil
}

// VerifyOwnership fails with ErrNotOwner unless userId is the team's owner.
// Ownership is immutable, so this reads the team row rather than the
// membership's role.
func (s *PermissionService) VerifyOwnership(teamId, userId string) (*model.Team, error) {
	team, err := s.teamRepo.GetTeamById(teamId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team failed: %w", err)
	}
	if team.OwnerId != userId {
		return nil, ErrNotOwner
	}
	return team, nil
}

// VerifyMentorOrCoach is the coarser allowlist gate in front of task
// assignment and feedback creation, layered before the capability check.
func (s *PermissionService) VerifyMentorOrCoach(member *model.TeamMember) error {
	if member == nil {
		return ErrForbidden
	}
	switch member.Role {
	case model.TeamRoleOwner, model.TeamRoleMentor, model.TeamRoleCoach:
		return nil
	default:
		return ErrForbidden
	}
}

// VerifyPermissionTable asserts the static policy table defines every
// capability for every role. Called at startup so a gap fails fast instead
// of silently denying.
func VerifyPermissionTable() error {
	for _, role := range model.AllTeamRoles {
		perms, ok := model.RolePermissions[role]
		if !ok {
			return fmt.Errorf("permission table has no entry for role %q", role)
		}
		for _, capability := range model.AllCapabilities {
			if _, ok := perms[capability]; !ok {
				return fmt.Errorf("permission table role %q is missing capability %q", role, capability)
			}
		}
	}
	return nil
}
