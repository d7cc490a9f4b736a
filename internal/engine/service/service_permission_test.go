package service

import (
	"testing"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyPermissionTable(t *testing.T) {
	assert.NoError(t, VerifyPermissionTable())
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role       string
		capability model.Capability
		want       bool
	}{
		{model.TeamRoleOwner, model.CapManageMembers, true},
		{model.TeamRoleOwner, model.CapAssignTasks, true},
		{model.TeamRoleOwner, model.CapProvideFeedback, true},
		{model.TeamRoleOwner, model.CapShareJobs, true},
		{model.TeamRoleOwner, model.CapViewAnalytics, true},
		{model.TeamRoleOwner, model.CapDeleteTeam, true},

		{model.TeamRoleMentor, model.CapManageMembers, true},
		{model.TeamRoleMentor, model.CapAssignTasks, true},
		{model.TeamRoleMentor, model.CapProvideFeedback, true},
		{model.TeamRoleMentor, model.CapShareJobs, true},
		{model.TeamRoleMentor, model.CapViewAnalytics, true},
		{model.TeamRoleMentor, model.CapDeleteTeam, false},

		{model.TeamRoleCoach, model.CapManageMembers, false},
		{model.TeamRoleCoach, model.CapAssignTasks, true},
		{model.TeamRoleCoach, model.CapProvideFeedback, true},
		{model.TeamRoleCoach, model.CapShareJobs, true},
		{model.TeamRoleCoach, model.CapViewAnalytics, true},
		{model.TeamRoleCoach, model.CapDeleteTeam, false},

		{model.TeamRoleMember, model.CapManageMembers, false},
		{model.TeamRoleMember, model.CapAssignTasks, false},
		{model.TeamRoleMember, model.CapProvideFeedback, false},
		{model.TeamRoleMember, model.CapShareJobs, true},
		{model.TeamRoleMember, model.CapViewAnalytics, true},
		{model.TeamRoleMember, model.CapDeleteTeam, false},

		{model.TeamRoleViewer, model.CapManageMembers, false},
		{model.TeamRoleViewer, model.CapAssignTasks, false},
		{model.TeamRoleViewer, model.CapProvideFeedback, false},
		{model.TeamRoleViewer, model.CapShareJobs, false},
		{model.TeamRoleViewer, model.CapViewAnalytics, true},
		{model.TeamRoleViewer, model.CapDeleteTeam, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.HasCapability(tt.role, tt.capability),
			"role %s capability %s", tt.role, tt.capability)
	}
}

func TestHasCapabilityUnknownRole(t *testing.T) {
	assert.False(t, model.HasCapability("admin", model.CapViewAnalytics))
	assert.False(t, model.HasCapability("", model.CapViewAnalytics))
}

func TestVerifyMembership(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "viewer-1", model.TeamRoleViewer)

	member, err := env.permission.VerifyMembership(team.TeamId, "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, model.TeamRoleViewer, member.Role)

	_, err = env.permission.VerifyMembership(team.TeamId, "stranger")
	assert.ErrorIs(t, err, ErrNotAMember)

	_, err = env.permission.VerifyMembership("missing-team", "viewer-1")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestVerifyMembershipInactiveTeam(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")

	require.NoError(t, env.team.DeleteTeam(team.TeamId))

	_, err := env.permission.VerifyMembership(team.TeamId, "owner-1")
	assert.ErrorIs(t, err, ErrTeamInactive)
}

func TestVerifyMembershipRemovedMember(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	member := env.seedMember(t, team.TeamId, "member-1", model.TeamRoleMember)

	owner, err := env.permission.VerifyMembership(team.TeamId, "owner-1")
	require.NoError(t, err)
	require.NoError(t, env.member.RemoveMember(team.TeamId, member.MemberId, owner))

	_, err = env.permission.VerifyMembership(team.TeamId, "member-1")
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestVerifyCapability(t *testing.T) {
	env := newTestEnv(t)

	viewer := &model.TeamMember{Role: model.TeamRoleViewer}
	assert.ErrorIs(t, env.permission.VerifyCapability(viewer, model.CapShareJobs), ErrInsufficientPermission)
	assert.NoError(t, env.permission.VerifyCapability(viewer, model.CapViewAnalytics))
	assert.ErrorIs(t, env.permission.VerifyCapability(nil, model.CapViewAnalytics), ErrInsufficientPermission)
}

func TestVerifyOwnership(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)

	got, err := env.permission.VerifyOwnership(team.TeamId, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, team.TeamId, got.TeamId)

	_, err = env.permission.VerifyOwnership(team.TeamId, "mentor-1")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestVerifyMentorOrCoach(t *testing.T) {
	env := newTestEnv(t)

	for _, role := range []string{model.TeamRoleOwner, model.TeamRoleMentor, model.TeamRoleCoach} {
		assert.NoError(t, env.permission.VerifyMentorOrCoach(&model.TeamMember{Role: role}))
	}
	for _, role := range []string{model.TeamRoleMember, model.TeamRoleViewer} {
		assert.ErrorIs(t, env.permission.VerifyMentorOrCoach(&model.TeamMember{Role: role}), ErrForbidden)
	}
	assert.ErrorIs(t, env.permission.VerifyMentorOrCoach(nil), ErrForbidden)
}
