package service

import (
	"testing"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRole(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	member := env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	resp, err := env.member.ChangeRole(team.TeamId, member.MemberId, model.TeamRoleCoach)
	require.NoError(t, err)
	assert.Equal(t, model.TeamRoleCoach, resp.Role)
}

func TestChangeRoleOwnerImmutable(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")

	var owner model.TeamMember
	require.NoError(t, env.db.Where("team_id = ? AND user_id = ?", team.TeamId, "owner-1").First(&owner).Error)

	_, err := env.member.ChangeRole(team.TeamId, owner.MemberId, model.TeamRoleMentor)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeRoleToOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	member := env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	_, err := env.member.ChangeRole(team.TeamId, member.MemberId, model.TeamRoleOwner)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeRoleWrongTeam(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	other := env.seedTeam(t, "owner-2")
	member := env.seedMember(t, other.TeamId, "user-2", model.TeamRoleMember)

	_, err := env.member.ChangeRole(team.TeamId, member.MemberId, model.TeamRoleCoach)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRemoveMemberRules(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	mentor := env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)
	coach := env.seedMember(t, team.TeamId, "coach-1", model.TeamRoleCoach)
	target := env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	// a coach may not remove someone else
	assert.ErrorIs(t, env.member.RemoveMember(team.TeamId, target.MemberId, coach), ErrForbidden)

	// a mentor may
	require.NoError(t, env.member.RemoveMember(team.TeamId, target.MemberId, mentor))

	var row model.TeamMember
	require.NoError(t, env.db.Where("member_id = ?", target.MemberId).First(&row).Error)
	assert.False(t, row.IsActive)
}

func TestRemoveMemberSelf(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	viewer := env.seedMember(t, team.TeamId, "viewer-1", model.TeamRoleViewer)

	// self-removal needs no manage capability
	require.NoError(t, env.member.RemoveMember(team.TeamId, viewer.MemberId, viewer))
}

func TestRemoveMemberOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	mentor := env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)

	var owner model.TeamMember
	require.NoError(t, env.db.Where("team_id = ? AND user_id = ?", team.TeamId, "owner-1").First(&owner).Error)

	assert.ErrorIs(t, env.member.RemoveMember(team.TeamId, owner.MemberId, mentor), ErrForbidden)
}

func TestListMembersWithNames(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "owner-1", "Avery")
	env.seedUser(t, "user-2", "Blake")
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	members, err := env.member.ListMembers(team.TeamId)
	require.NoError(t, err)
	require.Len(t, members, 2)

	names := map[string]string{}
	for _, m := range members {
		names[m.UserId] = m.UserName
	}
	assert.Equal(t, "Avery", names["owner-1"])
	assert.Equal(t, "Blake", names["user-2"])
}

func TestListMentees(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)
	env.seedMember(t, team.TeamId, "coach-1", model.TeamRoleCoach)
	env.seedMember(t, team.TeamId, "viewer-1", model.TeamRoleViewer)

	mentees, err := env.member.ListMentees(team.TeamId)
	require.NoError(t, err)
	require.Len(t, mentees, 1)
	assert.Equal(t, "user-2", mentees[0].UserId)
}
