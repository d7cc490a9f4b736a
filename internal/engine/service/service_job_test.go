package service

import (
	"testing"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareJob(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)
	job := env.seedJob(t, "user-2", "Backend Engineer", "applied")

	shared, err := env.job.ShareJob(team.TeamId, "user-2", &model.ShareJobReq{
		JobId:   job.JobId,
		Comment: "great match for our stack",
	})
	require.NoError(t, err)
	assert.Equal(t, job.JobId, shared.JobId)
	assert.Equal(t, "user-2", shared.SharedBy)

	rows := env.activityRows(t, team.TeamId)
	require.Len(t, rows, 1)
	assert.Equal(t, model.ActivityJobShared, rows[0].ActivityType)
}

// Sharing someone else's job must fail before anything is written.
func TestShareJobNotOwned(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)
	job := env.seedJob(t, "someone-else", "Backend Engineer", "applied")

	_, err := env.job.ShareJob(team.TeamId, "user-2", &model.ShareJobReq{JobId: job.JobId})
	assert.ErrorIs(t, err, ErrForbidden)

	var count int64
	require.NoError(t, env.db.Model(&model.SharedJob{}).Where("team_id = ?", team.TeamId).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	assert.Empty(t, env.activityRows(t, team.TeamId))
}

func TestShareJobMissing(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")

	_, err := env.job.ShareJob(team.TeamId, "owner-1", &model.ShareJobReq{JobId: "nope"})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestListSharedJobs(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	first := env.seedJob(t, "user-2", "First", "applied")
	second := env.seedJob(t, "user-2", "Second", "applied")
	_, err := env.job.ShareJob(team.TeamId, "user-2", &model.ShareJobReq{JobId: first.JobId})
	require.NoError(t, err)
	_, err = env.job.ShareJob(team.TeamId, "user-2", &model.ShareJobReq{JobId: second.JobId})
	require.NoError(t, err)

	shared, err := env.job.ListSharedJobs(team.TeamId)
	require.NoError(t, err)
	assert.Len(t, shared, 2)
}
