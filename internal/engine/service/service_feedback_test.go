package service

import (
	"testing"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedback(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	resp, err := env.feedback.CreateFeedback(team.TeamId, "mentor-1", &model.CreateFeedbackReq{
		MenteeId:     "user-2",
		FeedbackType: model.FeedbackResumeReview,
		Content:      "Lead with impact, not responsibilities.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.FeedbackId)

	rows := env.activityRows(t, team.TeamId)
	require.Len(t, rows, 1)
	assert.Equal(t, model.ActivityFeedbackGiven, rows[0].ActivityType)
}

func TestCreateFeedbackMenteeMustBeMember(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)

	_, err := env.feedback.CreateFeedback(team.TeamId, "mentor-1", &model.CreateFeedbackReq{
		MenteeId:     "stranger",
		FeedbackType: model.FeedbackGeneralGuidance,
		Content:      "Welcome!",
	})
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestGetFeedbackScopedToTeam(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	other := env.seedTeam(t, "owner-2")
	env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	created, err := env.feedback.CreateFeedback(team.TeamId, "mentor-1", &model.CreateFeedbackReq{
		MenteeId:     "user-2",
		FeedbackType: model.FeedbackInterviewPrep,
		Content:      "Practice the STAR format out loud.",
	})
	require.NoError(t, err)

	got, err := env.feedback.GetFeedback(team.TeamId, created.FeedbackId)
	require.NoError(t, err)
	assert.Equal(t, created.FeedbackId, got.FeedbackId)
	assert.Equal(t, "user-2", got.MenteeId)

	// a valid id read through another team stays hidden
	_, err = env.feedback.GetFeedback(other.TeamId, created.FeedbackId)
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, err = env.feedback.GetFeedback(team.TeamId, "missing")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)
}

func TestListFeedbackFiltered(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "mentor-1", model.TeamRoleMentor)
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)
	env.seedMember(t, team.TeamId, "user-3", model.TeamRoleMember)

	seed := []struct {
		mentee string
		kind   string
	}{
		{"user-2", model.FeedbackResumeReview},
		{"user-2", model.FeedbackInterviewPrep},
		{"user-3", model.FeedbackResumeReview},
	}
	for _, s := range seed {
		_, err := env.feedback.CreateFeedback(team.TeamId, "mentor-1", &model.CreateFeedbackReq{
			MenteeId:     s.mentee,
			FeedbackType: s.kind,
			Content:      "noted",
		})
		require.NoError(t, err)
	}

	all, err := env.feedback.ListFeedback(&model.FeedbackQuery{TeamId: team.TeamId})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byMentee, err := env.feedback.ListFeedback(&model.FeedbackQuery{TeamId: team.TeamId, MenteeId: "user-2"})
	require.NoError(t, err)
	assert.Len(t, byMentee, 2)

	byType, err := env.feedback.ListFeedback(&model.FeedbackQuery{TeamId: team.TeamId, FeedbackType: model.FeedbackResumeReview})
	require.NoError(t, err)
	assert.Len(t, byType, 2)
}
