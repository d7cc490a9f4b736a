package service

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymizeMemberId(t *testing.T) {
	a := AnonymizeMemberId("user-1", "team-1")
	assert.Len(t, a, 8)

	// deterministic per (user, team)
	assert.Equal(t, a, AnonymizeMemberId("user-1", "team-1"))

	// different across teams and across users
	assert.NotEqual(t, a, AnonymizeMemberId("user-1", "team-2"))
	assert.NotEqual(t, a, AnonymizeMemberId("user-2", "team-1"))
}

func TestDashboardEmptyTeam(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")

	dash, err := env.analytics.Dashboard(team.TeamId)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dash.TotalMembers)
	assert.EqualValues(t, 0, dash.TotalJobsTracked)
	assert.Zero(t, dash.TotalApplications)
	// zero applications must not divide
	assert.Zero(t, dash.ApplicationSuccessRate)
	assert.Equal(t, 1, dash.MemberBreakdown.Owners)
}

func TestDashboardCounters(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	job := env.seedJob(t, "user-2", "Backend Engineer", "interviewing")
	now := time.Now()
	env.seedApplicationEntry(t, job.JobId, model.ApplicationStatusApplied, now.Add(-72*time.Hour))
	env.seedApplicationEntry(t, job.JobId, "screening", now.Add(-48*time.Hour))
	env.seedApplicationEntry(t, job.JobId, model.ApplicationStatusOffer, now)
	env.seedInterview(t, job.JobId)
	env.seedInterview(t, job.JobId)

	_, err := env.job.ShareJob(team.TeamId, "user-2", &model.ShareJobReq{JobId: job.JobId})
	require.NoError(t, err)

	dash, err := env.analytics.Dashboard(team.TeamId)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dash.TotalMembers)
	assert.EqualValues(t, 1, dash.TotalJobsTracked)
	assert.Equal(t, 1, dash.TotalApplications)
	assert.Equal(t, 2, dash.TotalInterviews)
	assert.Equal(t, 1, dash.TotalOffers)
	assert.InDelta(t, 100.0, dash.ApplicationSuccessRate, 0.001)
	assert.Equal(t, 1, dash.MemberBreakdown.Members)
}

func TestMenteeProgress(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	active := env.seedJob(t, "user-2", "SRE", "applied")
	env.seedApplicationEntry(t, active.JobId, model.ApplicationStatusApplied, time.Now())
	env.seedJob(t, "user-2", "Data Engineer", model.JobStatusRejected)
	env.seedJob(t, "user-2", "Platform Engineer", model.JobStatusOffer)

	created, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "user-2",
		Title:      "Mock interview",
	})
	require.NoError(t, err)
	completed := model.TaskStatusCompleted
	_, err = env.task.UpdateTask(team.TeamId, created.TaskId, "user-2", &model.UpdateTaskReq{Status: &completed})
	require.NoError(t, err)
	_, err = env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "user-2",
		Title:      "Networking outreach",
	})
	require.NoError(t, err)

	missing, _ := sonic.Marshal([]string{"kubernetes", "terraform", "go"})
	matched, _ := sonic.Marshal([]string{"docker"})
	require.NoError(t, env.db.Create(&model.SkillsGap{
		AnalysisId:    id.GetUUID(),
		UserId:        "user-2",
		MissingSkills: missing,
		MatchedSkills: matched,
	}).Error)

	progress, err := env.analytics.MenteeProgress(team.TeamId, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.TotalApplications)
	assert.Equal(t, 1, progress.ActiveJobs)
	assert.Equal(t, 1, progress.CompletedTasks)
	assert.Equal(t, 1, progress.PendingTasks)
	assert.Equal(t, 3, progress.SkillsGapProgress.TotalGaps)
	assert.Equal(t, 1, progress.SkillsGapProgress.GapsAddressed)
	assert.InDelta(t, 25.0, progress.SkillsGapProgress.ProgressPercentage, 0.001)
	assert.NotEmpty(t, progress.RecentActivities)
}

func TestMenteeProgressNoSkillsGaps(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	progress, err := env.analytics.MenteeProgress(team.TeamId, "user-2")
	require.NoError(t, err)
	assert.Zero(t, progress.SkillsGapProgress.ProgressPercentage)
}

func TestCollaborationScoreCapped(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	// 6 offers alone would score 150 uncapped
	job := env.seedJob(t, "user-2", "Big Role", "offer")
	for i := 0; i < 6; i++ {
		env.seedApplicationEntry(t, job.JobId, model.ApplicationStatusOffer, time.Now())
	}

	comparison, err := env.analytics.TeamComparison(team.TeamId)
	require.NoError(t, err)
	for _, m := range comparison.Members {
		assert.LessOrEqual(t, m.CollaborationScore, 100)
	}
}

func TestTeamComparison(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	// user-2: 2 applications, 1 interview -> score 2*5+1*15 = 25
	job := env.seedJob(t, "user-2", "Backend Engineer", "interviewing")
	env.seedApplicationEntry(t, job.JobId, model.ApplicationStatusApplied, time.Now().Add(-96*time.Hour))
	env.seedApplicationEntry(t, job.JobId, model.ApplicationStatusApplied, time.Now())
	env.seedInterview(t, job.JobId)

	comparison, err := env.analytics.TeamComparison(team.TeamId)
	require.NoError(t, err)
	require.Len(t, comparison.Members, 2)

	var row *model.MemberComparison
	target := AnonymizeMemberId("user-2", team.TeamId)
	for _, m := range comparison.Members {
		assert.Len(t, m.MemberId, 8)
		assert.NotContains(t, m.MemberId, "user-")
		if m.MemberId == target {
			row = m
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, 2, row.ApplicationsSubmitted)
	assert.Equal(t, 1, row.InterviewsScheduled)
	assert.Equal(t, 25, row.CollaborationScore)
	// four days between the first two history entries, one job
	assert.InDelta(t, 4.0, row.AverageResponseTime, 0.01)

	// summary means over both members: (2+0)/2 apps, (25+0)/2 score
	assert.InDelta(t, 1.0, comparison.Summary.AverageApplicationsPerMember, 0.001)
	assert.Equal(t, 13, comparison.Summary.CollaborationScore)

	assert.NotEmpty(t, comparison.SuccessPatterns.BestPerformingStrategies)
}

func TestTeamComparisonBestPerformers(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	for _, u := range []string{"u-a", "u-b", "u-c", "u-d"} {
		env.seedMember(t, team.TeamId, u, model.TeamRoleMember)
	}

	// u-b scores 10 (2 applications), u-d scores 5 (1 application)
	jobB := env.seedJob(t, "u-b", "Role B", "applied")
	env.seedApplicationEntry(t, jobB.JobId, model.ApplicationStatusApplied, time.Now())
	env.seedApplicationEntry(t, jobB.JobId, model.ApplicationStatusApplied, time.Now())
	jobD := env.seedJob(t, "u-d", "Role D", "applied")
	env.seedApplicationEntry(t, jobD.JobId, model.ApplicationStatusApplied, time.Now())

	comparison, err := env.analytics.TeamComparison(team.TeamId)
	require.NoError(t, err)
	require.Len(t, comparison.Members, 5)
	require.Len(t, comparison.BestPerformers, 3)
	assert.Equal(t, AnonymizeMemberId("u-b", team.TeamId), comparison.BestPerformers[0].MemberId)
	assert.Equal(t, AnonymizeMemberId("u-d", team.TeamId), comparison.BestPerformers[1].MemberId)
	assert.Equal(t, 10, comparison.BestPerformers[0].CollaborationScore)
}

func TestAverageResponseTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	jobs := []*model.JobOpportunity{
		{
			ApplicationHistory: []model.ApplicationEntry{
				// unsorted on purpose
				{Status: "screening", Timestamp: base.Add(48 * time.Hour)},
				{Status: model.ApplicationStatusApplied, Timestamp: base},
			},
		},
		{
			// single entry contributes zero
			ApplicationHistory: []model.ApplicationEntry{
				{Status: model.ApplicationStatusApplied, Timestamp: base},
			},
		},
	}

	// 2 days across 2 jobs
	assert.InDelta(t, 1.0, averageResponseTime(jobs), 0.001)
	assert.Zero(t, averageResponseTime(nil))
}
