package service

import (
	"testing"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskDefaults(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	resp, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "user-2",
		Title:      "Update resume",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, resp.Status)
	assert.Equal(t, model.TaskPriorityMedium, resp.Priority)

	rows := env.activityRows(t, team.TeamId)
	require.Len(t, rows, 1)
	assert.Equal(t, model.ActivityTaskAssigned, rows[0].ActivityType)
}

func TestCreateTaskAssigneeMustBeMember(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")

	_, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "stranger",
		Title:      "Update resume",
	})
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestUpdateTaskCompletion(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	created, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "user-2",
		Title:      "Mock interview",
	})
	require.NoError(t, err)

	completed := model.TaskStatusCompleted
	resp, err := env.task.UpdateTask(team.TeamId, created.TaskId, "user-2", &model.UpdateTaskReq{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, resp.Status)
	require.NotNil(t, resp.CompletedAt)

	// reopening clears the completion timestamp
	pending := model.TaskStatusPending
	resp, err = env.task.UpdateTask(team.TeamId, created.TaskId, "user-2", &model.UpdateTaskReq{Status: &pending})
	require.NoError(t, err)
	assert.Nil(t, resp.CompletedAt)

	// one task_assigned plus one task_completed
	rows := env.activityRows(t, team.TeamId)
	types := make([]string, 0, len(rows))
	for _, r := range rows {
		types = append(types, r.ActivityType)
	}
	assert.Contains(t, types, model.ActivityTaskCompleted)
}

func TestTaskScopedToTeam(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	other := env.seedTeam(t, "owner-2")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)

	created, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
		AssignedTo: "user-2",
		Title:      "Networking outreach",
	})
	require.NoError(t, err)

	status := model.TaskStatusCompleted
	_, err = env.task.UpdateTask(other.TeamId, created.TaskId, "owner-2", &model.UpdateTaskReq{Status: &status})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	assert.ErrorIs(t, env.task.DeleteTask(other.TeamId, created.TaskId), ErrTaskNotFound)
}

func TestListTasksFiltered(t *testing.T) {
	env := newTestEnv(t)
	team := env.seedTeam(t, "owner-1")
	env.seedMember(t, team.TeamId, "user-2", model.TeamRoleMember)
	env.seedMember(t, team.TeamId, "user-3", model.TeamRoleMember)

	for _, assignee := range []string{"user-2", "user-2", "user-3"} {
		_, err := env.task.CreateTask(team.TeamId, "owner-1", &model.CreateTaskReq{
			AssignedTo: assignee,
			Title:      "Practice task",
		})
		require.NoError(t, err)
	}

	all, err := env.task.ListTasks(&model.TaskQuery{TeamId: team.TeamId})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := env.task.ListTasks(&model.TaskQuery{TeamId: team.TeamId, AssignedTo: "user-2"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := env.task.ListTasks(&model.TaskQuery{TeamId: team.TeamId, Status: model.TaskStatusPending, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
