package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/database"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the services over a fresh in-memory database.
type testEnv struct {
	db         *gorm.DB
	permission *PermissionService
	team       *TeamService
	member     *MemberService
	task       *TaskService
	feedback   *FeedbackService
	activity   *ActivityService
	analytics  *AnalyticsService
	job        *JobService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Team{},
		&model.TeamMember{},
		&model.TeamActivity{},
		&model.TeamTask{},
		&model.TeamFeedback{},
		&model.User{},
		&model.JobOpportunity{},
		&model.ApplicationEntry{},
		&model.Interview{},
		&model.SharedJob{},
		&model.SkillsGap{},
	)
	require.NoError(t, err)

	idb := database.NewGormDB(db)
	teamRepo := repo.NewTeamRepo(idb)
	memberRepo := repo.NewMemberRepo(idb)
	activityRepo := repo.NewActivityRepo(idb)
	taskRepo := repo.NewTaskRepo(idb)
	feedbackRepo := repo.NewFeedbackRepo(idb)
	jobRepo := repo.NewJobRepo(idb)
	userRepo := repo.NewUserRepo(idb)

	activity := NewActivityService(activityRepo, userRepo)

	return &testEnv{
		db:         db,
		permission: NewPermissionService(teamRepo, memberRepo),
		team:       NewTeamService(teamRepo, memberRepo, activity),
		member:     NewMemberService(memberRepo, userRepo, activity),
		task:       NewTaskService(taskRepo, memberRepo, activity),
		feedback:   NewFeedbackService(feedbackRepo, memberRepo, activity),
		activity:   activity,
		analytics:  NewAnalyticsService(memberRepo, taskRepo, jobRepo, activity),
		job:        NewJobService(jobRepo, activity),
	}
}

func (e *testEnv) seedUser(t *testing.T, userId, name string) {
	t.Helper()
	require.NoError(t, e.db.Create(&model.User{UserId: userId, Name: name}).Error)
}

func (e *testEnv) seedTeam(t *testing.T, ownerId string) *model.Team {
	t.Helper()
	team := &model.Team{
		TeamId:     id.GetUUID(),
		Name:       fmt.Sprintf("team-%s", ownerId),
		Type:       model.TeamTypeMentorshipProgram,
		OwnerId:    ownerId,
		MaxMembers: 50,
		IsActive:   true,
	}
	require.NoError(t, e.db.Create(team).Error)
	e.seedMember(t, team.TeamId, ownerId, model.TeamRoleOwner)
	return team
}

func (e *testEnv) seedMember(t *testing.T, teamId, userId, role string) *model.TeamMember {
	t.Helper()
	member := &model.TeamMember{
		MemberId: id.GetUUID(),
		TeamId:   teamId,
		UserId:   userId,
		Role:     role,
		IsActive: true,
		JoinedAt: time.Now(),
	}
	require.NoError(t, e.db.Create(member).Error)
	return member
}

func (e *testEnv) seedJob(t *testing.T, userId, title, status string) *model.JobOpportunity {
	t.Helper()
	job := &model.JobOpportunity{
		JobId:  id.GetUUID(),
		UserId: userId,
		Title:  title,
		Status: status,
	}
	require.NoError(t, e.db.Create(job).Error)
	return job
}

func (e *testEnv) seedApplicationEntry(t *testing.T, jobId, status string, at time.Time) {
	t.Helper()
	entry := &model.ApplicationEntry{JobId: jobId, Status: status, Timestamp: at}
	require.NoError(t, e.db.Create(entry).Error)
}

func (e *testEnv) seedInterview(t *testing.T, jobId string) {
	t.Helper()
	iv := &model.Interview{InterviewId: id.GetUUID(), JobId: jobId, ScheduledAt: time.Now()}
	require.NoError(t, e.db.Create(iv).Error)
}

func (e *testEnv) activityRows(t *testing.T, teamId string) []*model.TeamActivity {
	t.Helper()
	var rows []*model.TeamActivity
	require.NoError(t, e.db.Where("team_id = ?", teamId).Order("id asc").Find(&rows).Error)
	return rows
}
