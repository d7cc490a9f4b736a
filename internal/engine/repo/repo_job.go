package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

// IJobRepository reads the job-tracking collaborator's data and manages the
// team's shared-job links. Job opportunities themselves are never written
// here.
type IJobRepository interface {
	GetJobById(jobId string) (*model.JobOpportunity, error)
	ListJobsByUser(userId string) ([]*model.JobOpportunity, error)
	ListJobsByIds(jobIds []string) ([]*model.JobOpportunity, error)
	CreateSharedJob(s *model.SharedJob) error
	ListSharedJobs(teamId string) ([]*model.SharedJob, error)
	CountSharedJobs(teamId string) (int64, error)
	ListSkillsGaps(userId string) ([]*model.SkillsGap, error)
}

type JobRepo struct {
	database.IDatabase
}

func NewJobRepo(db database.IDatabase) IJobRepository {
	return &JobRepo{IDatabase: db}
}

func (r *JobRepo) GetJobById(jobId string) (*model.JobOpportunity, error) {
	var job model.JobOpportunity
	err := r.Database().Where("job_id = ?", jobId).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepo) ListJobsByUser(userId string) ([]*model.JobOpportunity, error) {
	var jobs []*model.JobOpportunity
	err := r.Database().
		Preload("ApplicationHistory").
		Preload("Interviews").
		Where("user_id = ?", userId).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ListJobsByIds(jobIds []string) ([]*model.JobOpportunity, error) {
	if len(jobIds) == 0 {
		return nil, nil
	}
	var jobs []*model.JobOpportunity
	err := r.Database().
		Preload("ApplicationHistory").
		Preload("Interviews").
		Where("job_id IN ?", jobIds).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) CreateSharedJob(s *model.SharedJob) error {
	return r.Database().Create(s).Error
}

func (r *JobRepo) ListSharedJobs(teamId string) ([]*model.SharedJob, error) {
	var shared []*model.SharedJob
	err := r.Database().
		Where("team_id = ?", teamId).
		Order("created_at DESC").
		Find(&shared).Error
	return shared, err
}

func (r *JobRepo) CountSharedJobs(teamId string) (int64, error) {
	var count int64
	err := r.Database().Model(&model.SharedJob{}).
		Where("team_id = ?", teamId).
		Count(&count).Error
	return count, err
}

func (r *JobRepo) ListSkillsGaps(userId string) ([]*model.SkillsGap, error) {
	var gaps []*model.SkillsGap
	err := r.Database().Where("user_id = ?", userId).Find(&gaps).Error
	return gaps, err
}
