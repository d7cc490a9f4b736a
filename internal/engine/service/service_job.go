package service

import (
	"errors"
	"fmt"

	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/go-pathway/pathway/pkg/log"
	"gorm.io/gorm"
)

type JobService struct {
	jobRepo  repo.IJobRepository
	activity *ActivityService
}

func NewJobService(jobRepo repo.IJobRepository, activity *ActivityService) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		activity: activity,
	}
}

// ShareJob links one of the caller's own job opportunities into the team.
// Sharing someone else's job fails before any row is written.
func (s *JobService) ShareJob(teamId, userId string, req *model.ShareJobReq) (*model.SharedJob, error) {
	job, err := s.jobRepo.GetJobById(req.JobId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}
	if job.UserId != userId {
		return nil, ErrForbidden
	}

	shared := &model.SharedJob{
		SharedJobId: id.GetUUID(),
		TeamId:      teamId,
		JobId:       job.JobId,
		SharedBy:    userId,
		Comment:     req.Comment,
	}
	if err := s.jobRepo.CreateSharedJob(shared); err != nil {
		log.Errorw("create shared job failed", "teamId", teamId, "jobId", job.JobId, "error", err)
		return nil, fmt.Errorf("create shared job failed: %w", err)
	}

	s.activity.Record(teamId, userId, model.ActivityJobShared, "job", job.JobId, map[string]any{
		"jobTitle": job.Title,
		"company":  job.Company,
	})

	return shared, nil
}

// ListSharedJobs returns the team's shared-job links, newest first.
func (s *JobService) ListSharedJobs(teamId string) ([]*model.SharedJob, error) {
	shared, err := s.jobRepo.ListSharedJobs(teamId)
	if err != nil {
		return nil, fmt.Errorf("list shared jobs failed: %w", err)
	}
	return shared, nil
}
