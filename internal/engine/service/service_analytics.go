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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/num"
	"gorm.io/datatypes"
)

const (
	dashboardMilestoneCount = 5
	menteeActivityCount     = 10
	bestPerformerCount      = 3
	maxCollaborationScore   = 100

	hoursPerDay = 24.0
)

// AnalyticsService computes the on-demand read views: team dashboard,
// per-mentee progress and the anonymized cross-member comparison. Results
// are never persisted; cost is O(team size × per-member history) per call.
type AnalyticsService struct {
	memberRepo repo.IMemberRepository
	taskRepo   repo.ITaskRepository
	jobRepo    repo.IJobRepository
	activity   *ActivityService
}

func NewAnalyticsService(memberRepo repo.IMemberRepository, taskRepo repo.ITaskRepository, jobRepo repo.IJobRepository, activity *ActivityService) *AnalyticsService {
	return &AnalyticsService{
		memberRepo: memberRepo,
		taskRepo:   taskRepo,
		jobRepo:    jobRepo,
		activity:   activity,
	}
}

// AnonymizeMemberId derives the pseudonym shown in cross-member output:
// the first 8 hex characters of SHA-256 over the namespaced (userId, teamId)
// pair. Deterministic per (user, team), different across teams for the same
// user. This is a display convenience, not a security boundary; 32 bits of
// truncation can collide at large team scale.
func AnonymizeMemberId(userId, teamId string) string {
	sum := sha256.Sum256([]byte(userId + ":" + teamId))
	return hex.EncodeToString(sum[:])[:8]
}

// Dashboard computes the team-level counters over the team's shared jobs.
func (s *AnalyticsService) Dashboard(teamId string) (*model.TeamDashboard, error) {
	totalMembers, err := s.memberRepo.CountActiveMembers(teamId)
	if err != nil {
		return nil, fmt.Errorf("count members failed: %w", err)
	}

	totalJobs, err := s.jobRepo.CountSharedJobs(teamId)
	if err != nil {
		return nil, fmt.Errorf("count shared jobs failed: %w", err)
	}

	shared, err := s.jobRepo.ListSharedJobs(teamId)
	if err != nil {
		return nil, fmt.Errorf("list shared jobs failed: %w", err)
	}
	jobIds := make([]string, 0, len(shared))
	for _, sj := range shared {
		jobIds = append(jobIds, sj.JobId)
	}

	jobs, err := s.jobRepo.ListJobsByIds(jobIds)
	if err != nil {
		return nil, fmt.Errorf("load shared job records failed: %w", err)
	}

	var applications, interviews, offers int
	for _, job := range jobs {
		for _, entry := range job.ApplicationHistory {
			switch entry.Status {
			case model.ApplicationStatusApplied:
				applications++
			case model.ApplicationStatusOffer:
				offers++
			}
		}
		interviews += len(job.Interviews)
	}

	successRate := 0.0
	if applications > 0 {
		successRate = num.Round2(float64(offers) / float64(applications) * 100)
	}

	milestones, err := s.activity.RecentMilestones(teamId, dashboardMilestoneCount)
	if err != nil {
		return nil, err
	}

	roleCounts, err := s.memberRepo.CountActiveByRole(teamId)
	if err != nil {
		return nil, fmt.Errorf("count members by role failed: %w", err)
	}

	return &model.TeamDashboard{
		TeamId:                 teamId,
		TotalMembers:           totalMembers,
		TotalJobsTracked:       totalJobs,
		TotalApplications:      applications,
		TotalInterviews:        interviews,
		TotalOffers:            offers,
		ApplicationSuccessRate: successRate,
		RecentMilestones:       milestones,
		MemberBreakdown: model.MemberBreakdown{
			Owners:  roleCounts[model.TeamRoleOwner],
			Mentors: roleCounts[model.TeamRoleMentor],
			Coaches: roleCounts[model.TeamRoleCoach],
			Members: roleCounts[model.TeamRoleMember],
			Viewers: roleCounts[model.TeamRoleViewer],
		},
	}, nil
}

// MenteeProgress computes one member's individual progress from their own
// job opportunities, team tasks and skills-gap rows.
func (s *AnalyticsService) MenteeProgress(teamId, userId string) (*model.MenteeProgress, error) {
	jobs, err := s.jobRepo.ListJobsByUser(userId)
	if err != nil {
		return nil, fmt.Errorf("list user jobs failed: %w", err)
	}

	var applications, interviews, offers, activeJobs int
	for _, job := range jobs {
		for _, entry := range job.ApplicationHistory {
			switch entry.Status {
			case model.ApplicationStatusApplied:
				applications++
			case model.ApplicationStatusOffer:
				offers++
			}
		}
		interviews += len(job.Interviews)
		if job.Status != model.JobStatusRejected && job.Status != model.JobStatusOffer {
			activeJobs++
		}
	}

	tasks, err := s.taskRepo.ListByAssignee(teamId, userId)
	if err != nil {
		return nil, fmt.Errorf("list mentee tasks failed: %w", err)
	}
	var completedTasks, pendingTasks int
	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusCompleted:
			completedTasks++
		case model.TaskStatusPending, model.TaskStatusInProgress:
			pendingTasks++
		}
	}

	gapProgress, err := s.skillsGapProgress(userId)
	if err != nil {
		return nil, err
	}

	recent, err := s.activity.RecentForUser(teamId, userId, menteeActivityCount)
	if err != nil {
		return nil, err
	}

	return &model.MenteeProgress{
		UserId:              userId,
		TeamId:              teamId,
		TotalApplications:   applications,
		InterviewsScheduled: interviews,
		OffersReceived:      offers,
		ActiveJobs:          activeJobs,
		CompletedTasks:      completedTasks,
		PendingTasks:        pendingTasks,
		SkillsGapProgress:   gapProgress,
		RecentActivities:    recent,
	}, nil
}

func (s *AnalyticsService) skillsGapProgress(userId string) (model.SkillsGapProgress, error) {
	gaps, err := s.jobRepo.ListSkillsGaps(userId)
	if err != nil {
		return model.SkillsGapProgress{}, fmt.Errorf("list skills gaps failed: %w", err)
	}

	var totalGaps, gapsAddressed int
	for _, gap := range gaps {
		totalGaps += countJSONSkills(gap.MissingSkills)
		gapsAddressed += countJSONSkills(gap.MatchedSkills)
	}

	progress := 0.0
	if total := totalGaps + gapsAddressed; total > 0 {
		progress = num.Round2(float64(gapsAddressed) / float64(total) * 100)
	}

	return model.SkillsGapProgress{
		TotalGaps:          totalGaps,
		GapsAddressed:      gapsAddressed,
		ProgressPercentage: progress,
	}, nil
}

func countJSONSkills(raw datatypes.JSON) int {
	if len(raw) == 0 {
		return 0
	}
	var skills []string
	if err := sonic.Unmarshal(raw, &skills); err != nil {
		return 0
	}
	return len(skills)
}

// TeamComparison computes the anonymized cross-member view. Member identity
// never leaves this function un-pseudonymized.
func (s *AnalyticsService) TeamComparison(teamId string) (*model.TeamComparison, error) {
	members, err := s.memberRepo.ListActiveMembers(teamId)
	if err != nil {
		return nil, fmt.Errorf("list members failed: %w", err)
	}

	rows := make([]*model.MemberComparison, 0, len(members))
	for _, member := range members {
		row, err := s.memberComparison(teamId, member.UserId)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	var sumApps, sumInterviews, sumResponse, sumScore float64
	for _, row := range rows {
		sumApps += float64(row.ApplicationsSubmitted)
		sumInterviews += float64(row.InterviewsScheduled)
		sumResponse += row.AverageResponseTime
		sumScore += float64(row.CollaborationScore)
	}

	// The denominator defaults to 1 so an empty team yields zeros rather
	// than NaN.
	n := float64(len(rows))
	if n == 0 {
		n = 1
	}

	best := make([]*model.MemberComparison, len(rows))
	copy(best, rows)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].CollaborationScore > best[j].CollaborationScore
	})
	if len(best) > bestPerformerCount {
		best = best[:bestPerformerCount]
	}

	return &model.TeamComparison{
		TeamId:  teamId,
		Members: rows,
		Summary: model.TeamComparisonSummary{
			AverageApplicationsPerMember: num.Round2(sumApps / n),
			AverageInterviewsPerMember:   num.Round2(sumInterviews / n),
			AverageResponseTime:          num.Round2(sumResponse / n),
			CollaborationScore:           num.RoundInt(sumScore / n),
		},
		BestPerformers:  best,
		SuccessPatterns: model.CannedSuccessPatterns,
	}, nil
}

func (s *AnalyticsService) memberComparison(teamId, userId string) (*model.MemberComparison, error) {
	jobs, err := s.jobRepo.ListJobsByUser(userId)
	if err != nil {
		return nil, fmt.Errorf("list member jobs failed: %w", err)
	}

	var applications, interviews, offers int
	for _, job := range jobs {
		for _, entry := range job.ApplicationHistory {
			switch entry.Status {
			case model.ApplicationStatusApplied:
				applications++
			case model.ApplicationStatusOffer:
				offers++
			}
		}
		interviews += len(job.Interviews)
	}

	tasksCompleted, err := s.taskRepo.CountCompleted(teamId, userId)
	if err != nil {
		return nil, fmt.Errorf("count completed tasks failed: %w", err)
	}

	score := num.RoundInt(float64(tasksCompleted)*10 +
		float64(applications)*5 +
		float64(interviews)*15 +
		float64(offers)*25)
	if score > maxCollaborationScore {
		score = maxCollaborationScore
	}

	return &model.MemberComparison{
		MemberId:              AnonymizeMemberId(userId, teamId),
		ApplicationsSubmitted: applications,
		InterviewsScheduled:   interviews,
		OffersReceived:        offers,
		TasksCompleted:        int(tasksCompleted),
		AverageResponseTime:   averageResponseTime(jobs),
		CollaborationScore:    score,
	}, nil
}

// averageResponseTime is the mean, over the member's jobs, of the days
// between the first two application-history entries sorted by timestamp.
// Jobs with fewer than two entries contribute 0; a member with no jobs
// scores 0.
func averageResponseTime(jobs []*model.JobOpportunity) float64 {
	if len(jobs) == 0 {
		return 0
	}

	var totalDays float64
	for _, job := range jobs {
		if len(job.ApplicationHistory) < 2 {
			continue
		}
		entries := make([]model.ApplicationEntry, len(job.ApplicationHistory))
		copy(entries, job.ApplicationHistory)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		})
		totalDays += entries[1].Timestamp.Sub(entries[0].Timestamp).Hours() / hoursPerDay
	}

	return num.Round2(totalDays / float64(len(jobs)))
}
