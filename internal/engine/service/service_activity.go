package service

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/internal/engine/repo"
	"github.com/go-pathway/pathway/pkg/id"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/go-pathway/pathway/pkg/metrics"
	"github.com/go-pathway/pathway/pkg/safe"
)

const (
	defaultFeedLimit  = 50
	maxMilestoneLimit = 20
)

// ActivityService writes and reads the team activity feed. Writes are
// best-effort: a store failure is logged and counted, never surfaced to the
// action that triggered it.
type ActivityService struct {
	activityRepo repo.IActivityRepository
	userRepo     repo.IUserRepository
}

func NewActivityService(activityRepo repo.IActivityRepository, userRepo repo.IUserRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
	}
}

// Record appends a feed entry. It has no error return on purpose: the feed
// must never fail or roll back the primary action that fired it.
func (s *ActivityService) Record(teamId, userId, activityType, entityType, entityId string, metadata map[string]any) {
	activity := &model.TeamActivity{
		ActivityId:   id.GetUUID(),
		TeamId:       teamId,
		UserId:       userId,
		ActivityType: activityType,
		EntityType:   entityType,
		EntityId:     entityId,
	}

	if len(metadata) > 0 {
		raw, err := sonic.Marshal(metadata)
		if err != nil {
			log.Errorw("marshal activity metadata failed", "teamId", teamId, "activityType", activityType, "error", err)
		} else {
			activity.Metadata = raw
		}
	}

	safe.Do(func() {
		if err := s.activityRepo.Append(activity); err != nil {
			metrics.ActivityRecordFailures.WithLabelValues(activityType).Inc()
			log.Errorw("append team activity failed",
				"teamId", teamId,
				"userId", userId,
				"activityType", activityType,
				"error", err,
			)
		}
	})
}

// Describe maps an activity to a display string. Unknown types get the
// generic fallback rather than an error.
func Describe(activityType, actorName string, metadata map[string]any) string {
	switch activityType {
	case model.ActivityTeamCreated:
		return fmt.Sprintf("%s created the team", actorName)
	case model.ActivityMemberJoined:
		return fmt.Sprintf("%s joined the team", actorName)
	case model.ActivityMemberLeft:
		return fmt.Sprintf("%s left the team", actorName)
	case model.ActivityJobShared:
		if title, ok := metadata["jobTitle"].(string); ok && title != "" {
			return fmt.Sprintf("%s shared a job lead: %s", actorName, title)
		}
		return fmt.Sprintf("%s shared a job lead", actorName)
	case model.ActivityCommentAdded:
		return fmt.Sprintf("%s added a comment", actorName)
	case model.ActivityTaskAssigned:
		if title, ok := metadata["title"].(string); ok && title != "" {
			return fmt.Sprintf("%s assigned a task: %s", actorName, title)
		}
		return fmt.Sprintf("%s assigned a task", actorName)
	case model.ActivityTaskCompleted:
		if title, ok := metadata["title"].(string); ok && title != "" {
			return fmt.Sprintf("%s completed a task: %s", actorName, title)
		}
		return fmt.Sprintf("%s completed a task", actorName)
	case model.ActivityFeedbackGiven:
		return fmt.Sprintf("%s gave feedback", actorName)
	case model.ActivityMilestoneReached:
		if milestone, ok := metadata["milestone"].(string); ok && milestone != "" {
			return fmt.Sprintf("%s reached a milestone: %s", actorName, milestone)
		}
		return fmt.Sprintf("%s reached a milestone", actorName)
	case model.ActivityApplicationSubmitted:
		return fmt.Sprintf("%s submitted an application", actorName)
	case model.ActivityInterviewScheduled:
		return fmt.Sprintf("%s scheduled an interview", actorName)
	default:
		return fmt.Sprintf("%s performed an action", actorName)
	}
}

// Feed returns the paginated feed, newest first.
func (s *ActivityService) Feed(teamId string, limit, offset int) (*model.ActivityFeedResp, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	activities, err := s.activityRepo.ListByTeam(teamId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list team activities failed: %w", err)
	}

	resp, err := s.decorate(activities)
	if err != nil {
		return nil, err
	}
	return &model.ActivityFeedResp{
		Activities: resp,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Milestones returns up to 20 milestone_reached entries, newest first.
func (s *ActivityService) Milestones(teamId string) ([]*model.ActivityResp, error) {
	activities, err := s.activityRepo.ListByType(teamId, model.ActivityMilestoneReached, maxMilestoneLimit)
	if err != nil {
		return nil, fmt.Errorf("list milestones failed: %w", err)
	}
	return s.decorate(activities)
}

// RecentMilestones returns the last n milestones for the dashboard.
func (s *ActivityService) RecentMilestones(teamId string, n int) ([]*model.ActivityResp, error) {
	activities, err := s.activityRepo.ListByType(teamId, model.ActivityMilestoneReached, n)
	if err != nil {
		return nil, fmt.Errorf("list milestones failed: %w", err)
	}
	return s.decorate(activities)
}

// RecentForUser returns a user's latest activities within the team.
func (s *ActivityService) RecentForUser(teamId, userId string, n int) ([]*model.ActivityResp, error) {
	activities, err := s.activityRepo.ListByUser(teamId, userId, n)
	if err != nil {
		return nil, fmt.Errorf("list user activities failed: %w", err)
	}
	return s.decorate(activities)
}

// decorate attaches actor names and display descriptions.
func (s *ActivityService) decorate(activities []*model.TeamActivity) ([]*model.ActivityResp, error) {
	userIds := make([]string, 0, len(activities))
	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		if !seen[a.UserId] {
			seen[a.UserId] = true
			userIds = append(userIds, a.UserId)
		}
	}

	users, err := s.userRepo.ListUsersByIds(userIds)
	if err != nil {
		return nil, fmt.Errorf("resolve actor names failed: %w", err)
	}

	resp := make([]*model.ActivityResp, 0, len(activities))
	for _, a := range activities {
		actorName := a.UserId
		if u, ok := users[a.UserId]; ok && u.Name != "" {
			actorName = u.Name
		}

		var metadata map[string]any
		if len(a.Metadata) > 0 {
			if err := sonic.Unmarshal(a.Metadata, &metadata); err != nil {
				log.Warnw("unmarshal activity metadata failed", "activityId", a.ActivityId, "error", err)
			}
		}

		resp = append(resp, &model.ActivityResp{
			ActivityId:   a.ActivityId,
			TeamId:       a.TeamId,
			UserId:       a.UserId,
			ActorName:    actorName,
			ActivityType: a.ActivityType,
			EntityType:   a.EntityType,
			EntityId:     a.EntityId,
			Description:  Describe(a.ActivityType, actorName, metadata),
			Metadata:     metadata,
			CreatedAt:    a.CreatedAt,
		})
	}
	return resp, nil
}
