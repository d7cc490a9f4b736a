package service

import "github.com/google/wire"

// ProviderSet is the Wire provider set for the service package.
var ProviderSet = wire.NewSet(
	NewPermissionService,
	NewActivityService,
	NewTeamService,
	NewMemberService,
	NewTaskService,
	NewFeedbackService,
	NewJobService,
	NewAnalyticsService,
)
