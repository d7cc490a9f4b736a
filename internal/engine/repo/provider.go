package repo

import "github.com/google/wire"

// ProviderSet is the Wire provider set for the repo package.
var ProviderSet = wire.NewSet(
	NewTeamRepo,
	NewMemberRepo,
	NewActivityRepo,
	NewTaskRepo,
	NewFeedbackRepo,
	NewJobRepo,
	NewUserRepo,
)
