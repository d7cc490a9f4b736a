package service

import "errors"

// Sentinel errors returned by the services. Routers map these onto the HTTP
// error taxonomy; everything else becomes an internal error.
var (
	// Guard failures (403).
	ErrNotAMember             = errors.New("not an active member of this team")
	ErrTeamInactive           = errors.New("team is inactive")
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrNotOwner               = errors.New("only the team owner may perform this action")
	ErrForbidden              = errors.New("forbidden")

	// Missing rows (404).
	ErrTeamNotFound     = errors.New("team not found")
	ErrMemberNotFound   = errors.New("team member not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrJobNotFound      = errors.New("job opportunity not found")

	// Invalid state transitions (400).
	ErrAlreadyMember = errors.New("user is already an active member of this team")
	ErrTeamFull      = errors.New("team has reached its member limit")
	ErrTeamNameTaken = errors.New("team name is already taken")
)
