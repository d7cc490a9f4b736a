package model

// Capability is a named permission checked against a member's role.
type Capability string

const (
	CapManageMembers   Capability = "manageMembers"
	CapAssignTasks     Capability = "assignTasks"
	CapProvideFeedback Capability = "provideFeedback"
	CapShareJobs       Capability = "shareJobs"
	CapViewAnalytics   Capability = "viewAnalytics"
	CapDeleteTeam      Capability = "deleteTeam"
)

// AllCapabilities lists every capability key; every role must define all of
// them, which VerifyPermissionTable asserts at startup.
var AllCapabilities = []Capability{
	CapManageMembers,
	CapAssignTasks,
	CapProvideFeedback,
	CapShareJobs,
	CapViewAnalytics,
	CapDeleteTeam,
}

// RolePermissions is the static role→capability policy. Changing it is a code
// change; there are no configurable roles.
var RolePermissions = map[string]map[Capability]bool{
	TeamRoleOwner: {
		CapManageMembers:   true,
		CapAssignTasks:     true,
		CapProvideFeedback: true,
		CapShareJobs:       true,
		CapViewAnalytics:   true,
		CapDeleteTeam:      true,
	},
	TeamRoleMentor: {
		CapManageMembers:   true,
		CapAssignTasks:     true,
		CapProvideFeedback: true,
		CapShareJobs:       true,
		CapViewAnalytics:   true,
		CapDeleteTeam:      false,
	},
	TeamRoleCoach: {
		CapManageMembers:   false,
		CapAssignTasks:     true,
		CapProvideFeedback: true,
		CapShareJobs:       true,
		CapViewAnalytics:   true,
		CapDeleteTeam:      false,
	},
	TeamRoleMember: {
		CapManageMembers:   false,
		CapAssignTasks:     false,
		CapProvideFeedback: false,
		CapShareJobs:       true,
		CapViewAnalytics:   true,
		CapDeleteTeam:      false,
	},
	TeamRoleViewer: {
		CapManageMembers:   false,
		CapAssignTasks:     false,
		CapProvideFeedback: false,
		CapShareJobs:       false,
		CapViewAnalytics:   true,
		CapDeleteTeam:      false,
	},
}

// HasCapability reports whether role grants capability.
func HasCapability(role string, capability Capability) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	return perms[capability]
}
