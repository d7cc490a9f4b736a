package model

import "time"

// Team member roles. The set is fixed; custom roles are not supported.
const (
	TeamRoleOwner  = "owner"  // full control of the team
	TeamRoleMentor = "mentor" // manages members, assigns tasks, gives feedback
	TeamRoleCoach  = "coach"  // assigns tasks and gives feedback
	TeamRoleMember = "member" // shares jobs, views analytics
	TeamRoleViewer = "viewer" // views analytics only
)

// AllTeamRoles lists every assignable role.
var AllTeamRoles = []string{
	TeamRoleOwner,
	TeamRoleMentor,
	TeamRoleCoach,
	TeamRoleMember,
	TeamRoleViewer,
}

// TeamMember is a user's membership in a team. Rows are never hard-deleted:
// IsActive=false is the only removal mechanism, so history stays queryable.
type TeamMember struct {
	BaseModel
	MemberId string    `gorm:"column:member_id;uniqueIndex" json:"memberId"`
	TeamId   string    `gorm:"column:team_id;not null;index:idx_team_user,unique" json:"teamId"`
	UserId   string    `gorm:"column:user_id;not null;index:idx_team_user,unique;index:idx_user" json:"userId"`
	Role     string    `gorm:"column:role;not null" json:"role"`
	IsActive bool      `gorm:"column:is_active" json:"isActive"`
	JoinedAt time.Time `gorm:"column:joined_at" json:"joinedAt"`
}

func (TeamMember) TableName() string {
	return "t_team_member"
}

// JoinTeamReq join team request
type JoinTeamReq struct {
	Role string `json:"role" validate:"omitempty,oneof=mentor coach member viewer"`
}

// ChangeRoleReq change member role request
type ChangeRoleReq struct {
	Role string `json:"role" validate:"required,oneof=mentor coach member viewer"`
}

// MemberResp team member response
type MemberResp struct {
	MemberId string `json:"memberId"`
	TeamId   string `json:"teamId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	JoinedAt string `json:"joinedAt"`
}

// ToMemberResp convert TeamMember to MemberResp
func ToMemberResp(m *TeamMember) *MemberResp {
	if m == nil {
		return nil
	}
	return &MemberResp{
		MemberId: m.MemberId,
		TeamId:   m.TeamId,
		UserId:   m.UserId,
		Role:     m.Role,
		IsActive: m.IsActive,
		JoinedAt: m.JoinedAt.Format("2006-01-02 15:04:05"),
	}
}
