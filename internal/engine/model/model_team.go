package model

// TeamType enumerates the kinds of coaching groups a team can be.
const (
	TeamTypeCareerCenter      = "career_center"
	TeamTypeJobSearchGroup    = "job_search_group"
	TeamTypeMentorshipProgram = "mentorship_program"
)

// Team is a named coaching group. OwnerId is set at creation and never
// changes afterwards; ownership transfer is not supported.
type Team struct {
	BaseModel
	TeamId      string `gorm:"column:team_id;uniqueIndex" json:"teamId"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Type        string `gorm:"column:type" json:"type"`
	OwnerId     string `gorm:"column:owner_id;index" json:"ownerId"`
	MaxMembers  int    `gorm:"column:max_members" json:"maxMembers"`
	IsActive    bool   `gorm:"column:is_active" json:"isActive"`
}

func (Team) TableName() string {
	return "t_team"
}

// CreateTeamReq create team request
type CreateTeamReq struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=512"`
	Type        string `json:"type" validate:"required,oneof=career_center job_search_group mentorship_program"`
	MaxMembers  int    `json:"maxMembers" validate:"omitempty,min=2,max=500"`
}

// UpdateTeamReq update team request
type UpdateTeamReq struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=64"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=512"`
	MaxMembers  *int    `json:"maxMembers,omitempty" validate:"omitempty,min=2,max=500"`
}

// TeamResp team response
type TeamResp struct {
	TeamId      string `json:"teamId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	OwnerId     string `json:"ownerId"`
	MaxMembers  int    `json:"maxMembers"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToTeamResp convert Team to TeamResp
func ToTeamResp(t *Team) *TeamResp {
	if t == nil {
		return nil
	}
	return &TeamResp{
		TeamId:      t.TeamId,
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		OwnerId:     t.OwnerId,
		MaxMembers:  t.MaxMembers,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
