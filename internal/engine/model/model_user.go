package model

// User is the read-only projection of the identity service's user record.
// Pathway never writes this table; it is synced by the auth collaborator.
type User struct {
	BaseModel
	UserId string `gorm:"column:user_id;uniqueIndex" json:"userId"`
	Name   string `gorm:"column:name" json:"name"`
	Email  string `gorm:"column:email" json:"email"`
}

func (User) TableName() string {
	return "t_user"
}
