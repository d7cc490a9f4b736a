package repo

import (
	"github.com/go-pathway/pathway/internal/engine/model"
	"github.com/go-pathway/pathway/pkg/database"
)

// IUserRepository is a read-only view of the identity collaborator's user
// projection, used to attach display names to feed entries.
type IUserRepository interface {
	GetUserById(userId string) (*model.User, error)
	ListUsersByIds(userIds []string) (map[string]*model.User, error)
}

type UserRepo struct {
	database.IDatabase
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{IDatabase: db}
}

func (r *UserRepo) GetUserById(userId string) (*model.User, error) {
	var u model.User
	err := r.Database().Where("user_id = ?", userId).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ListUsersByIds(userIds []string) (map[string]*model.User, error) {
	users := make(map[string]*model.User, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}

	var rows []*model.User
	err := r.Database().Where("user_id IN ?", userIds).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, u := range rows {
		users[u.UserId] = u
	}
	return users, nil
}
