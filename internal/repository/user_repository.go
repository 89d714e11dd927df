package repository

import (
	"FindThemAPI/internal/constant"
	"FindThemAPI/internal/model"
)

type UserRepository struct {
	Users *Collection[model.User]
}

func NewUserRepository(dataDir string) *UserRepository {
	return &UserRepository{
		Users: NewCollection[model.User](dataDir, constant.CollectionUsers),
	}
}

func (r *UserRepository) FindByUserID(userID string) (model.User, bool) {
	for _, u := range r.Users.Load() {
		if u.UserID == userID {
			return u, true
		}
	}
	return model.User{}, false
}
