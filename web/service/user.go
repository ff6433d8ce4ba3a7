package service

import (
	"errors"

	"booklib/database"
	"booklib/database/model"
	"booklib/logger"

	"gorm.io/gorm"
)

// ErrUserExists is returned by Register when the username is taken.
var ErrUserExists = errors.New("user already exists")

type UserService struct{}

// Register creates a new account. The users table rejects duplicate
// usernames, so a losing insert leaves no row behind.
func (s *UserService) Register(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{
		Username: username,
		Password: password,
	}
	err := db.Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrUserExists
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the account matching both username and password, or
// nil. Lookup failure and wrong password are indistinguishable to the
// caller.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ? AND password = ?", username, password).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}
	return user
}

// DeleteUser removes the account row. Unknown ids are a no-op. Books
// owned by the account are left in place.
func (s *UserService) DeleteUser(id int) error {
	db := database.GetDB()
	return db.Where("id = ?", id).Delete(&model.User{}).Error
}
