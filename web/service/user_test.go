package service

import (
	"path/filepath"
	"testing"

	"booklib/database"
	"booklib/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
	})
}

func TestRegister(t *testing.T) {
	setup(t)

	service := UserService{}

	user, err := service.Register("alice", "pw1")
	assert.NoError(t, err)
	assert.Greater(t, user.Id, 0)
	assert.Equal(t, "alice", user.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setup(t)

	service := UserService{}

	_, err := service.Register("alice", "pw1")
	assert.NoError(t, err)

	_, err = service.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUserExists)

	// the losing insert must not leave a row behind
	var count int64
	err = database.GetDB().Model(model.User{}).Where("username = ?", "alice").Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCheckUser(t *testing.T) {
	setup(t)

	service := UserService{}
	registered, err := service.Register("alice", "pw1")
	require.NoError(t, err)

	user := service.CheckUser("alice", "pw1")
	require.NotNil(t, user)
	assert.Equal(t, registered.Id, user.Id)

	// unknown user and wrong password look the same to the caller
	assert.Nil(t, service.CheckUser("bob", "pw1"))
	assert.Nil(t, service.CheckUser("alice", "pw2"))
	assert.Nil(t, service.CheckUser("Alice", "pw1"))
}

func TestDeleteUserIdempotent(t *testing.T) {
	setup(t)

	service := UserService{}
	user, err := service.Register("alice", "pw1")
	require.NoError(t, err)

	assert.NoError(t, service.DeleteUser(user.Id))
	assert.Nil(t, service.CheckUser("alice", "pw1"))

	// repeating the delete, or deleting an id that never existed, is fine
	assert.NoError(t, service.DeleteUser(user.Id))
	assert.NoError(t, service.DeleteUser(99999))
}

func TestDeleteUserKeepsBooks(t *testing.T) {
	setup(t)

	userService := UserService{}
	bookService := BookService{}

	user, err := userService.Register("alice", "pw1")
	require.NoError(t, err)

	book := &model.Book{
		UserId: user.Id,
		Title:  "Dune",
		Author: "Herbert",
		Year:   "1965",
	}
	require.NoError(t, bookService.AddBook(book))

	require.NoError(t, userService.DeleteUser(user.Id))

	// books are not cascaded; the orphaned record stays readable
	orphan, err := bookService.GetBook(book.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", orphan.Title)
	assert.Equal(t, user.Id, orphan.UserId)
}
