package service

import (
	"testing"

	"booklib/database"
	"booklib/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addBook(t *testing.T, s *BookService, userId int, title, author string) *model.Book {
	t.Helper()
	book := &model.Book{
		UserId:  userId,
		Title:   title,
		Author:  author,
		Year:    "1965",
		Genre:   "SF",
		Content: "spice",
		Notes:   "to reread",
	}
	require.NoError(t, s.AddBook(book))
	require.Greater(t, book.Id, 0)
	return book
}

func TestAddAndGetBook(t *testing.T) {
	setup(t)

	service := BookService{}
	added := addBook(t, &service, 7, "Dune", "Herbert")

	got, err := service.GetBook(added.Id)
	require.NoError(t, err)
	assert.Equal(t, added.Id, got.Id)
	assert.Equal(t, 7, got.UserId)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Herbert", got.Author)
	assert.Equal(t, "1965", got.Year)
	assert.Equal(t, "SF", got.Genre)
	assert.Equal(t, "spice", got.Content)
	assert.Equal(t, "to reread", got.Notes)
}

func TestGetBookUnknownId(t *testing.T) {
	setup(t)

	service := BookService{}
	_, err := service.GetBook(42)
	assert.True(t, database.IsNotFound(err))
}

func TestYearPassedThroughVerbatim(t *testing.T) {
	setup(t)

	service := BookService{}
	book := &model.Book{UserId: 1, Title: "Unknown origins", Author: "Anon", Year: "circa 1900"}
	require.NoError(t, service.AddBook(book))

	got, err := service.GetBook(book.Id)
	require.NoError(t, err)
	assert.Equal(t, "circa 1900", got.Year)
}

func TestGetBooksAuthorFilter(t *testing.T) {
	setup(t)

	service := BookService{}
	hobbit := addBook(t, &service, 1, "The Hobbit", "Tolkien")
	addBook(t, &service, 1, "Imitation", "Tolkien ")
	addBook(t, &service, 2, "Dune", "Herbert")

	all, err := service.GetBooks("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// exact match only: no trimming, no case folding
	filtered, err := service.GetBooks("Tolkien")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, hobbit.Id, filtered[0].Id)

	lower, err := service.GetBooks("tolkien")
	require.NoError(t, err)
	assert.Empty(t, lower)

	none, err := service.GetBooks("Asimov")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteBookOwnerScoped(t *testing.T) {
	setup(t)

	service := BookService{}
	book := addBook(t, &service, 1, "Dune", "Herbert")

	// wrong owner removes nothing and is not an error
	removed, err := service.DeleteBook(book.Id, 2)
	assert.NoError(t, err)
	assert.False(t, removed)

	got, err := service.GetBook(book.Id)
	assert.NoError(t, err)
	assert.Equal(t, book.Id, got.Id)

	removed, err = service.DeleteBook(book.Id, 1)
	assert.NoError(t, err)
	assert.True(t, removed)

	_, err = service.GetBook(book.Id)
	assert.True(t, database.IsNotFound(err))

	// deleting an unknown id is a silent no-op
	removed, err = service.DeleteBook(99999, 1)
	assert.NoError(t, err)
	assert.False(t, removed)
}
