package service

import (
	"booklib/database"
	"booklib/database/model"
)

type BookService struct{}

// AddBook inserts the record and fills in its assigned id. The owner id
// is taken as given; existence of the account is not checked here.
func (s *BookService) AddBook(book *model.Book) error {
	db := database.GetDB()
	return db.Create(book).Error
}

// GetBook fetches one record by id, for any caller. Use
// database.IsNotFound on the returned error.
func (s *BookService) GetBook(id int) (*model.Book, error) {
	db := database.GetDB()

	book := &model.Book{}
	err := db.Model(model.Book{}).
		Where("id = ?", id).
		First(book).
		Error
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBooks lists records across all owners. A non-empty author narrows
// the result to exact matches on the author column; sqlite's = on TEXT
// is case-sensitive and does not trim, so "Tolkien " never matches
// "Tolkien".
func (s *BookService) GetBooks(author string) ([]*model.Book, error) {
	db := database.GetDB()

	query := db.Model(model.Book{})
	if author != "" {
		query = query.Where("author = ?", author)
	}

	var books []*model.Book
	err := query.Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

// DeleteBook removes the record only when both the id and the owner
// match, and reports whether a row went away. A mismatched owner is a
// silent no-op.
func (s *BookService) DeleteBook(id int, userId int) (bool, error) {
	db := database.GetDB()

	result := db.Where("id = ? AND user_id = ?", id, userId).Delete(&model.Book{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
