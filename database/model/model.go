package model

// User is an account able to log in and own catalog entries. The
// password is stored verbatim; see DESIGN.md before exposing this
// beyond a trusted network.
type User struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (User) TableName() string {
	return "users"
}

// Book is one catalog entry. UserId references the creating account but
// is not enforced at the storage level, so books survive account
// deletion. Year is bound from the form as text and stored as given.
type Book struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId  int    `json:"userId" gorm:"column:user_id"`
	Title   string `json:"title" form:"title"`
	Author  string `json:"author" form:"author"`
	Year    string `json:"year" form:"year"`
	Genre   string `json:"genre" form:"genre"`
	Content string `json:"content" form:"content"`
	Notes   string `json:"notes" form:"notes"`
}

func (Book) TableName() string {
	return "books"
}
