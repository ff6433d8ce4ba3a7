package controller

import (
	"net/http"
	"strconv"

	"booklib/database"
	"booklib/database/model"
	"booklib/logger"
	"booklib/web/service"
	"booklib/web/session"

	"github.com/gin-gonic/gin"
)

// BookController handles catalog browsing and book management. Reads are
// open to everyone; adding and deleting require a session.
type BookController struct {
	BaseController

	bookService service.BookService
}

// NewBookController creates a new BookController and initializes its routes.
func NewBookController(g *gin.RouterGroup) *BookController {
	a := &BookController{}
	a.initRouter(g)
	return a
}

func (a *BookController) initRouter(g *gin.RouterGroup) {
	g.GET("/book/:id", a.bookDetail)
	g.GET("/books", a.listBooks)
	g.GET("/books/by_author", a.listBooksByAuthor)

	g.POST("/add_book", a.checkLogin, a.addBook)
	g.POST("/delete_book/:id", a.checkLogin, a.deleteBook)
}

// addBook stores a new record owned by the session's account. The year
// field is passed through as submitted, numeric or not.
func (a *BookController) addBook(c *gin.Context) {
	userId, _ := session.GetLoginUserId(c)

	book := &model.Book{}
	if err := c.ShouldBind(book); err != nil {
		logger.Warning("invalid book form:", err)
		c.Redirect(http.StatusSeeOther, "/welcome")
		return
	}
	book.Id = 0
	book.UserId = userId

	if err := a.bookService.AddBook(book); err != nil {
		logger.Warning("add book err:", err)
	} else {
		logger.Debugf("book %d added by user %d", book.Id, userId)
	}
	c.Redirect(http.StatusSeeOther, "/welcome")
}

// bookDetail shows one record to any caller, logged in or not.
func (a *BookController) bookDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		html(c, "error.html", "Error", gin.H{"message": "Book not found"})
		return
	}

	book, err := a.bookService.GetBook(id)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("get book err:", err)
		}
		html(c, "error.html", "Error", gin.H{"message": "Book not found"})
		return
	}
	html(c, "detail.html", book.Title, gin.H{"book": book})
}

// listBooks renders the whole catalog, or only one author's records when
// the author query parameter is present and non-empty.
func (a *BookController) listBooks(c *gin.Context) {
	author := c.Query("author")

	books, err := a.bookService.GetBooks(author)
	if err != nil {
		logger.Warning("list books err:", err)
	}
	html(c, "book_list.html", "Books", gin.H{
		"books":         books,
		"filter_active": author != "",
		"filter_author": author,
	})
}

// listBooksByAuthor is the dedicated single-author listing.
func (a *BookController) listBooksByAuthor(c *gin.Context) {
	author := c.Query("author")

	books, err := a.bookService.GetBooks(author)
	if err != nil {
		logger.Warning("list books by author err:", err)
	}
	html(c, "book_list.html", "Books", gin.H{
		"books":         books,
		"filter_active": true,
		"filter_author": author,
	})
}

// deleteBook removes a record when the session's account owns it. A
// non-owned or unknown id changes nothing; either way the caller lands
// back on the catalog.
func (a *BookController) deleteBook(c *gin.Context) {
	userId, _ := session.GetLoginUserId(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/books")
		return
	}

	removed, err := a.bookService.DeleteBook(id, userId)
	if err != nil {
		logger.Warning("delete book err:", err)
	} else if !removed {
		logger.Debugf("delete of book %d by user %d removed nothing", id, userId)
	}
	c.Redirect(http.StatusSeeOther, "/books")
}
