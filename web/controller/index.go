package controller

import (
	"net/http"

	"booklib/logger"
	"booklib/web/service"
	"booklib/web/session"

	"github.com/gin-gonic/gin"
)

// AuthForm represents the login and registration request structure.
type AuthForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the entry page and everything tied to the
// account lifecycle: registration, login, logout, account deletion and
// the welcome page.
type IndexController struct {
	BaseController

	userService service.UserService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/welcome", a.checkLogin, a.welcome)

	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.POST("/delete_account", a.deleteAccount)
}

// index shows the combined login/registration page.
func (a *IndexController) index(c *gin.Context) {
	html(c, "index.html", "Library catalog", nil)
}

// register creates a new account and sends the caller back to the entry
// page to log in. A taken username re-renders the page with an error.
func (a *IndexController) register(c *gin.Context) {
	var form AuthForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "index.html", "Library catalog", gin.H{"error": "Invalid form data"})
		return
	}

	_, err := a.userService.Register(form.Username, form.Password)
	if err == service.ErrUserExists {
		html(c, "index.html", "Library catalog", gin.H{"error": "User already exists"})
		return
	} else if err != nil {
		logger.Warning("register err:", err)
		html(c, "index.html", "Library catalog", gin.H{"error": "Registration failed"})
		return
	}

	logger.Infof("new account %q registered, IP: %s", form.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/")
}

// login authenticates the account and binds the session to its id. The
// same error is shown for an unknown username and a wrong password.
func (a *IndexController) login(c *gin.Context) {
	var form AuthForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "index.html", "Library catalog", gin.H{"error": "Invalid form data"})
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q, IP: %s", form.Username, getRemoteIp(c))
		html(c, "index.html", "Library catalog", gin.H{"error": "Invalid username or password"})
		return
	}

	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in successfully", user.Username)
	c.Redirect(http.StatusSeeOther, "/welcome")
}

func (a *IndexController) welcome(c *gin.Context) {
	html(c, "welcome.html", "Welcome", nil)
}

// logout clears the session and returns to the entry page.
func (a *IndexController) logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// deleteAccount removes the logged-in account and clears the session.
// Anonymous callers are bounced without touching the store. Books owned
// by the account stay in the catalog.
func (a *IndexController) deleteAccount(c *gin.Context) {
	if userId, ok := session.GetLoginUserId(c); ok {
		if err := a.userService.DeleteUser(userId); err != nil {
			logger.Warning("delete account err:", err)
		}
		if err := session.ClearSession(c); err != nil {
			logger.Warning("unable to clear session:", err)
		}
	}
	c.Redirect(http.StatusSeeOther, "/")
}
