// Package router mounts every page on a gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	aimentorhandler "careerinn/internal/feature/aimentor/transport/handler"
	authhandler "careerinn/internal/feature/auth/transport/handler"
	directoryhandler "careerinn/internal/feature/directory/transport/handler"
	entitlementhandler "careerinn/internal/feature/entitlement/transport/handler"
	homehandler "careerinn/internal/feature/home/transport/handler"
	profilehandler "careerinn/internal/feature/profile/transport/handler"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Home      *homehandler.HomeHandler
	Profile   *profilehandler.ProfileHandler
	Subscribe *entitlementhandler.SubscribeHandler
	Chatbot   *aimentorhandler.ChatbotHandler
	Directory *directoryhandler.DirectoryHandler

	Health      gin.HandlerFunc
	LoadSession gin.HandlerFunc

	// UploadDir is served read-only under /uploads.
	UploadDir string
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())
	r.Static("/uploads", h.UploadDir)

	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	r.Use(h.LoadSession)

	// Public pages
	r.GET("/", h.Home.Home)
	r.GET("/about", homehandler.Page("about.html", "About"))
	r.GET("/contact", homehandler.Page("contact.html", "Contact"))
	r.GET("/support", homehandler.Page("support.html", "Support"))

	r.GET("/signup", h.Auth.ShowSignup)
	r.POST("/signup", h.Auth.Signup)
	r.GET("/login", h.Auth.ShowLogin)
	r.POST("/login", h.Auth.Login)
	r.GET("/logout", h.Auth.Logout)

	r.GET("/colleges", h.Directory.Colleges)
	r.GET("/courses", h.Directory.Courses)
	r.GET("/jobs", h.Directory.Jobs)
	r.GET("/prev-papers", h.Directory.PrevPapers)

	// Subscriber-only pages render the upsell view themselves.
	r.GET("/mentorship", h.Directory.Mentorship)
	r.GET("/mock-interviews", h.Directory.MockInterviews)
	r.GET("/global-match", h.Directory.GlobalMatch)

	auth := r.Group("/")
	auth.Use(jwtmw.LoginRequired())
	{
		auth.GET("/dashboard", h.Profile.Dashboard)
		auth.GET("/profile", h.Profile.Show)
		auth.POST("/profile", h.Profile.Update)

		auth.GET("/subscribe", h.Subscribe.Show)
		auth.POST("/subscribe", h.Subscribe.Activate)

		auth.GET("/chatbot", h.Chatbot.Show)
		auth.POST("/chatbot", h.Chatbot.Submit)
		auth.POST("/chatbot/end", h.Chatbot.End)

		auth.POST("/prev-papers", h.Directory.AddPaper)
		auth.POST("/mock-interviews", h.Directory.AddMockInterview)
	}

	return r
}
