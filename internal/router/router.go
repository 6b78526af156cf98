package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/AnshXGrind/ZeroMercy-Vibecraft/internal/middleware"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeactivateEvent(c *ginext.Context)
	Register(c *ginext.Context)
	ListMyRegistrations(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	UpdatePayment(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)
	GetMyProfile(c *ginext.Context)
	CreateProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
}

func InitRouter(mode string, h Handler, verifier middleware.TokenVerifier, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authRequired := middleware.Auth(verifier)

	api := router.Group("/api")
	{
		// Каталог событий открыт без токена; всё остальное — за Auth.
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", authRequired, h.CreateEvent)
		api.PUT("/events/:id", authRequired, h.UpdateEvent)
		api.DELETE("/events/:id", authRequired, h.DeactivateEvent)

		registrations := api.Group("/registrations", authRequired)
		{
			registrations.POST("", h.Register)
			registrations.GET("", h.ListMyRegistrations)
			registrations.GET("/:id", h.GetRegistration)
			registrations.DELETE("/:id", h.CancelRegistration)
			registrations.PATCH("/:id/payment", h.UpdatePayment)
			registrations.GET("/event/:id", h.ListEventRegistrations)
		}

		profile := api.Group("/profile", authRequired)
		{
			profile.GET("/me", h.GetMyProfile)
			profile.POST("", h.CreateProfile)
			profile.PUT("", h.UpdateProfile)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
