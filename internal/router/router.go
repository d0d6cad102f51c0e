package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	GenerateInvite(c *ginext.Context)
	RenderInvite(c *ginext.Context)
	DownloadInvite(c *ginext.Context)
	GetSettings(c *ginext.Context)
	UpdateSettings(c *ginext.Context)
	Dashboard(c *ginext.Context)
	CreateAdmin(c *ginext.Context)
	ListAdmins(c *ginext.Context)
	SetAdminStatus(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	adminAuth ginext.HandlerFunc,
	metrics http.Handler,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public site
		api.GET("/settings", h.GetSettings)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.GET("/reservations/:id/calendar.ics", h.RenderInvite)
	}

	admin := api.Group("/admin", adminAuth)
	{
		admin.GET("/dashboard", h.Dashboard)

		// Reservations
		admin.GET("/reservations", h.ListReservations)
		admin.POST("/reservations/:id/confirm", h.ConfirmReservation)
		admin.POST("/reservations/:id/cancel", h.CancelReservation)

		// Calendar invites
		admin.POST("/reservations/:id/invite", h.GenerateInvite)
		admin.GET("/invites/:filename", h.DownloadInvite)

		admin.PUT("/settings", h.UpdateSettings)

		// Admins
		admin.POST("/admins", h.CreateAdmin)
		admin.GET("/admins", h.ListAdmins)
		admin.PATCH("/admins/:id/status", h.SetAdminStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
