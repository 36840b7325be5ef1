package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lostfound-api/internal/core/auth"
	"lostfound-api/internal/domain"
	"lostfound-api/internal/transport/http/handler"
	mdw "lostfound-api/internal/transport/http/middleware"
)

// Handlers bundles everything the public engine mounts.
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Report *handler.ReportHandler
	Item   *handler.ItemHandler
	Claim  *handler.ClaimHandler
}

func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Public: registration, login and report reads.
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/reports", h.Report.List)
	api.GET("/reports/search", h.Report.Search)
	api.GET("/reports/:id", h.Report.GetByID)

	// Authenticated.
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	authed.GET("/users", h.User.List)
	authed.GET("/users/:userName", h.User.GetByUserName)
	authed.PUT("/users", h.User.Edit)
	authed.PATCH("/users", h.User.Patch)

	authed.POST("/reports", h.Report.Create)
	authed.PUT("/reports/:id", h.Report.Update)
	authed.DELETE("/reports/:id", h.Report.Delete)

	authed.POST("/items", h.Item.Create)
	authed.GET("/items", h.Item.List)
	authed.GET("/items/search", h.Item.Search)
	authed.GET("/items/:id", h.Item.GetByID)
	authed.PUT("/items/:id", h.Item.Update)
	authed.DELETE("/items/:id", h.Item.Delete)

	authed.POST("/claims", h.Claim.Create)
	authed.GET("/claims", h.Claim.List)
	authed.DELETE("/claims/:id", h.Claim.Delete)

	// Admin-only gate.
	admin := api.Group("")
	admin.Use(mdw.AuthJWT(jwter, domain.RoleAdmin))

	admin.POST("/users", h.User.Create)
	admin.DELETE("/users/delete/:id", h.User.Delete)
	admin.PUT("/claims/:id/status", h.Claim.SetStatus)

	return r
}
