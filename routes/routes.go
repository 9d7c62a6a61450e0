package routes

import (
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto a gin engine. All shared
// state (DB handle, config, mailer) enters here and flows down through
// constructors.
func SetupRouter(cfg *config.Config, db *gorm.DB, mailer utils.Mailer) *gin.Engine {
	secret := []byte(cfg.JWTSecret)

	authCtl := controllers.NewAuthController(services.NewAuthService(db, secret, mailer))
	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(db))
	savedCtl := controllers.NewSavedRecipeController(services.NewSavedRecipeService(db))

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Public browse and search
	r.GET("/recipes", recipeCtl.List)
	r.GET("/recipes/search", recipeCtl.Search)

	// Session-guarded routes
	session := r.Group("")
	session.Use(middlewares.AuthMiddleware(secret))
	{
		session.POST("/recipes", recipeCtl.Create)
		session.PUT("/recipes/:recipeId", recipeCtl.Update)
		session.DELETE("/recipes/:recipeId", recipeCtl.Delete)

		saved := session.Group("/users/:userId/saved-recipes")
		{
			saved.GET("", savedCtl.List)
			saved.POST("", savedCtl.Save)
			saved.DELETE("/:recipeId", savedCtl.Remove)
		}
	}

	return r
}
