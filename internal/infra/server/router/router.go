// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/six-jars/backend/internal/integration/entrypoint/controller"
	"github.com/six-jars/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	budgetController  *controller.BudgetController
	expenseController *controller.ExpenseController
	savingsController *controller.SavingsController
	petController     *controller.PetController
	advisorController *controller.AdvisorController
	loginRateLimiter  *middleware.RateLimiter
	adviceRateLimiter *middleware.RateLimiter
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	savingsController *controller.SavingsController,
	petController *controller.PetController,
	advisorController *controller.AdvisorController,
	loginRateLimiter *middleware.RateLimiter,
	adviceRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		budgetController:  budgetController,
		expenseController: expenseController,
		savingsController: savingsController,
		petController:     petController,
		advisorController: advisorController,
		loginRateLimiter:  loginRateLimiter,
		adviceRateLimiter: adviceRateLimiter,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
		auth.PUT("/password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
	}

	// Everything below requires authentication
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	budget := protected.Group("/budget")
	{
		budget.GET("", r.budgetController.Get)
		budget.PUT("/income", r.budgetController.SetIncome)
		budget.GET("/breakdown", r.budgetController.Breakdown)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.POST("/requests", r.expenseController.Request)
		expenses.POST("/requests/confirm", r.expenseController.Confirm)
		expenses.DELETE("/requests", r.expenseController.Cancel)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.POST("", r.savingsController.Create)
		goals.POST("/:id/deposits", r.savingsController.Deposit)
		goals.DELETE("/:id", r.savingsController.Delete)
	}

	pets := protected.Group("/pets")
	{
		pets.GET("/active", r.petController.Active)
		pets.PUT("/active", r.petController.Select)
		pets.GET("/collection", r.petController.Collection)
	}

	advisor := protected.Group("/advisor")
	{
		advisor.POST("/classify", r.advisorController.Classify)
		advisor.GET("/advice", r.adviceRateLimiter.Middleware(), r.advisorController.Advice)
	}
}
