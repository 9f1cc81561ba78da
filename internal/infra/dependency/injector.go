// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/six-jars/backend/config"
	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/application/usecase/advisor"
	"github.com/six-jars/backend/internal/application/usecase/auth"
	"github.com/six-jars/backend/internal/application/usecase/budget"
	"github.com/six-jars/backend/internal/application/usecase/pet"
	"github.com/six-jars/backend/internal/application/usecase/savings"
	"github.com/six-jars/backend/internal/application/usecase/state"
	domainbudget "github.com/six-jars/backend/internal/domain/budget"
	"github.com/six-jars/backend/internal/infra/db"
	"github.com/six-jars/backend/internal/infra/server/router"
	"github.com/six-jars/backend/internal/integration/adapters"
	"github.com/six-jars/backend/internal/integration/cache"
	"github.com/six-jars/backend/internal/integration/email"
	"github.com/six-jars/backend/internal/integration/email/templates"
	"github.com/six-jars/backend/internal/integration/entrypoint/controller"
	"github.com/six-jars/backend/internal/integration/entrypoint/middleware"
	"github.com/six-jars/backend/internal/integration/notification"
	"github.com/six-jars/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Router       *router.Router
	EmailWorker  *email.Worker
	RateLimiters []*middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redis client selects the in-process pending store and locker.
func NewInjector(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(database)
	tokenRepo := persistence.NewTokenRepository(database)
	budgetRepo := persistence.NewBudgetRepository(database)
	emailQueueRepo := persistence.NewEmailQueueRepository(database)

	// Create adapters/services
	passwordHasher := adapters.NewPasswordHasher(cfg.JWT.BcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	geminiAdvisor := adapters.NewGeminiAdvisor(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !geminiAdvisor.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, advisor features use their fallbacks")
	}

	var (
		pendingStore adapter.PendingExpenseStore
		locker       adapter.UserLocker
	)
	if redisClient != nil {
		pendingStore = cache.NewRedisPendingStore(redisClient, cfg.Budget.PendingTTL)
		locker = cache.NewRedisLocker(redisClient, cfg.Budget.LockTTL)
	} else {
		slog.Warn("Redis not configured, using in-process pending store and locker")
		pendingStore = cache.NewMemoryPendingStore(cfg.Budget.PendingTTL)
		locker = cache.NewMemoryLocker()
	}

	// Create email pipeline
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender = email.LogSender{}
	if cfg.Email.ResendAPIKey != "" {
		resendClient, err := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.ResendBaseURL, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			return nil, err
		}
		sender = resendClient
	} else {
		slog.Warn("RESEND_API_KEY not set, reward emails are logged instead of sent")
	}
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	publisher := notification.NewMultiPublisher(
		notification.NewLogPublisher(slog.Default()),
		notification.NewEmailPublisher(userRepo, emailService),
	)

	// Create the budget store shared by every budget use case
	store := state.NewStore(budgetRepo, locker, publisher, domainbudget.NewEngine())
	suggester := advisor.NewSuggester(geminiAdvisor, cfg.Budget.AdvisorTimeout)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordHasher, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordHasher, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordHasher, tokenService)

	// Create budget use cases
	getBudgetUseCase := budget.NewGetBudgetUseCase(store, pendingStore)
	setIncomeUseCase := budget.NewSetIncomeUseCase(store)
	getBreakdownUseCase := budget.NewGetBreakdownUseCase(store)
	requestExpenseUseCase := budget.NewRequestExpenseUseCase(store, pendingStore, suggester)
	confirmExpenseUseCase := budget.NewConfirmExpenseUseCase(store, pendingStore)
	cancelExpenseUseCase := budget.NewCancelExpenseUseCase(pendingStore)
	deleteExpenseUseCase := budget.NewDeleteExpenseUseCase(store)

	// Create savings use cases
	createGoalUseCase := savings.NewCreateGoalUseCase(store, suggester)
	depositUseCase := savings.NewDepositUseCase(store)
	deleteGoalUseCase := savings.NewDeleteGoalUseCase(store)

	// Create pet use cases
	getActivePetUseCase := pet.NewGetActivePetUseCase(store)
	listCollectionUseCase := pet.NewListCollectionUseCase(store)
	selectPetUseCase := pet.NewSelectPetUseCase(store)

	// Create advisor use cases
	classifyUseCase := advisor.NewClassifyExpenseUseCase(suggester)
	adviceUseCase := advisor.NewGetAdviceUseCase(store, geminiAdvisor, cfg.Budget.AdvisorTimeout)

	// Create controllers
	var redisHealth controller.HealthChecker
	if redisClient != nil {
		redisHealth = db.RedisHealthCheck(redisClient)
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := database.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealth)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		changePasswordUseCase,
	)

	budgetController := controller.NewBudgetController(
		getBudgetUseCase,
		setIncomeUseCase,
		getBreakdownUseCase,
	)

	expenseController := controller.NewExpenseController(
		requestExpenseUseCase,
		confirmExpenseUseCase,
		cancelExpenseUseCase,
		deleteExpenseUseCase,
	)

	savingsController := controller.NewSavingsController(
		createGoalUseCase,
		depositUseCase,
		deleteGoalUseCase,
	)

	petController := controller.NewPetController(
		getActivePetUseCase,
		listCollectionUseCase,
		selectPetUseCase,
	)

	advisorController := controller.NewAdvisorController(
		classifyUseCase,
		adviceUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter, adviceRateLimiter *middleware.RateLimiter
	if cfg.IsTest() {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute, middleware.ByClientIP)
		adviceRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute, middleware.ByUser)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
		adviceRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Budget.AdviceLimit, cfg.Budget.AdviceWindow, middleware.ByUser)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		budgetController,
		expenseController,
		savingsController,
		petController,
		advisorController,
		loginRateLimiter,
		adviceRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           database,
		Redis:        redisClient,
		Router:       r,
		EmailWorker:  emailWorker,
		RateLimiters: []*middleware.RateLimiter{loginRateLimiter, adviceRateLimiter},
	}, nil
}
