package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/barbeariapub/dashboard-api/internal/api/handler"
	"github.com/barbeariapub/dashboard-api/internal/api/middleware"
	"github.com/barbeariapub/dashboard-api/internal/core/service"
	"github.com/barbeariapub/dashboard-api/internal/infrastructure/config"
	mongodb "github.com/barbeariapub/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/barbeariapub/dashboard-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case reports are computed on every request.
func NewRouter(registry *mongodb.TenantRegistry, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("barbearia"))

	// --- Repositories ---
	cutRepo := mongodb.NewCutRepository(registry)
	customerRepo := mongodb.NewCustomerRepository(registry)
	clienteRepo := mongodb.NewClienteRepository(registry)
	employeeRepo := mongodb.NewEmployeeRepository(registry)
	expenseRepo := mongodb.NewExpenseRepository(registry)
	authRepo := mongodb.NewAuthRepository(registry)

	var cache service.ReportCache
	if rdb != nil {
		cache = redisdb.NewReportCache(rdb, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)
	}

	// --- Services ---
	authService := service.NewAuthService(authRepo, cfg.Auth.JWTSecret, 24*time.Hour, cfg.Auth.BootstrapUser, cfg.Auth.BootstrapPass, log)
	reportService := service.NewReportService(cutRepo, expenseRepo, employeeRepo, registry, cache, log)
	scheduleService := service.NewScheduleService(cutRepo, registry, log)
	loyaltyService := service.NewLoyaltyService(cutRepo, registry, log)
	customerService := service.NewCustomerService(customerRepo, clienteRepo, registry, log)
	employeeService := service.NewEmployeeService(employeeRepo, registry, log)
	expenseService := service.NewExpenseService(expenseRepo, employeeRepo, registry, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltyService)
	customerHandler := handler.NewCustomerHandler(customerService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	expenseHandler := handler.NewExpenseHandler(expenseService)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(registry.Client(), rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Login (outside the protected group) ---
	e.POST("/api/auth", authHandler.Login)

	// --- Dashboard API ---
	api := e.Group("/api")
	if cfg.Auth.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.Auth.JWTSecret))
	}

	api.GET("/agendamentos/:barbearia", scheduleHandler.Appointments)
	api.GET("/usuarios/:barbearia", customerHandler.Users)
	api.GET("/clientes/:barbearia", customerHandler.ListClientes)
	api.POST("/clientes/:barbearia", customerHandler.CreateCliente)
	api.GET("/funcionarios/:barbearia", employeeHandler.List)
	api.POST("/funcionarios/:barbearia", employeeHandler.Create)
	api.DELETE("/funcionarios/:barbearia", employeeHandler.Delete)
	api.GET("/despesas/:barbearia", expenseHandler.List)
	api.POST("/despesas/:barbearia", expenseHandler.Create)
	api.DELETE("/despesas/:barbearia", expenseHandler.Delete)
	api.GET("/despesas-resumo/:barbearia", reportHandler.ExpenseSummary)
	api.GET("/receitas/:barbearia", reportHandler.Revenue)
	api.GET("/grafico-receita/:barbearia", reportHandler.Chart)
	api.GET("/pontuacoes/:barbearia", loyaltyHandler.Scores)

	return e
}
