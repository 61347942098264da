package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-wallet/config"
	_ "health-wallet/docs"
	"health-wallet/internal/handler"
	"health-wallet/internal/repository"
	"health-wallet/internal/security"
	"health-wallet/internal/service"
	"health-wallet/migrations"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Health Wallet
// @version 1.0
// @description REST API личного кабинета медицинских отчётов и показателей здоровья

// @host localhost:8080

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := migrations.Migrate(db.DB.DB); err != nil {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	ttl := time.Duration(cfg.TTL.S3AndRedis) * time.Second

	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	vitalRepo := repository.NewVitalRepository(db)
	shareRepo := repository.NewShareRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, ttl)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthService(db, userRepo, jwtService)
	reportService := service.NewReportService(db, reportRepo, vitalRepo, shareRepo, userRepo, cacheRepo, s3Service, ttl)
	vitalService := service.NewVitalService(db, vitalRepo, cacheRepo)
	shareService := service.NewShareService(db, shareRepo, userRepo, vitalRepo, cacheRepo, s3Service, ttl)

	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService, &cfg.Upload)
	vitalHandler := handler.NewVitalHandler(vitalService)
	shareHandler := handler.NewShareHandler(shareService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService, cfg)
	setupReportRoutes(router, reportHandler, jwtService, cfg)
	setupVitalRoutes(router, vitalHandler, jwtService, cfg)
	setupShareRoutes(router, shareHandler, jwtService, cfg)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Get("/api/health", h.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
			r.Get("/me", h.CurrentUser)
		})
	})
}

func setupReportRoutes(r chi.Router, h *handler.ReportHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Post("/upload", h.UploadReport)
		r.Get("/", h.ListReports)

		r.Route("/{report_id}", func(r chi.Router) {
			r.Get("/", h.GetReport)
			r.Delete("/", h.DeleteReport)
		})
	})
}

func setupVitalRoutes(r chi.Router, h *handler.VitalHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/vitals", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Post("/", h.AddVital)
		r.Get("/", h.ListVitals)
		r.Get("/trends", h.GetTrends)

		r.Route("/{vital_id}", func(r chi.Router) {
			r.Put("/", h.UpdateVital)
			r.Delete("/", h.DeleteVital)
		})
	})
}

func setupShareRoutes(r chi.Router, h *handler.ShareHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/share", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Get("/shared-with-me", h.SharedWithMe)
		r.Get("/shared-by-me", h.SharedByMe)

		r.Route("/report/{report_id}", func(r chi.Router) {
			r.Post("/", h.ShareReport)
			r.Get("/", h.ListGrants)
			r.Delete("/user/{user_id}", h.RevokeAccess)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
