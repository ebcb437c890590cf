package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"superdaily/internal/auth"
	"superdaily/internal/cache"
	"superdaily/internal/config"
	"superdaily/internal/db"
	"superdaily/internal/handler"
	"superdaily/internal/metrics"
	"superdaily/internal/repository"
	"superdaily/internal/router"
	"superdaily/internal/service"
)

// @title Superdaily API
// @version 1.0
// @description Booking creation, featured product listing and phone/password login.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.AutoMigrate {
		log.Println("AUTO_MIGRATE=true detected, migrating tables...")
		if err := db.Migrate(gormDB); err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Redis is only dialled when the product listing cache is enabled.
	redisAddr := ""
	if cfg.ProductCacheTTL > 0 {
		redisAddr = cfg.RedisAddr
		log.Printf("Product cache enabled (ttl=%s, redis=%s)", cfg.ProductCacheTTL, redisAddr)
	}
	cacheClient := cache.New(redisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	metrics.Register()

	// Initialize repositories
	bookingRepo := repository.NewBookingRepository(gormDB, cfg.BookingsTable)
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	bookingService := service.NewBookingService(bookingRepo)
	productService := service.NewProductService(productRepo, cacheClient, cfg.ProductCacheTTL, cfg.ProductImageBaseURL)
	authService := service.NewAuthService(userRepo, auth.NewBcryptHasher())

	// Register routes
	router.Register(
		e,
		handler.NewBookingHandler(bookingService),
		handler.NewProductHandler(productService),
		handler.NewAuthHandler(authService),
	)

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL accepts a host with or without scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return strings.TrimSuffix(host, "/") + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
