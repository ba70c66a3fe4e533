package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "selli/docs" // swagger docs

	"selli/internal/auth"
	"selli/internal/cache"
	"selli/internal/config"
	"selli/internal/db"
	"selli/internal/handler"
	"selli/internal/model"
	"selli/internal/repository"
	"selli/internal/router"
	"selli/internal/service"
	"selli/internal/upload"
)

// @title Selli Classifieds API
// @version 1.0
// @description Classifieds marketplace API: accounts, ads, search and favourites.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Ad{},
		&model.Favourite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	images, err := upload.NewS3Store(context.Background(), cfg.S3Bucket)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	adRepo := repository.NewAdRepository(gormDB)
	favouriteRepo := repository.NewFavouriteRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	userService := service.NewUserService(userRepo, jwtService)
	adService := service.NewAdService(adRepo, userRepo)
	favouriteService := service.NewFavouriteService(favouriteRepo, adRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService, tokenStore, images, cfg.UploadDir)
	adHandler := handler.NewAdHandler(adService, images, cfg.UploadDir)
	favouriteHandler := handler.NewFavouriteHandler(favouriteService)

	router.Register(
		e,
		cfg,
		tokenStore,
		userRepo,
		userHandler,
		adHandler,
		favouriteHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
