package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"plantie/controllers"
	"plantie/infra"
	"plantie/middlewares"
	"plantie/models"
	"plantie/repositories"
	"plantie/services"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository)
	userController := controllers.NewUserController(userService)

	authService := services.NewAuthService(userRepository)
	authController := controllers.NewAuthController(authService)

	plantRepository := repositories.NewPlantRepository(db)
	plantService := services.NewPlantService(plantRepository)
	plantController := controllers.NewPlantController(plantService)

	orderRepository := repositories.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepository)
	orderController := controllers.NewOrderController(orderService)

	adminRepository := repositories.NewAdminRepository(db)
	adminRequestRepository := repositories.NewAdminRequestRepository(db)
	adminService := services.NewAdminService(adminRepository, adminRequestRepository)
	adminController := controllers.NewAdminController(adminService)

	healthController := controllers.NewHealthController(db)

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.AccessLogger())
	r.Use(middlewares.Recovery())
	r.Use(cors.Default())

	r.GET("/health", healthController.Check)
	r.GET("/Admin", adminController.Exists)
	r.GET("/NarudzbeKorisnika/:userId", orderController.FindByUser)

	api := r.Group("/api")

	api.GET("/korisnici", userController.FindAll)
	api.POST("/Korisnik", userController.Create)
	api.DELETE("/Korisnik/:id", userController.Delete)

	api.GET("/login", authController.Login)
	api.POST("/prijava", authController.SignIn)

	api.GET("/zahtjevi", adminController.FindAllRequests)
	api.POST("/zahtjev", adminController.CreateRequest)
	api.DELETE("/zahtjev/:id", adminController.DeleteRequest)

	api.GET("/biljke", plantController.Search)
	api.GET("/biljke/:name", plantController.FindByName)
	api.POST("/Biljka", plantController.Create)
	api.DELETE("/biljke/:code", plantController.Delete)

	api.GET("/narudzbe", orderController.FindAll)
	api.POST("/dodavanjenarudzbe", orderController.Create)
	api.DELETE("/brisanjenarudzbe/:id", orderController.Delete)

	return r
}

func initDB(cfg *infra.Config) *gorm.DB {
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
		log.Info().Msg("Database migrated")
	}

	return db
}

func main() {
	cfg := infra.Initialize()
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := initDB(cfg)
	r := setupRouter(db)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("Server exited")
}
