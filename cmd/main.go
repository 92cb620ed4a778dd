package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Leganyst/booking-platform/internal/config"
	"github.com/Leganyst/booking-platform/internal/db"
	"github.com/Leganyst/booking-platform/internal/handlers"
	"github.com/Leganyst/booking-platform/internal/model"
	"github.com/Leganyst/booking-platform/internal/repository"
	"github.com/Leganyst/booking-platform/internal/routes"
	"github.com/Leganyst/booking-platform/internal/service"
)

func main() {
	// 1. Подхватываем .env, если он есть, и читаем конфиг.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	calendarRepo := repository.NewGormCalendarRepository(gormDB)
	slotRepo := repository.NewGormSlotRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 5. Сервисы.
	identitySvc := service.NewIdentityService(userRepo, eventRepo)
	calendarSvc := service.NewCalendarService(userRepo, calendarRepo, slotRepo, bookingRepo)
	bookingSvc := service.NewBookingService(gormDB, slotRepo, bookingRepo, eventRepo)

	// 6. HTTP-обработчики и маршруты.
	authHandler := handlers.NewAuthHandler(identitySvc, &cfg.JWT)
	calendarHandler := handlers.NewCalendarHandler(calendarSvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	healthHandler := handlers.NewHealthHandler(gormDB)

	handler := routes.Setup(cfg, authHandler, calendarHandler, bookingHandler, healthHandler)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	log.Printf("booking HTTP server listening on %s", cfg.HTTP.Addr)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
