package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"bookease-backend/internal/adapter/events"
	httpadp "bookease-backend/internal/adapter/http"
	mw "bookease-backend/internal/adapter/middleware"
	"bookease-backend/internal/adapter/repository/mysql"
	"bookease-backend/internal/config"
	"bookease-backend/internal/domain/event"
	"bookease-backend/internal/infrastructure/cache"
	"bookease-backend/internal/infrastructure/db"
	"bookease-backend/internal/usecase/catalog"
	"bookease-backend/internal/usecase/dashboard"
	loanuc "bookease-backend/internal/usecase/loan"
	"bookease-backend/internal/usecase/notifier"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	var pub event.Publisher = event.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatal(err)
		}
		defer kp.Close()
		pub = kp
	}

	bookRepo := mysql.NewBookRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	loanUC := loanuc.NewUsecase(loanRepo, guow, pub)
	catalogUC := catalog.NewUsecase(bookRepo, guow)
	notifierUC := notifier.NewUsecase(loanRepo, notifRepo)
	dashboardUC := dashboard.NewUsecase(bookRepo, loanRepo, userRepo)

	h := httpadp.NewHandler()
	bookH := httpadp.NewBookHandler(catalogUC)
	loanH := httpadp.NewLoanHandler(loanUC, notifierUC)
	notifH := httpadp.NewNotificationHandler(notifierUC)
	dashH := httpadp.NewDashboardHandler(dashboardUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")

	// public catalog browsing
	api.GET("/books", bookH.ListBooks)
	api.GET("/books/:book_id", bookH.GetBook)

	authed := api.Group("", mw.ResolveIdentity())
	admin := authed.Group("", mw.RequireAdmin())

	admin.POST("/books", bookH.CreateBook)
	admin.PUT("/books/:book_id", bookH.UpdateBook)
	admin.DELETE("/books/:book_id", bookH.DeleteBook)

	idemp := mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	authed.GET("/loans", loanH.ListLoans)
	authed.GET("/loans/reminders", loanH.Reminders)
	authed.POST("/loans", loanH.Borrow, idemp)
	authed.PUT("/loans/:loan_id/return", loanH.Return, idemp)

	authed.GET("/notifications", notifH.List)
	authed.POST("/notifications", notifH.Create)
	authed.PUT("/notifications/:notification_id/read", notifH.MarkRead)
	authed.DELETE("/notifications/:notification_id", notifH.Delete)

	admin.GET("/stats", dashH.Stats)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
