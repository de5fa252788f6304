package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loan-calculator/internal/adapter/http"
	"loan-calculator/internal/adapter/middleware"
	"loan-calculator/internal/adapter/repository/mysql"
	"loan-calculator/internal/config"
	"loan-calculator/internal/domain/loan"
	"loan-calculator/internal/engine"
	"loan-calculator/internal/infrastructure/cache"
	"loan-calculator/internal/infrastructure/db"
	loanuc "loan-calculator/internal/usecase/loan"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loan.Loan{}); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewLoanRepository(gdb)
	eng := engine.New(cfg.APR, cfg.InstalmentsPerYear)
	uc := loanuc.NewUsecase(repo, eng)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(uc)

	// routes
	e.GET("/health", h.Health)

	idemp := middleware.NewIdempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	api := e.Group("/api/loan", idemp.Middleware())
	api.POST("/calculate", lh.Calculate)
	api.PUT("/deactivate/:loanId", lh.Deactivate)
	api.GET("/list", lh.List)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
