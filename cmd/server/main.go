package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/laurvh/food-for-you/internal/availability"
	"github.com/laurvh/food-for-you/internal/config"
	"github.com/laurvh/food-for-you/internal/database"
	"github.com/laurvh/food-for-you/internal/handler"
	appmw "github.com/laurvh/food-for-you/internal/middleware"
	"github.com/laurvh/food-for-you/internal/queue"
	"github.com/laurvh/food-for-you/internal/repository"
	"github.com/laurvh/food-for-you/internal/router"
)

func main() {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the food resource store")
	}
	defer db.Close()

	foodBankRepo := repository.NewFoodBankRepo(db)
	hoursRepo := repository.NewHoursRepo(db)
	itemRepo := repository.NewItemRepo(db)
	outgoingRepo := repository.NewOutgoingRepo(db)
	eval := availability.NewEvaluator(hoursRepo, itemRepo)

	adminH := handler.NewAdminHandler(foodBankRepo, outgoingRepo)
	staffH := handler.NewStaffHandler(itemRepo)
	donorH := handler.NewDonorHandler(foodBankRepo, hoursRepo, eval, cfg.ReportDir)
	recipientH := handler.NewRecipientHandler(itemRepo, foodBankRepo, hoursRepo, eval, cfg.ReportDir)
	catalogH := handler.NewCatalogHandler(foodBankRepo, itemRepo)

	// Redis backs the response cache and rate limiter on the public donor
	// and recipient routes.  Both degrade to pass-through when Redis is
	// unreachable.
	rdb := config.NewRedisClient()
	publicMW := []echo.MiddlewareFunc{
		appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		appmw.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, catalogH)
	router.RegisterAdmin(e, adminH)
	router.RegisterStaff(e, staffH)
	router.RegisterDonor(e, donorH, publicMW...)
	router.RegisterRecipient(e, recipientH, publicMW...)

	// The data log consumer keeps running in the background; it reconnects
	// on broker failures and never takes the server down.
	go func() {
		if err := queue.StartOutgoingConsumer(); err != nil {
			logrus.WithError(err).Warn("outgoing consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("starting server")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
