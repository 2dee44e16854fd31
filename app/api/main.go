package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/database/redisclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/base/metrics"
	bValidator "github.com/gavelauto/goapi/base/validator"
	"github.com/gavelauto/goapi/domain/auction"
	mmiddleware "github.com/gavelauto/goapi/middleware"
	"github.com/gavelauto/goapi/service/notifier"
	"github.com/gavelauto/goapi/service/query"
	"github.com/gavelauto/goapi/service/redis"
	account_delivery "github.com/gavelauto/goapi/stores/account/delivery/http"
	account_repository "github.com/gavelauto/goapi/stores/account/repository"
	account_usecase "github.com/gavelauto/goapi/stores/account/usecase"
	auction_delivery "github.com/gavelauto/goapi/stores/auction/delivery/http"
	auction_repository "github.com/gavelauto/goapi/stores/auction/repository"
	auction_usecase "github.com/gavelauto/goapi/stores/auction/usecase"
	auth_delivery "github.com/gavelauto/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/gavelauto/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/gavelauto/goapi/stores/auth/usecase"
	hc_delivery "github.com/gavelauto/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/gavelauto/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/gavelauto/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/gavelauto/goapi/stores/listing/delivery/http"
	listing_repository "github.com/gavelauto/goapi/stores/listing/repository"
	listing_usecase "github.com/gavelauto/goapi/stores/listing/usecase"
	moderator_delivery "github.com/gavelauto/goapi/stores/moderator/delivery/http"
	moderator_repository "github.com/gavelauto/goapi/stores/moderator/repository"
	moderator_usecase "github.com/gavelauto/goapi/stores/moderator/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// loadAuctionConfig starts from the production defaults and overrides only
// the keys present in the config file.
func loadAuctionConfig() auction.Config {
	cfg := auction.DefaultConfig()

	if viper.IsSet("auction.antiSnipeWindow") {
		cfg.AntiSnipeWindow = viper.GetDuration("auction.antiSnipeWindow")
	}
	if viper.IsSet("auction.extensionPeriod") {
		cfg.ExtensionPeriod = viper.GetDuration("auction.extensionPeriod")
	}
	if viper.IsSet("auction.maxExtensions") {
		cfg.MaxExtensions = viper.GetInt("auction.maxExtensions")
	}
	if viper.IsSet("auction.minDurationDays") {
		cfg.MinDurationDays = viper.GetInt("auction.minDurationDays")
	}
	if viper.IsSet("auction.maxDurationDays") {
		cfg.MaxDurationDays = viper.GetInt("auction.maxDurationDays")
	}
	if viper.IsSet("auction.paymentDeadlineOffset") {
		cfg.PaymentDeadlineOffset = viper.GetDuration("auction.paymentDeadlineOffset")
	}
	if viper.IsSet("auction.fee.rate") {
		cfg.Fee.Rate = decimal.NewFromFloat(viper.GetFloat64("auction.fee.rate"))
	}
	if viper.IsSet("auction.fee.floor") {
		cfg.Fee.Floor = viper.GetInt64("auction.fee.floor")
	}
	if viper.IsSet("auction.fee.cap") {
		cfg.Fee.Cap = viper.GetInt64("auction.fee.cap")
	}
	if viper.IsSet("auction.incrementTiers") {
		tiers := []auction.IncrementTier{}
		if err := viper.UnmarshalKey("auction.incrementTiers", &tiers); err != nil {
			panic(err)
		}
		if len(tiers) > 0 {
			cfg.IncrementTiers = tiers
		}
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.AddRequestMeta())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})
	mmiddleware.SetupCache(redisCache)

	// init event notifier
	context.Info("init notifier")
	notifierService := notifier.MustNew(
		context,
		viper.GetString("amqp.uri"),
		viper.GetString("amqp.exchange"),
		metrics.New("notifier"),
	)
	defer notifierService.Close()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	moderatorRepo := moderator_repository.New(q)
	listingRepo := listing_repository.New(q, redisCache)
	auctionRepo := auction_repository.New(q)
	bidRepo := auction_repository.NewBid(q)
	bidderNumberRepo := auction_repository.NewBidderNumber(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(accountRepo)
	moderator := moderator_usecase.New(moderatorRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo: listingRepo,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:      auctionRepo,
		BidRepo:          bidRepo,
		BidderNumberRepo: bidderNumberRepo,
		ListingRepo:      listingRepo,
		AccountRepo:      accountRepo,
		Query:            q,
		Notifier:         notifierService,
		Redis:            redisCache,
		Config:           loadAuctionConfig(),
	})

	adminUserIds := viper.GetStringSlice("admin.userIds")
	authMiddleware := auth_middleware.New(auth, moderator, adminUserIds)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	account_delivery.New(e, account, authMiddleware)
	moderator_delivery.New(e, moderator, authMiddleware)
	listing_delivery.New(e, listingUC, authMiddleware)
	auction_delivery.New(e, auctionUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
