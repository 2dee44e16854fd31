package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	bCtx "github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/database/mongoclient"
	"github.com/gavelauto/goapi/base/log"
	"github.com/gavelauto/goapi/base/metrics"
	"github.com/gavelauto/goapi/base/sweeper"
	"github.com/gavelauto/goapi/domain/auction"
	mmiddleware "github.com/gavelauto/goapi/middleware"
	"github.com/gavelauto/goapi/service/notifier"
	"github.com/gavelauto/goapi/service/query"
	account_repository "github.com/gavelauto/goapi/stores/account/repository"
	auction_repository "github.com/gavelauto/goapi/stores/auction/repository"
	auction_usecase "github.com/gavelauto/goapi/stores/auction/usecase"
	listing_repository "github.com/gavelauto/goapi/stores/listing/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/scheduler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

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
	// start server to pass cloud run health check
	startEchoServer()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	sweepInterval := viper.GetDuration("sweeper.interval")

	ctx.WithFields(log.Fields{
		"sweeper.interval": sweepInterval,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	ctx.Info("init notifier")
	notifierService := notifier.MustNew(
		ctx,
		viper.GetString("amqp.uri"),
		viper.GetString("amqp.exchange"),
		metrics.New("notifier"),
	)
	defer notifierService.Close()

	errCh := make(chan error, 10)

	// repos
	accountRepo := account_repository.New(q, nil)
	listingRepo := listing_repository.New(q, nil)
	auctionRepo := auction_repository.New(q)
	bidRepo := auction_repository.NewBid(q)
	bidderNumberRepo := auction_repository.NewBidderNumber(q)

	// usecases
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:      auctionRepo,
		BidRepo:          bidRepo,
		BidderNumberRepo: bidderNumberRepo,
		ListingRepo:      listingRepo,
		AccountRepo:      accountRepo,
		Query:            q,
		Notifier:         notifierService,
		Config:           loadAuctionConfig(),
	})

	auctionSweeper := sweeper.
		NewAuctionSweeper(auctionUC, errCh).
		SetInterval(sweepInterval)
	auctionSweeper.Start(ctx)

	// wait for first error
	err := <-errCh
	ctx.WithField("err", err).Error("sweeper error")
	go func() {
		for range errCh {
		}
	}()
	cancel()
	auctionSweeper.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
