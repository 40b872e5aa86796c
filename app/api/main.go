package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"github.com/cryptobazaar/goapi/base/ctx"
	"github.com/cryptobazaar/goapi/base/database/mongoclient"
	"github.com/cryptobazaar/goapi/base/database/redisclient"
	"github.com/cryptobazaar/goapi/base/log"
	"github.com/cryptobazaar/goapi/base/metrics"
	bValidator "github.com/cryptobazaar/goapi/base/validator"
	"github.com/cryptobazaar/goapi/domain/upload"
	mmiddleware "github.com/cryptobazaar/goapi/middleware"
	"github.com/cryptobazaar/goapi/service/query"
	"github.com/cryptobazaar/goapi/service/redis"
	auth_delivery "github.com/cryptobazaar/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/cryptobazaar/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/cryptobazaar/goapi/stores/auth/usecase"
	hc_delivery "github.com/cryptobazaar/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/cryptobazaar/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/cryptobazaar/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/cryptobazaar/goapi/stores/listing/delivery/http"
	listing_repository "github.com/cryptobazaar/goapi/stores/listing/repository"
	listing_usecase "github.com/cryptobazaar/goapi/stores/listing/usecase"
	upload_delivery "github.com/cryptobazaar/goapi/stores/upload/delivery/http"
	upload_repository "github.com/cryptobazaar/goapi/stores/upload/repository"
	upload_usecase "github.com/cryptobazaar/goapi/stores/upload/usecase"
)

func init() {
	configPath := pflag.String("config", "configs/config.yaml", "path of config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
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

	// repos
	listingRepo := listing_repository.NewListing(q)
	hcRepo := hc_repo.New(mongoClient, redisCache)

	var uploadWriter upload.WriterRepo
	if bucket := viper.GetString("cloudStorage.bucket"); len(bucket) > 0 {
		opts := []option.ClientOption{}
		if creds := viper.GetString("cloudStorage.credentials"); len(creds) > 0 {
			opts = append(opts, option.WithCredentialsFile(creds))
		}
		storageClient, err := storage.NewClient(context, opts...)
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		uploadWriter, err = upload_repository.NewCloudStorageWriterRepo(&upload_repository.CloudStorageWriterRepoCfg{
			Timeout:    viper.GetDuration("cloudStorage.timeout"),
			Client:     storageClient,
			BucketName: bucket,
			Url:        viper.GetString("cloudStorage.url"),
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
	} else {
		uploadWriter = upload_repository.NewDataUriWriterRepo()
	}

	// usecases
	authUseCase := auth_usecase.New(viper.GetString("jwt.secret"))
	listingUseCase := listing_usecase.NewListing(listingRepo)
	uploadUseCase := upload_usecase.New(uploadWriter)
	hcUseCase := hc_usecase.New(hcRepo)

	authMiddleware := auth_middleware.New(authUseCase)

	// deliveries
	auth_delivery.New(e, authUseCase)
	listing_delivery.New(e, authMiddleware, listingUseCase)
	upload_delivery.New(e, authMiddleware, uploadUseCase)
	hc_delivery.New(e, hcUseCase)

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
