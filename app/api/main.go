package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/google/uuid"
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/database/redisclient"
	"github.com/x-xyz/storefront/base/env"
	"github.com/x-xyz/storefront/base/goroutine"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/base/snapshot"
	bValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	mmiddleware "github.com/x-xyz/storefront/middleware"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/cache/provider"
	"github.com/x-xyz/storefront/service/cache/provider/compound"
	"github.com/x-xyz/storefront/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/storefront/service/cache/provider/redis"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/chain/contract"
	"github.com/x-xyz/storefront/service/redis"
	collection_usecase "github.com/x-xyz/storefront/stores/collection/usecase"
	hc_delivery "github.com/x-xyz/storefront/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/storefront/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/storefront/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/storefront/stores/listing/delivery/http"
	listing_usecase "github.com/x-xyz/storefront/stores/listing/usecase"
	metadata_delivery "github.com/x-xyz/storefront/stores/metadata/delivery/http"
	metadata_usecase "github.com/x-xyz/storefront/stores/metadata/usecase"
	sale_delivery "github.com/x-xyz/storefront/stores/sale/delivery/http"
	sale_usecase "github.com/x-xyz/storefront/stores/sale/usecase"
	web_resource_repository "github.com/x-xyz/storefront/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/storefront/stores/web_resource/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/storefront/app/api/docs"
)

var configPath = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

//	@title			ApeChain Storefront API
//	@version		1.0
//	@description	Listings, sales and token metadata read from the ApeChain order registry.

// main
func main() {
	pflag.Parse()

	context := ctx.Background()
	if err := env.LoadConfig(*configPath); err != nil {
		context.WithField("err", err).Panic("env.LoadConfig failed")
	}
	if err := log.SetLevel(viper.GetString("log_level")); err != nil {
		context.WithField("err", err).Warn("log.SetLevel failed")
	}
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	middL := mmiddleware.InitMiddleware(metrics.New("http"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())
	e.Server.ReadTimeout = viper.GetDuration("server.timeout")
	e.Server.WriteTimeout = viper.GetDuration("server.timeout")

	// init chain service
	context.Info("init chain")
	chainId := domain.ChainId(viper.GetInt64("chain.id"))
	chainService, err := chain.Dial(context, &chain.ClientCfg{
		ChainId:        chainId,
		RpcUrl:         viper.GetString("chain.rpc"),
		MaxConcurrency: viper.GetInt("chain.max_concurrency"),
		DialRetries:    3,
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.Dial failed")
	}
	registry := contract.NewRegistry(chainService, domain.Address(viper.GetString("chain.registry")))
	nft := contract.NewNft(chainService)

	// init caches, redis is an optional second layer shared between pods
	localCache := primitive.NewPrimitive("storefront", viper.GetInt("cache.local_size_mb"))
	cacheProvider := localCache
	var redisCache redis.Service
	if uri := viper.GetString("redis.url"); uri != "" {
		context.Info("init redis cache")
		redisName := viper.GetString("redis.name")
		pool, err := redisclient.ConnectRedis(context, uri, viper.GetString("redis.password"), redisclient.RedisParam{
			PoolMultiplier: 20,
			Retries:        3,
		})
		if err != nil {
			context.WithField("err", err).Warn("redis unavailable, running with the local cache only")
		} else {
			redisCache = redis.New(redisName, metrics.New(redisName), &redis.Pools{Src: pool})
			cacheProvider = compound.NewCompound([]provider.Provider{localCache, redisProvider.NewRedis(redisCache)})
		}
	}
	fallbackTtl := viper.GetDuration("cache.fallback_ttl")
	nameCache := cache.New(cache.ServiceConfig{
		FallbackTtl: fallbackTtl,
		Pfx:         "name",
		Cache:       cacheProvider,
	})
	metadataCache := cache.New(cache.ServiceConfig{
		FallbackTtl: fallbackTtl,
		Pfx:         "metadata",
		Cache:       cacheProvider,
	})

	// web resource readers
	metadataTimeout := viper.GetDuration("metadata.timeout")
	ipfsGateway := viper.GetString("metadata.ipfs_gateway")
	arGateway := viper.GetString("metadata.ar_gateway")
	var ipfsNodeReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.node_api"); nodeApi != "" {
		ipfsNodeReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), metadataTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:        web_resource_repository.NewHttpReaderRepo(http.Client{}, metadataTimeout, nil),
		IpfsGatewayReader: web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, ipfsGateway, metadataTimeout),
		IpfsNodeReader:    ipfsNodeReader,
		DataUriReader:     web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:       web_resource_repository.NewArReaderRepo(http.Client{}, arGateway, metadataTimeout),
		IpfsGateway:       ipfsGateway,
		ArGateway:         arGateway,
	})

	// usecases
	names := collection_usecase.NewNameResolver(&collection_usecase.NameResolverCfg{
		NftContract: nft,
		Cache:       nameCache,
		Metrics:     metrics.New("name"),
	})
	aggregator := listing_usecase.NewAggregator(&listing_usecase.AggregatorCfg{
		Registry:  registry,
		NameUC:    names,
		Window:    viper.GetUint64("listing.window"),
		BatchSize: viper.GetInt("listing.batch_size"),
		Metrics:   metrics.New("listing"),
	})
	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Aggregator:     aggregator,
		Registry:       registry,
		ChainId:        chainId,
		Ttl:            viper.GetDuration("listing.ttl"),
		RefreshTimeout: viper.GetDuration("listing.refresh_timeout"),
	})
	sale := sale_usecase.NewSaleUseCase(&sale_usecase.SaleUseCaseCfg{
		Reader: sale_usecase.NewSaleReader(&sale_usecase.SaleReaderCfg{
			Chain:       chainService,
			Registry:    registry,
			NameUC:      names,
			BlockWindow: viper.GetUint64("sale.block_window"),
			MaxEvents:   viper.GetInt("sale.max_events"),
			Metrics:     metrics.New("sale"),
		}),
		Ttl:            viper.GetDuration("sale.ttl"),
		RefreshTimeout: viper.GetDuration("sale.refresh_timeout"),
	})
	stats := listing_usecase.NewStatsUseCase(&listing_usecase.StatsUseCaseCfg{
		ListingUC: listing,
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		CtxTimeout:    metadataTimeout,
		NftContract:   nft,
		WebResourceUC: webResource,
		Cache:         metadataCache,
		Metrics:       metrics.New("metadata"),
	})
	hc := hc_usecase.New(hc_repo.New(chainService, redisCache))

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listing, stats)
	sale_delivery.New(e, sale)
	metadata_delivery.New(e, metadata)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// keep snapshots warm so requests rarely pay for a full scan. Each slot is
	// rebuilt before its ttl runs out.
	warmCtx, stopWarm := ctx.WithCancel(context)
	defer stopWarm()
	if ttl := viper.GetDuration("listing.ttl"); ttl > 0 {
		goroutine.Every(warmCtx, "warm.listings", snapshot.WarmInterval(ttl), func(c ctx.Ctx) {
			if _, err := listing.Refresh(c); err != nil {
				c.WithField("err", err).Warn("warm listings failed")
			}
		})
	}
	if ttl := viper.GetDuration("sale.ttl"); ttl > 0 {
		goroutine.Every(warmCtx, "warm.sales", snapshot.WarmInterval(ttl), func(c ctx.Ctx) {
			if _, err := sale.Refresh(c); err != nil {
				c.WithField("err", err).Warn("warm sales failed")
			}
		})
	}

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
	stopWarm()
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
