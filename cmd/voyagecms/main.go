package main

import (
	"context"
	"flag"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/voyagehq/voyagecms/internal/config"
	"github.com/voyagehq/voyagecms/internal/infra/cache"
	"github.com/voyagehq/voyagecms/internal/infra/database"
	"github.com/voyagehq/voyagecms/internal/infra/repository"
	"github.com/voyagehq/voyagecms/internal/interface/rest"
	"github.com/voyagehq/voyagecms/internal/present/rest/middleware"
	"github.com/voyagehq/voyagecms/internal/service"
	"github.com/voyagehq/voyagecms/internal/stream"
	"github.com/voyagehq/voyagecms/internal/telemetry"
	"github.com/voyagehq/voyagecms/internal/usecase"
)

func main() {
	configPath := flag.String("c", "/etc/voyagecms/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.Setup(ctx, "voyagecms", conf.Server.TraceEndpoint)
		if err != nil {
			log.Fatalf("failed to setup tracing: %v", err)
		}
		defer shutdown(ctx)
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.MigratePostgres(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)
	lists := usecase.NewListStore(cache.NewListCache(mc))

	signal := service.NewSignalService(rdb)
	auth := service.NewAuthService(conf.Auth, rdb)

	lookupUsecase := usecase.NewLookupUsecase(repository.NewLookupRepository(db), lists, signal)
	tripUsecase := usecase.NewTripUsecase(repository.NewTripRepository(db), lists, signal)
	eventUsecase := usecase.NewEventUsecase(repository.NewEventRepository(db), signal)
	talentUsecase := usecase.NewTalentUsecase(repository.NewTalentRepository(db), lists, signal)
	themeUsecase := usecase.NewPartyThemeUsecase(repository.NewPartyThemeRepository(db), lists, signal)
	faqUsecase := usecase.NewFAQUsecase(repository.NewFAQRepository(db), lists, signal)
	settingUsecase := usecase.NewSettingUsecase(repository.NewSettingRepository(db), lists, signal)
	locationUsecase := usecase.NewLocationUsecase(repository.NewLocationRepository(db), lists, signal)

	hub := stream.NewHub()
	go hub.Run(ctx, signal.Subscribe(ctx))

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("voyagecms"))
	}

	authMiddleware := middleware.NewAuthMiddleware(auth, conf.Auth)
	e.Use(authMiddleware.IdentifyRequester)

	handler := rest.NewHandler(
		lookupUsecase,
		tripUsecase,
		eventUsecase,
		talentUsecase,
		themeUsecase,
		faqUsecase,
		settingUsecase,
		locationUsecase,
		hub,
	)
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
