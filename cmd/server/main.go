package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gemeentenet/internal/geloofsonderrig"
	"gemeentenet/internal/gemeente"
	"gemeentenet/internal/kennisgewing"
	lidhandler "gemeentenet/internal/lidmaat/handler"
	lidservice "gemeentenet/internal/lidmaat/service"
	lidstore "gemeentenet/internal/lidmaat/store"
	"gemeentenet/internal/oudit"
	"gemeentenet/internal/platform/config"
	"gemeentenet/internal/platform/httpserver"
	"gemeentenet/internal/platform/logger"
	"gemeentenet/internal/platform/metrics"
	"gemeentenet/internal/platform/postgres"
	"gemeentenet/internal/platform/redis"
	"gemeentenet/internal/platform/token"
	"gemeentenet/internal/sakrament"
	"gemeentenet/internal/statistiek"
	"gemeentenet/internal/toewysing"
	httptransport "gemeentenet/internal/transport/http"
	"gemeentenet/internal/verhouding"
	"gemeentenet/internal/wyk"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var (
		gemeenteStore   gemeente.Store
		lidmaatStore    lidstore.Store
		wykStore        wyk.Store
		verhoudingStore verhouding.Store
		ouditStore      oudit.Store
		statsStore      statistiek.Store
		kenStore        kennisgewing.Store
		sakStore        sakrament.Store
		geloofStore     geloofsonderrig.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		gemeenteStore = gemeente.NewPostgres(db)
		lidmaatStore = lidstore.NewPostgres(db)
		wykStore = wyk.NewPostgres(db)
		verhoudingStore = verhouding.NewPostgres(db)
		ouditStore = oudit.NewPostgres(db)
		statsStore = statistiek.NewPostgres(db)
		kenStore = kennisgewing.NewPostgres(db)
		sakStore = sakrament.NewPostgres(db)
		geloofStore = geloofsonderrig.NewPostgres(db)
	} else {
		log.Warn("no database configured, using in-memory stores")
		gemeenteStore = gemeente.NewInMemoryStore()
		lidmaatStore = lidstore.NewInMemoryStore()
		wykStore = wyk.NewInMemoryStore()
		verhoudingStore = verhouding.NewInMemoryStore()
		ouditStore = oudit.NewInMemoryStore()
		statsStore = statistiek.NewInMemoryStore()
		kenStore = kennisgewing.NewInMemoryStore()
		sakStore = sakrament.NewInMemoryStore()
		geloofStore = geloofsonderrig.NewInMemoryStore()
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	oorsigCache := gemeente.NewCache(redisClient, log)

	recorderOpts := []oudit.RecorderOption{oudit.WithMetrics(m)}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := oudit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := publisher.Close(closeCtx); err != nil {
				log.Error("kafka close failed", "error", err)
			}
		}()
		recorderOpts = append(recorderOpts, oudit.WithPublisher(publisher))
	}
	recorder := oudit.NewRecorder(ouditStore, log, recorderOpts...)

	tokens := token.NewManager(cfg.JWTSigningKey, 12*time.Hour)
	if cfg.AdminToken == "" {
		log.Warn("no admin token configured, token endpoint will refuse all requests")
	}
	if cfg.PushGatewayURL == "" {
		log.Warn("no push gateway configured, kennisgewings will fail to send")
	}

	wykSvc := wyk.NewService(wykStore, lidmaatStore, wyk.WithLogger(log))
	lidSvc := lidservice.NewService(lidmaatStore, wykStore, verhoudingStore, recorder, statsStore,
		lidservice.WithLogger(log), lidservice.WithMetrics(m))
	toewysingSvc := toewysing.NewService(lidmaatStore, wykStore, recorder,
		toewysing.WithLogger(log), toewysing.WithMetrics(m), toewysing.WithOorsigCache(oorsigCache))
	verhoudingSvc := verhouding.NewService(verhoudingStore, lidmaatStore, recorder, verhouding.WithLogger(log))
	gemeenteSvc := gemeente.NewService(gemeenteStore, lidmaatStore, wykStore,
		gemeente.WithLogger(log), gemeente.WithCache(oorsigCache))
	kenSvc := kennisgewing.NewService(kenStore, kennisgewing.NewHTTPGateway(cfg.PushGatewayURL),
		kennisgewing.WithLogger(log), kennisgewing.WithMetrics(m))
	sakSvc := sakrament.NewService(sakStore, sakrament.WithLogger(log))
	geloofSvc := geloofsonderrig.NewService(geloofStore, lidmaatStore, geloofsonderrig.WithLogger(log))

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:     log,
		Metrics:    m,
		Tokens:     tokens,
		AdminToken: cfg.AdminToken,
		Auth:       httptransport.NewAuthHandler(tokens, log),
		Gemeentes:  gemeente.NewHandler(gemeenteSvc, log),
		Scoped: []httptransport.Registrar{
			lidhandler.NewHandler(lidSvc, recorder, verhoudingSvc, toewysingSvc, log),
			toewysing.NewHandler(toewysingSvc, log),
			wyk.NewHandler(wykSvc, log),
			verhouding.NewHandler(verhoudingSvc, log),
			kennisgewing.NewHandler(kenSvc, log),
			sakrament.NewHandler(sakSvc, log),
			geloofsonderrig.NewHandler(geloofSvc, log),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gemeentenet", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
