package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"code-casino/internal/aigen"
	"code-casino/internal/app/casino"
	"code-casino/internal/app/session"
	"code-casino/internal/cache"
	"code-casino/internal/config"
	"code-casino/internal/docstore"
	"code-casino/internal/ledger"
	"code-casino/internal/logging"
	"code-casino/internal/store"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	ctx := context.Background()

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	if err := st.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	ca, err := cache.New(cfg.RedisAddr)
	if err != nil {
		log.Fatal().Err(err).Msg("cache init failed")
	}

	var docs casino.Documents
	if cfg.MongoURI != "" {
		ds, err := docstore.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal().Err(err).Msg("docstore init failed")
		}
		if err := ds.Seed(ctx); err != nil {
			log.Fatal().Err(err).Msg("docstore seed failed")
		}
		docs = ds
	} else {
		log.Warn().Msg("MONGO_URI not set, document challenges disabled")
	}

	var gen casino.Generator
	if g := aigen.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, time.Duration(cfg.AITimeoutSeconds)*time.Second); g != nil {
		gen = g
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, ai challenges disabled")
	}

	led := ledger.New(st)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	casinoSvc := casino.New(st, docs, gen, ca, rng, int64(cfg.AIHourlyLimit))
	sessionSvc := session.NewService(st, ca, led, cfg.WelcomePoints)

	if err := casinoSvc.SeedCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog seed failed")
	}

	r := newRouter(st, ca, casinoSvc, sessionSvc)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
