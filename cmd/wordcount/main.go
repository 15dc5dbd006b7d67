package main

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/globex/wordcount/internal/app/server"
	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/config"
	"github.com/globex/wordcount/internal/logger"
	"github.com/globex/wordcount/internal/repository"
	"github.com/globex/wordcount/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

// store is what the services need from a storage backend; the Postgres
// repository and the in-memory store both satisfy it.
type store interface {
	service.Storage
	service.UserStorage
}

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s store

	if options.DatabaseDSN != "" {
		zapLogger.Info("using db", zap.String("dsn", options.DatabaseDSN))
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		defer db.Close()
		s = repository.CreateStore(db, zapLogger)
		zapLogger.Info("Database connected and tables ready.")
	} else {
		zapLogger.Info("using in memory storage")

		s, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}

	fetcher := service.NewHTTPFetcher(&http.Client{Timeout: options.FetchTimeout})
	urlService := service.NewURL(s, fetcher, zapLogger)
	auth := service.NewAuth(s, options.JWTSecret)

	r := server.Init(zapLogger, urlService, auth, options.CORSOrigin)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:  autocert.DirCache("cache-dir"),
			Prompt: autocert.AcceptTOS,
		}
		srv := &http.Server{
			Addr:              ":443",
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			TLSConfig:         manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("addr", options.Addr))
		err = http.ListenAndServe(options.Addr, r)

		if err != nil {
			panic(err)
		}
	}
}
