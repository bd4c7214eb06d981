// Package main - Entry point for the contractor-quote API server
package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"contractor-quote/api"
	"contractor-quote/core/quote"
	"contractor-quote/db"
	"contractor-quote/internal/config"
	"contractor-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgPath := flag.String("config", "", "config file path")
	noStore := flag.Bool("no-store", false, "run without a database")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("load config", zap.Error(err))
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	var store *db.Store
	if !*noStore {
		conn, err := db.Open(cfg.Storage.DatabasePath)
		if err != nil {
			logging.Fatal("open database", zap.Error(err))
		}
		store = db.NewStore(conn)
		defer store.Close()
	}

	pricer := quote.NewStandardPricer().WithDefaultProfit(cfg.Pricing.DefaultProfitPercent)
	server := api.NewServer(version, pricer, store)

	logging.Info("starting contractor-quote server",
		zap.String("addr", *addr),
		zap.String("version", version),
		zap.Bool("store", store != nil),
	)

	if err := http.ListenAndServe(*addr, server); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}
