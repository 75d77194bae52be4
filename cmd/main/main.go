package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "net/http/pprof"

	"quotation-service/internal/config"
	"quotation-service/internal/quote/pincode"
	"quotation-service/internal/quote/rates"
	serverhttp "quotation-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	ratesClient := rates.New(cfg.RatesURL, time.Duration(cfg.RatesTTLSecs)*time.Second, logger)

	var std pincode.Standardizer = pincode.Noop{}
	if cfg.PincodeURL != "" {
		std = pincode.NewClient(cfg.PincodeURL, logger)
	}

	r := serverhttp.NewRouter(cfg, logger, ratesClient, std)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
