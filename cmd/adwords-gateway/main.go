package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/adwords/internal/pkg/application/gateway"
	"github.com/diwise/adwords/internal/pkg/infrastructure/router"
	"github.com/diwise/adwords/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "adwords-gateway"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags, err := parseExternalConfig(ctx, defaultFlags(), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	cfgFile, err := os.Open(flags[configPath])
	if err != nil {
		log.Error("failed to open configuration file", "path", flags[configPath], "err", err.Error())
		os.Exit(1)
	}

	cfg, err := gateway.LoadConfiguration(cfgFile)
	cfgFile.Close()
	if err != nil {
		log.Error("failed to load configuration", "path", flags[configPath], "err", err.Error())
		os.Exit(1)
	}

	app := gateway.New(ctx, cfg)

	r := router.New(serviceName)
	api.RegisterHandlers(ctx, r, app)

	srv := &http.Server{
		Addr:              net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down http server", "err", err.Error())
		}
	}()

	log.Info("starting to listen for connections", "addr", srv.Addr, "accounts", len(cfg.Accounts))

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}

	log.Info("shut down")
}
