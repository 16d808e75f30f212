// Command hostd is the host bridge daemon: it exposes process execution,
// filesystem operations, file tagging, and text extraction over a local
// HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avfs/avfs/vfs/osfs"

	"github.com/hostkit-io/hostkit/api"
	"github.com/hostkit-io/hostkit/auth"
	"github.com/hostkit-io/hostkit/component"
	"github.com/hostkit-io/hostkit/config"
	"github.com/hostkit-io/hostkit/fileops"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/observability"
	"github.com/hostkit-io/hostkit/process"
	"github.com/hostkit-io/hostkit/server"
	"github.com/hostkit-io/hostkit/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to config file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Short())
		return
	}

	if err := run(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	var loaderOpts []config.LoaderOption
	if configFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(configFile))
	}
	cfg, err := config.Load(loaderOpts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, config.ServiceName)
	logger.SetGlobalLogger(log)

	// The bridge is useless on a host where subprocess execution does not
	// work, so fail fast before binding the port.
	if err := process.Check(); err != nil {
		return fmt.Errorf("host check: %w", err)
	}

	log.Info("Starting hostd", map[string]interface{}{
		"version": version.Short(),
		"auth":    cfg.Auth.Enabled,
	})

	var authSvc *auth.Service
	if cfg.Auth.Enabled {
		authSvc, err = auth.NewService(cfg.Auth)
		if err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	var fileOpts []fileops.Option
	fileOpts = append(fileOpts, fileops.WithLogger(log))
	if cfg.Files.TrashDir != "" {
		fileOpts = append(fileOpts, fileops.WithTrashDir(cfg.Files.TrashDir))
	}
	files := fileops.New(osfs.New(), fileOpts...)

	registry := component.NewRegistry()
	if err := registry.Register(observability.NewComponent(config.ServiceName, cfg.Observability)); err != nil {
		return err
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(config.ServiceName, registry.HealthAll)

	handlers := &api.Handlers{
		Files:  files,
		Auth:   authSvc,
		Region: cfg.Text.Region,
		Log:    log,
	}
	if cfg.Observability.Enabled {
		metrics, err := observability.NewMetrics()
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		handlers.Metrics = metrics
	}
	handlers.Register(srv.GinEngine(), cfg.Auth)

	if err := registry.Register(server.NewComponent(srv)); err != nil {
		return err
	}

	ctx := context.Background()
	if err := registry.StartAll(ctx); err != nil {
		_ = registry.StopAll(ctx)
		return err
	}
	log.Info("hostd ready", map[string]interface{}{"addr": srv.Addr()})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info("Shutting down", map[string]interface{}{"signal": sig.String()})

	return registry.StopAll(ctx)
}
