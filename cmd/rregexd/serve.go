package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"rregexd/internal/common/fsutil"
	"rregexd/internal/config"
	"rregexd/internal/engine"
	"rregexd/internal/httpapi"
	"rregexd/internal/manager"
	"rregexd/internal/registry"
)

const shutdownTimeout = 5 * time.Second

// loadRegistry scans the modules directory and applies the version allowlist.
func loadRegistry(cfg config.Config) (*registry.Registry, error) {
	dir, err := fsutil.ExpandHome(cfg.ModulesDir)
	if err != nil {
		return nil, err
	}
	if !fsutil.PathExists(dir) {
		return nil, fmt.Errorf("modules dir %s does not exist", dir)
	}
	vs, err := registry.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load modules: %w", err)
	}
	vs, err = registry.Filter(vs, cfg.Versions)
	if err != nil {
		return nil, err
	}
	return registry.New(vs, cfg.DefaultVersion), nil
}

// serve runs the HTTP server until ctx is canceled, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		log.Warn().Str("modules_dir", cfg.ModulesDir).Msg("no engine versions found")
	}
	if cfg.DefaultVersion != "" && !reg.Has(cfg.DefaultVersion) {
		log.Warn().Str("default_version", cfg.DefaultVersion).Str("using", reg.Default()).Msg("default version not available")
	}

	var opts []engine.Option
	if cfg.CacheDir != "" {
		dir, err := fsutil.EnsureDir(cfg.CacheDir)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithCacheDir(dir))
	}
	eng, err := engine.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	defer eng.Close(context.Background())

	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Registry:      reg,
		Open:          manager.EngineOpener(eng),
		Logger:        &log,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       time.Duration(cfg.MaxWaitSeconds) * time.Second,
	})
	if def := reg.Default(); def != "" && !cfg.NoPreload {
		if _, err := mgr.Switch(def); err != nil {
			log.Warn().Err(err).Msg("preload failed")
		}
	}

	httpapi.SetLogger(log)
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetExecTimeout(time.Duration(cfg.ExecTimeoutSeconds) * time.Second)
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.Origins, cfg.CORS.Methods, cfg.CORS.Headers)
	if cfg.HTTPLogLevel != "" {
		httpapi.SetDefaultLogLevel(cfg.HTTPLogLevel)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("modules_dir", cfg.ModulesDir).Int("versions", reg.Len()).Msg("rregexd listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("rregexd stopped")
	return nil
}
