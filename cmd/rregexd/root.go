package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rregexd/internal/config"
)

// envOr returns the RREGEXD_<name> environment variable or def.
func envOr(name, def string) string {
	if v := os.Getenv("RREGEXD_" + name); v != "" {
		return v
	}
	return def
}

func envIntOr(name string, def int) int {
	if n, err := strconv.Atoi(envOr(name, "")); err == nil {
		return n
	}
	return def
}

// buildRootCmd constructs the command tree. Running the root alone serves.
func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rregexd",
		Short:         "Serve a regex playground backend over versioned wasm engine builds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", envOr("CONFIG", ""), "Config file (.yaml, .yml, .json, .toml)")
	pf.String("log-level", envOr("LOG_LEVEL", ""), "Log level: debug|info|warn|error")
	pf.String("log-format", envOr("LOG_FORMAT", ""), "Log format: console|json")
	pf.String("modules-dir", envOr("MODULES_DIR", ""), "Directory to scan for rregex-<version>.wasm artifacts")
	pf.StringSlice("versions", splitCSV(envOr("VERSIONS", "")), "Glob allowlist of version keys, e.g. 1.*")

	f := root.Flags()
	f.String("addr", envOr("ADDR", ""), "HTTP listen address, e.g. :8080")
	f.String("default-version", envOr("DEFAULT_VERSION", ""), "Version used when a request omits one (default newest)")
	f.String("cache-dir", envOr("CACHE_DIR", ""), "Directory for the wasm compilation cache (empty disables)")
	f.Bool("no-preload", false, "Do not load the default version at startup")
	f.String("http-log-level", envOr("HTTP_LOG_LEVEL", ""), "Per-request log level: off|error|info|debug")
	f.Int64("max-body-bytes", int64(envIntOr("MAX_BODY_BYTES", 0)), "Maximum JSON request body size (0 = 1 MiB)")
	f.Int("exec-timeout", envIntOr("EXEC_TIMEOUT", 0), "Seconds a /exec request may take, including loading (0 disables)")
	f.Int("max-queue-depth", envIntOr("MAX_QUEUE_DEPTH", 0), "Queued /exec calls per version (0 = 32)")
	f.Int("max-wait", envIntOr("MAX_WAIT", 0), "Seconds a queued /exec call may wait (0 = 30)")
	f.Bool("cors", false, "Enable CORS")
	f.StringSlice("cors-origins", nil, "Allowed CORS origins")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, log)
	}

	versionsCmd := &cobra.Command{
		Use:     "versions",
		Short:   "List the engine versions found in the modules directory",
		Example: "  rregexd versions --modules-dir ./modules --versions '1.*'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range reg.List() {
				mark := " "
				if v.Key == reg.Default() {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-12s %10d  %s\n", mark, v.Key, v.SizeBytes, v.Path)
			}
			return nil
		},
	}
	root.AddCommand(versionsCmd)

	return root
}

// resolveConfig merges the config file with flags. A flag wins over the file
// when it was set explicitly; otherwise it only fills fields the file left
// empty (its default carries the RREGEXD_* environment value).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	fs := cmd.Flags()
	mergeString(cmd, "addr", &cfg.Addr)
	mergeString(cmd, "modules-dir", &cfg.ModulesDir)
	mergeString(cmd, "default-version", &cfg.DefaultVersion)
	mergeString(cmd, "cache-dir", &cfg.CacheDir)
	mergeString(cmd, "log-level", &cfg.LogLevel)
	mergeString(cmd, "log-format", &cfg.LogFormat)
	mergeString(cmd, "http-log-level", &cfg.HTTPLogLevel)
	if f := fs.Lookup("versions"); f != nil && (f.Changed || len(cfg.Versions) == 0) {
		cfg.Versions, _ = fs.GetStringSlice("versions")
	}
	if f := fs.Lookup("max-body-bytes"); f != nil && (f.Changed || cfg.MaxBodyBytes == 0) {
		cfg.MaxBodyBytes, _ = fs.GetInt64("max-body-bytes")
	}
	mergeInt(cmd, "exec-timeout", &cfg.ExecTimeoutSeconds)
	mergeInt(cmd, "max-queue-depth", &cfg.MaxQueueDepth)
	mergeInt(cmd, "max-wait", &cfg.MaxWaitSeconds)
	if f := fs.Lookup("no-preload"); f != nil && f.Changed {
		cfg.NoPreload, _ = fs.GetBool("no-preload")
	}
	if f := fs.Lookup("cors"); f != nil && f.Changed {
		cfg.CORS.Enabled, _ = fs.GetBool("cors")
	}
	if f := fs.Lookup("cors-origins"); f != nil && f.Changed {
		cfg.CORS.Origins, _ = fs.GetStringSlice("cors-origins")
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func mergeString(cmd *cobra.Command, name string, dst *string) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return
	}
	if f.Changed || *dst == "" {
		*dst = f.Value.String()
	}
}

func mergeInt(cmd *cobra.Command, name string, dst *int) {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return
	}
	if f.Changed || *dst == 0 {
		*dst, _ = cmd.Flags().GetInt(name)
	}
}

// splitCSV splits a comma-separated list, dropping blanks.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
