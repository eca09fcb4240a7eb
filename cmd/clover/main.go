package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/clover/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	logFile := flag.String("file", "", "access log file to analyze (default: first positional argument, or stdin)")
	textOutput := flag.String("text-output", "", "path for the text report artifact")
	jsonOutput := flag.String("json-output", "", "path for the JSON report artifact")
	csvOutput := flag.String("csv-output", "", "optional path for a CSV of the rankings")
	quiet := flag.Bool("quiet", false, "suppress the console summary")
	serve := flag.Bool("serve", false, "keep running and expose the report over HTTP")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clover - Access Log Report Tool\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config file and environment.
	if *logFile != "" {
		cfg.LogFile = *logFile
	} else if flag.NArg() > 0 {
		cfg.LogFile = flag.Arg(0)
	}
	if *textOutput != "" {
		cfg.TextOutput = *textOutput
	}
	if *jsonOutput != "" {
		cfg.JSONOutput = *jsonOutput
	}
	if *csvOutput != "" {
		cfg.CSVOutput = *csvOutput
	}
	if *quiet {
		cfg.Quiet = true
	}
	if *serve {
		cfg.Serve = true
	}

	if err := runAnalysis(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CLOVER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("text-output", defaultTextOutput)
	v.SetDefault("json-output", defaultJSONOutput)
	v.SetDefault("csv-output", "")
	v.SetDefault("quiet", false)
	v.SetDefault("serve", false)
	v.SetDefault("api-port", defaultAPIPort)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultConfigPath := filepath.Join(home, ".config", "clover", "config.yml")
		v.SetConfigFile(defaultConfigPath)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.APIPort))
	}

	// Expand ~ in the log file path
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}
