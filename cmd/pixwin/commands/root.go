package commands

import (
	"fmt"
	"os"

	"github.com/bryanchriswhite/pixwin/internal/config"
	"github.com/bryanchriswhite/pixwin/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "pixwin",
		Short: "pixwin - software frame buffer windows for X11",
		Long: `pixwin opens X11 windows that show a CPU-side pixel buffer with
integer upscaling and polled keyboard and mouse input.

This tool ships a drawing demo, a screen diagnostics command and
configuration management for the demo defaults.`,
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pixwin/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("display", "", "X display to connect to (default is $DISPLAY)")
	rootCmd.PersistentFlags().Bool("pretty", term.IsTerminal(int(os.Stderr.Fd())), "human readable log output (default when stderr is a terminal)")

	// Bind flags to viper
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("display", rootCmd.PersistentFlags().Lookup("display"))
	viper.BindPFlag("pretty", rootCmd.PersistentFlags().Lookup("pretty"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// loadConfig reads the config file, applies flag overrides and sets up
// logging.
func loadConfig() (*config.Manager, *config.Config, error) {
	configMgr, err := config.NewManager(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := configMgr.Get()

	// Flags win over the file but are not written back
	if viper.IsSet("log_level") {
		if level := viper.GetString("log_level"); level != "" {
			cfg.LogLevel = level
		}
	}
	if viper.IsSet("display") {
		if display := viper.GetString("display"); display != "" {
			cfg.Display = display
		}
	}

	logger.Init(cfg.LogLevel, viper.GetBool("pretty"))
	logger.WithComponent("cli").Debug().
		Str("config", configMgr.GetConfigPath()).
		Str("log_level", cfg.LogLevel).
		Msg("Configuration loaded")

	return configMgr, cfg, nil
}
