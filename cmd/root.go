package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/calc/internal/config"
	"github.com/rail44/calc/internal/log"
	"github.com/rail44/calc/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "A four-function calculator for the terminal",
	Long: `calc is a keyboard and mouse driven four-function calculator.

Type digits and operators or click the on-screen keypad. When stdin or stdout
is not a terminal, or with --plain, keys are read from stdin and every change
of the display is printed as a line.`,
	Args: cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		program := ui.NewProgramWithOptions(ui.ProgramOptions{
			Plain:  cfg.Plain,
			Config: cfg,
		})
		if err := program.Run(cmd.Context()); err != nil {
			log.Error("calculator failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is calc.toml in the current or a parent directory, then $HOME/.calc.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().Bool("plain", false, "read keys from stdin and print the display instead of drawing the keypad")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
}

func initViper() {
	viper.SetEnvPrefix("calc")
	viper.AutomaticEnv()
	log.SetSession(uuid.NewString())
}

// loadConfig reads the config file and applies flag and CALC_* environment
// overrides, then configures logging.
func loadConfig() *config.Config {
	wd, err := os.Getwd()
	if err != nil {
		log.Error("failed to get working directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cfg, err := config.Load(afero.NewOsFs(), cfgFile, wd)
	if err != nil {
		log.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if level := viper.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
	if viper.GetBool("plain") {
		cfg.Plain = true
	}

	setupLogging(cfg)
	if cfg.Path != "" {
		log.Debug("using config file", "path", cfg.Path)
	}
	return cfg
}

func setupLogging(cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
