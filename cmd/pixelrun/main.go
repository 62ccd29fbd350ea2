// pixelrun is an endless runner for the terminal: jump over obstacles while
// the world speeds up. Play locally or host it over SSH.
//
// Usage:
//
//	pixelrun play              - Open the menu and play
//	pixelrun serve             - Start SSH server for remote play
//	pixelrun characters        - List the character roster
//	pixelrun list              - List available games
//	pixelrun config dump       - Print the effective tuning as YAML
//	pixelrun config validate   - Check a tuning file
//
// Global flags (also read from PIXELRUN_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Tuning file (default: search ~/.pixelrun/configs, ./configs)
//	--difficulty <name>   - Speed preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
)

// settings are the application settings resolved from flags and environment.
type settings struct {
	FPS        int
	Seed       int64
	ConfigPath string
	Difficulty config.DifficultyPreset
	LogFile    string
	LogLevel   string
}

var (
	env    = viper.New()
	app    settings
	logger = log.New(io.Discard)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelrun",
	Short: "Pixel Runner - an endless runner in your terminal",
	Long: `Pixel Runner is a terminal endless runner. Pick Ziggy or Zoop, jump
over the obstacles and see how far you get before the speed catches you.

Examples:
  pixelrun play
  pixelrun play --character zoop --difficulty hard
  pixelrun serve --ssh :2222
  pixelrun config dump > ~/.pixelrun/configs/runner.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	registerFlags(flags)
	if err := bindSettings(env, flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// registerFlags declares the global flags.
func registerFlags(flags *pflag.FlagSet) {
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("config", "", "Path to tuning YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.String("log-file", "", "Write logs to this file (default: no logs)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
}

// bindSettings makes v read the flags, with PIXELRUN_* environment variables
// taking over when a flag is not given (--log-file is PIXELRUN_LOG_FILE).
func bindSettings(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix("PIXELRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// setup resolves settings and opens the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(env)
	if err != nil {
		return err
	}
	app = s

	l, closer, err := newLogger(s.LogFile, s.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	cobra.OnFinalize(func() {
		if closer != nil {
			closer.Close()
		}
	})
	logger.Debug("starting", "command", cmd.Name(), "fps", s.FPS, "seed", s.Seed)
	return nil
}

// loadSettings reads application settings from a viper instance.
func loadSettings(v *viper.Viper) (settings, error) {
	preset, err := config.ParsePreset(v.GetString("difficulty"))
	if err != nil {
		return settings{}, err
	}
	s := settings{
		FPS:        v.GetInt("fps"),
		Seed:       v.GetInt64("seed"),
		ConfigPath: v.GetString("config"),
		Difficulty: preset,
		LogFile:    v.GetString("log-file"),
		LogLevel:   v.GetString("log-level"),
	}
	if s.FPS <= 0 {
		return settings{}, fmt.Errorf("--fps must be positive, got %d", s.FPS)
	}
	return s, nil
}

// loadTuning loads the tuning file, applies the difficulty preset and hands
// the result to the runner. Invalid tuning stops the command.
func loadTuning(s settings) (config.RunnerConfig, error) {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if s.Difficulty != "" {
		config.ApplyPreset(&cfg, s.Difficulty)
	}
	if err := runner.Configure(cfg); err != nil {
		return config.RunnerConfig{}, err
	}
	logger.Debug("tuning loaded", "path", s.ConfigPath, "difficulty", s.Difficulty)
	return cfg, nil
}
