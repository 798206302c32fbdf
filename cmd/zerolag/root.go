package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zerolag/zerolag/pkg/zerolag/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "zerolag",
		Short: "Diagnose host performance and get prioritized fixes",
		Long: `ZeroLag scans the host for CPU, memory, disk and startup-item pressure,
computes a 0-100 performance score with a penalty breakdown, and produces
prioritized, actionable recommendations. Analysis only: it never changes
the system and sends nothing anywhere.

By default zerolag launches an interactive TUI. Use --no-interactive to
print a summary and write the report files directly.

Examples:
  zerolag                        # Interactive scan in general mode
  zerolag --mode gaming          # Stricter thresholds for gaming rigs
  zerolag -n -o ~/reports        # Headless scan, reports into ~/reports
  zerolag config show            # Show configuration
  zerolag version                # Version information`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/zerolag/config.yaml)")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "scan mode: general or gaming")
	rootCmd.PersistentFlags().StringP("out", "o", "", "output directory for report files")
	rootCmd.PersistentFlags().BoolP("no-interactive", "n", false, "disable TUI, print a text summary")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("out"))
	_ = viper.BindPFlag("no_interactive", rootCmd.PersistentFlags().Lookup("no-interactive"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "zerolag"))
		}
		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "zerolag"))
		}
	}

	viper.SetEnvPrefix("ZEROLAG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...any) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
