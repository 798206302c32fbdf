package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zerolag/zerolag/pkg/zerolag/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage zerolag configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/zerolag/config.yaml (if set)
  2. ~/.config/zerolag/config.yaml

Environment variables can override config file settings using the ZEROLAG_ prefix:
  ZEROLAG_MODE=gaming
  ZEROLAG_OUTPUT_DIR=~/reports
  ZEROLAG_COLLECTOR_TOP_PROCESSES=15`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		cfg = &config.Config{
			Mode:      config.DefaultMode,
			OutputDir: config.DefaultOutputDir,
		}
		cfg.Collector.TopProcesses = config.DefaultTopProcesses
		cfg.Collector.CPUSampleMillis = config.DefaultCPUSampleMillis
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("mode:                     %s\n", cfg.Mode)
	fmt.Printf("output_dir:               %s\n", cfg.OutputDir)
	fmt.Printf("collector.top_processes:  %d\n", cfg.Collector.TopProcesses)
	fmt.Printf("collector.cpu_sample_ms:  %d\n", cfg.Collector.CPUSampleMillis)
	fmt.Printf("logging.level:            %s\n", cfg.Logging.Level)
	if cfg.Logging.Path != "" {
		fmt.Printf("logging.path:             %s\n", cfg.Logging.Path)
	}

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []string{
		"ZEROLAG_MODE",
		"ZEROLAG_OUTPUT_DIR",
		"ZEROLAG_COLLECTOR_TOP_PROCESSES",
		"ZEROLAG_COLLECTOR_CPU_SAMPLE_MS",
		"ZEROLAG_LOGGING_LEVEL",
	}
	found := false
	for _, name := range envVars {
		if value, ok := os.LookupEnv(name); ok {
			fmt.Printf("%s=%s\n", name, value)
			found = true
		}
	}
	if !found {
		fmt.Println("(none)")
	}
	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	printInfo("Config file: %s", filepath.Join(dir, "config.yaml"))
	return nil
}

// runConfigPath prints the configuration file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, "config.yaml"))
	return nil
}
