package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"romscraper/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage romscraper configuration files.

Configuration is loaded with this precedence:
  - Environment variables (highest priority)
  - .env file
  - Configuration file
  - Default values (lowest priority)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create a configuration file with the default options.

The file is created as '.romscraper.yaml' in the current directory
unless a different path is given with the --config flag.`,
	Run: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the effective configuration merged from all sources.

Credential values are masked.`,
	Run: runConfigShow,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Run:   runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	configPath := configFile
	if configPath == "" {
		configPath = ".romscraper.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(os.Stderr, "Configuration file already exists: %s\n", configPath)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Edit it to add your provider credentials, or use 'romscraper auth login'.")
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Mask secrets before printing.
	masked := *cfg
	masked.Provider.DevPassword = mask(masked.Provider.DevPassword)
	masked.Provider.UserPass = mask(masked.Provider.UserPass)

	data, err := yaml.Marshal(&masked)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}
	fmt.Println("Configuration is valid.")
	if !cfg.HasUserCredentials() {
		fmt.Println("Note: no provider user credentials configured, scraping will be disabled.")
	}
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return "********"
}
