package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	cacheDir   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "romscraper",
	Short: "Identify ROMs by checksum and fetch metadata and artwork",
	Long: `romscraper identifies game ROMs against the ScreenScraper online
database using their checksums, then resolves localized metadata and
artwork URLs from the cached response.

Features:
  - Checksum identification (CRC32, MD5, SHA1) with ZIP awareness
  - Region and language fallback chains for metadata fields
  - On-disk response cache, one network call per distinct ROM
  - Request pacing and quota-aware retry
  - Secure credential storage using system keychain

Provider credentials can come from 'romscraper auth login', environment
variables, or the configuration file.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .romscraper.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "cache directory for provider responses")

	rootCmd.SetVersionTemplate(`romscraper {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
