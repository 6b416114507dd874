package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"romscraper/pkg/auth"
	"romscraper/pkg/config"
	"romscraper/pkg/logger"
	"romscraper/pkg/scraper"
	"romscraper/pkg/screenscraper"
	"romscraper/pkg/status"
)

var (
	// Scrape command flags
	platformName string
	accountName  string
	region       string
	language     string
	assetKinds   []string
	jsonOutput   bool
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape <rom-file>",
	Short: "Identify a ROM and print its metadata and artwork URLs",
	Long: `Identify a ROM file by its checksums and print the resolved metadata
and artwork URLs.

The ROM is hashed locally (for a ZIP archive with a single entry, the
entry itself is hashed) and matched against the provider's database.
The full provider response is cached on disk, so repeating a scrape for
the same ROM costs no further identification calls.

Valid provider credentials are required, configured through:
  - Stored credentials (use 'romscraper auth login' to store)
  - Environment variables (ROMSCRAPER_USER_ID and ROMSCRAPER_USER_PASSWORD)
  - Configuration file`,
	Example: `  # Identify a ROM for a named platform
  romscraper scrape "Sonic The Hedgehog (USA).zip" --platform megadrive

  # Prefer Japanese metadata
  romscraper scrape game.sfc --platform snes --region jp --language ja

  # Only box art, as JSON
  romscraper scrape game.zip --platform megadrive --kinds boxfront,boxback --json`,
	Args: cobra.ExactArgs(1),
	Run:  runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVarP(&platformName, "platform", "p", "", "platform name of the ROM (required)")
	scrapeCmd.Flags().StringVarP(&accountName, "account", "a", "", "use specific stored account")
	scrapeCmd.Flags().StringVar(&region, "region", "", "preferred metadata region code (e.g. wor, us, jp)")
	scrapeCmd.Flags().StringVar(&language, "language", "", "preferred metadata language code (e.g. en, ja)")
	scrapeCmd.Flags().StringSliceVar(&assetKinds, "kinds", nil, "asset kinds to list (default: all)")
	scrapeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	scrapeCmd.MarkFlagRequired("platform")
}

// scrapeResult is the printable outcome of one scrape.
type scrapeResult struct {
	Candidate *screenscraper.Candidate     `json:"candidate"`
	Metadata  screenscraper.MetadataRecord `json:"metadata"`
	Assets    []screenscraper.AssetRecord  `json:"assets"`
}

func runScrape(cmd *cobra.Command, args []string) {
	romPath := strings.TrimSpace(args[0])

	cfg := loadConfigOrExit()
	if region != "" {
		cfg.Preferences.Region = region
	}
	if language != "" {
		cfg.Preferences.Language = language
	}
	resolveCredentials(cfg)

	if !cfg.HasUserCredentials() {
		fmt.Fprintln(os.Stderr, "No provider credentials found.")
		fmt.Fprintln(os.Stderr, "\nTo store credentials securely, run:")
		fmt.Fprintln(os.Stderr, "  romscraper auth login")
		fmt.Fprintln(os.Stderr, "\nOr set environment variables:")
		fmt.Fprintln(os.Stderr, "  export ROMSCRAPER_USER_ID=your_user")
		fmt.Fprintln(os.Stderr, "  export ROMSCRAPER_USER_PASSWORD=your_password")
		os.Exit(1)
	}

	engine, err := scraper.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize engine: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := engine.Flush(); err != nil {
			logger.GetLogger().WithError(err).Warn("flushing cache failed")
		}
	}()

	rep := status.New("Scrape completed")
	candidates := engine.Candidates(romPath, platformName, rep)
	if !rep.OK() {
		fmt.Fprintf(os.Stderr, "Scrape failed: %s\n", rep.Message)
		os.Exit(1)
	}
	if len(candidates) == 0 {
		fmt.Println("No match found for this ROM.")
		return
	}

	metadata := engine.Metadata(rep)

	var assets []screenscraper.AssetRecord
	for _, kind := range requestedKinds() {
		assets = append(assets, engine.Assets(kind, rep)...)
	}

	result := scrapeResult{
		Candidate: &candidates[0],
		Metadata:  metadata,
		Assets:    assets,
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}
	printResult(result)
}

// requestedKinds maps the --kinds flag onto asset kinds, defaulting to
// every supported kind.
func requestedKinds() []screenscraper.AssetKind {
	all := []screenscraper.AssetKind{
		screenscraper.AssetFanart,
		screenscraper.AssetBanner,
		screenscraper.AssetClearLogo,
		screenscraper.AssetTitle,
		screenscraper.AssetSnap,
		screenscraper.AssetBoxFront,
		screenscraper.AssetBoxBack,
		screenscraper.AssetBox3D,
		screenscraper.AssetCartridge,
		screenscraper.AssetMap,
	}
	if len(assetKinds) == 0 {
		return all
	}
	valid := make(map[screenscraper.AssetKind]bool, len(all))
	for _, kind := range all {
		valid[kind] = true
	}
	kinds := make([]screenscraper.AssetKind, 0, len(assetKinds))
	for _, name := range assetKinds {
		kind := screenscraper.AssetKind(strings.ToLower(strings.TrimSpace(name)))
		if !valid[kind] {
			fmt.Fprintf(os.Stderr, "Unknown asset kind %q\n", name)
			os.Exit(1)
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func printResult(result scrapeResult) {
	fmt.Printf("Game:       %s (id %s)\n", result.Candidate.DisplayName, result.Candidate.ID)
	fmt.Printf("Platform:   %s (provider id %d)\n", result.Candidate.Platform, result.Candidate.ProviderPlatformID)
	fmt.Printf("Title:      %s\n", result.Metadata.Title)
	fmt.Printf("Year:       %s\n", result.Metadata.Year)
	fmt.Printf("Genre:      %s\n", result.Metadata.Genre)
	fmt.Printf("Developer:  %s\n", result.Metadata.Developer)
	fmt.Printf("Players:    %s\n", result.Metadata.PlayerCount)
	fmt.Printf("Rating:     %s\n", result.Metadata.ContentRating)
	if result.Metadata.Plot != "" {
		fmt.Printf("Plot:       %s\n", result.Metadata.Plot)
	}
	if len(result.Assets) > 0 {
		fmt.Println("\nAssets:")
		for _, asset := range result.Assets {
			fmt.Printf("  [%-9s] %-24s %s\n", asset.Kind, asset.DisplayName, asset.FullURL)
		}
	}
}

// loadConfigOrExit loads configuration and applies the global flags.
func loadConfigOrExit() *config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if cacheDir != "" {
		cfg.Cache.Directory = cacheDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveCredentials fills the provider user account from the
// credential manager when the config does not already carry one.
// Stored credentials beat nothing; config and environment beat stored.
func resolveCredentials(cfg *config.Config) {
	if cfg.HasUserCredentials() && accountName == "" {
		return
	}
	manager, err := auth.NewManager()
	if err != nil {
		logger.GetLogger().WithError(err).Debug("credential manager unavailable")
		return
	}

	var account *auth.Account
	if accountName != "" {
		account, err = manager.Retrieve(accountName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Account %q not found. Use 'romscraper auth list' to see stored accounts.\n", accountName)
			os.Exit(1)
		}
	} else {
		account, err = manager.RetrieveDefault()
		if err != nil {
			return
		}
	}

	cfg.Provider.UserID = account.Username
	cfg.Provider.UserPass = account.Password
	logger.GetLogger().WithField("account", account.Username).Info("using stored credentials")
}
