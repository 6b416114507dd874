package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"romscraper/pkg/cache"
	"romscraper/pkg/logger"
	"romscraper/pkg/ratelimit"
	"romscraper/pkg/screenscraper"
	"romscraper/pkg/status"
)

var (
	// Debug command flags
	dumpDir        string
	searchPlatform string
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Inspect provider account state and vocabularies",
	Long: `Diagnostic calls against the provider's account and listing
endpoints. Useful for checking quota standing and for spotting
vocabulary drift (new regions, media types or platforms).

Responses are printed with all credential parameters redacted, and
optionally dumped to a directory with --dump-dir.`,
}

// debugUserCmd represents the debug user command
var debugUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the provider account record, including quota standing",
	Run: func(cmd *cobra.Command, args []string) {
		client := debugClient()
		rep := status.New("User info fetched")
		record := client.UserInfo(rep)
		printDebugRecord(record, rep)
	},
}

// debugListCmd represents the debug list command
var debugListCmd = &cobra.Command{
	Use:   "list <endpoint>",
	Short: "Fetch one of the provider's vocabulary listings",
	Long: `Fetch a provider vocabulary listing.

Endpoints: userLevels, supportTypes, romTypes, genres, regions,
languages, classifications, systems.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := debugClient()
		rep := status.New("Listing fetched")
		record := client.List(screenscraper.ListEndpoint(args[0]), rep)
		printDebugRecord(record, rep)
	},
}

// debugSearchCmd represents the debug search command
var debugSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search games by name",
	Long: `Search games by name on the provider.

Search results never feed the identification cache; this exists to
explore what the provider knows about a title.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := debugClient()
		rep := status.New("Search completed")
		candidates := client.SearchGames(args[0], searchPlatform, rep)
		if !rep.OK() {
			fmt.Fprintf(os.Stderr, "Search failed: %s\n", rep.Message)
			os.Exit(1)
		}
		if len(candidates) == 0 {
			fmt.Println("No games found.")
			return
		}
		for _, candidate := range candidates {
			fmt.Printf("  %-8s %s\n", candidate.ID, candidate.DisplayName)
		}
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugUserCmd)
	debugCmd.AddCommand(debugListCmd)
	debugCmd.AddCommand(debugSearchCmd)

	debugCmd.PersistentFlags().StringVar(&dumpDir, "dump-dir", "", "directory to dump redacted responses into")
	debugSearchCmd.Flags().StringVarP(&searchPlatform, "platform", "p", "", "platform name to scope the search")
}

// debugClient builds a provider client backed by an in-memory store.
// Debug calls never touch the identification cache.
func debugClient() *screenscraper.Client {
	cfg := loadConfigOrExit()
	resolveCredentials(cfg)

	limiter := ratelimit.NewIntervalLimiter(cfg.RateLimit.APIInterval, cfg.RateLimit.AssetInterval)
	client := screenscraper.NewClient(cfg, limiter, cache.NewMemoryStore(), logger.GetLogger())
	if dumpDir != "" {
		client.SetDebugDump(true, dumpDir)
	}
	return client
}

func printDebugRecord(record cache.Record, rep *status.Report) {
	if !rep.OK() {
		fmt.Fprintf(os.Stderr, "Request failed: %s\n", rep.Message)
		os.Exit(1)
	}
	if record == nil {
		fmt.Println("Provider returned no data.")
		return
	}
	data, err := json.MarshalIndent(screenscraper.RedactTree(record), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
