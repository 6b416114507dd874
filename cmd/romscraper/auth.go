package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"romscraper/pkg/auth"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage provider credentials",
	Long: `Manage stored provider credentials securely.

Credentials are stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (read-only fallback)

Never share your credentials or config files!`,
}

// loginCmd represents the auth login command
var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Store provider credentials securely",
	Long: `Store your provider account credentials in the system keychain or an
encrypted file.

You will be prompted for:
  - Provider username (if not provided)
  - Provider password (hidden input)

These are the same credentials you use to log into the provider's
website.`,
	Example: `  # Interactive login
  romscraper auth login

  # Login with username
  romscraper auth login myusername`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLogin,
}

// logoutCmd represents the auth logout command
var logoutCmd = &cobra.Command{
	Use:   "logout <username>",
	Short: "Remove stored credentials",
	Args:  cobra.ExactArgs(1),
	Run:   runLogout,
}

// authListCmd represents the auth list command
var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored accounts",
	Long:  `List all stored provider accounts. Passwords are never printed.`,
	Run:   runAuthList,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(authListCmd)
}

func runLogin(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize credential manager: %v\n", err)
		os.Exit(1)
	}

	var username string
	if len(args) > 0 {
		username = args[0]
	}

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Print("Provider username: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read username: %v\n", err)
			os.Exit(1)
		}
		username = strings.TrimSpace(input)
	}
	if username == "" {
		fmt.Fprintln(os.Stderr, "Username cannot be empty")
		os.Exit(1)
	}

	fmt.Print("Provider password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read password: %v\n", err)
		os.Exit(1)
	}
	password := strings.TrimSpace(string(passwordBytes))
	if password == "" {
		fmt.Fprintln(os.Stderr, "Password cannot be empty")
		os.Exit(1)
	}

	account := &auth.Account{
		Username:     username,
		Password:     password,
		LastModified: time.Now(),
	}
	if err := manager.Store(account); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to store credentials: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Credentials for %q stored.\n", username)
}

func runLogout(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize credential manager: %v\n", err)
		os.Exit(1)
	}
	username := args[0]
	if err := manager.Delete(username); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to remove credentials for %q: %v\n", username, err)
		os.Exit(1)
	}
	fmt.Printf("Credentials for %q removed.\n", username)
}

func runAuthList(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize credential manager: %v\n", err)
		os.Exit(1)
	}
	accounts, err := manager.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to list accounts: %v\n", err)
		os.Exit(1)
	}
	if len(accounts) == 0 {
		fmt.Println("No stored accounts. Use 'romscraper auth login' to add one.")
		return
	}
	for _, account := range accounts {
		modified := ""
		if !account.LastModified.IsZero() {
			modified = account.LastModified.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-24s %s\n", account.Username, modified)
	}
}
