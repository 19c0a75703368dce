package cmd

import (
	"net/http"
	"os"

	"github.com/nfrund/mood2move/internal/account"
	"github.com/nfrund/mood2move/internal/credentials"
	"github.com/nfrund/mood2move/internal/profileapi"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const defaultAPIBaseURL = "http://127.0.0.1:8000"

var (
	// fs is where the credential file lives; tests swap in a memory filesystem.
	fs afero.Fs = afero.NewOsFs()

	apiURL    string
	storePath string
)

var rootCmd = &cobra.Command{
	Use:   "mood2move",
	Short: "Mood2Move client",
	Long: `mood2move talks to the Mood2Move backend from the terminal and can run
the web front end.

Available commands:
  serve    Run the web server
  login    Sign in and store the access and refresh tokens
  profile  Show the signed-in user's profile
  logout   Forget the stored tokens

Use "mood2move [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", envOr("API_BASE_URL", defaultAPIBaseURL), "base URL of the Mood2Move backend")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "credential file (default is the user config directory)")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// credentialStore opens the credential file selected by --store.
func credentialStore() (*credentials.FileStore, error) {
	path := storePath
	if path == "" {
		var err error
		if path, err = credentials.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return credentials.NewFileStore(fs, path), nil
}

// accountService builds the same account core the web server uses.
func accountService() *account.Service {
	client := profileapi.NewClient(http.DefaultClient,
		profileapi.WithBaseURL(apiURL),
		profileapi.WithUserAgent("mood2move-cli/"+version),
	)
	return account.NewService(client, client, nil)
}
