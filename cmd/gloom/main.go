// Gloom shows the authenticated GitHub user's profile.
//
// Usage:
//
//	gloom serve                 # serve the profile dashboard over HTTP
//	gloom profile               # print the profile and readme once
//	gloom profile --format yaml # print as YAML (text, json, yaml)
//
// Configuration is read from the environment and an optional .env file.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilaca/gloom/internal/api"
	"github.com/vilaca/gloom/internal/api/github"
	"github.com/vilaca/gloom/internal/config"
	"github.com/vilaca/gloom/internal/dashboard"
	"github.com/vilaca/gloom/internal/profile"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess     = 0
	ExitFetchFailed = 1
	ExitUsageError  = 2
	ExitRuntimeErr  = 3
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var rootCmd = &cobra.Command{
	Use:          "gloom",
	Short:        "GitHub profile viewer",
	Long:         "Gloom fetches your GitHub profile and profile readme and shows them in a dashboard or on the terminal.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gloom version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gloom version %s\n", version)
	},
}

func main() {
	os.Exit(run())
}

// run executes the root command and returns an exit code.
func run() int {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)

	return exitCodeFor(rootCmd.Execute())
}

// exitCodeFor maps a command result to a process exit code.
// Errors are usage errors unless the handler already recorded a runtime failure.
func exitCodeFor(err error) int {
	if err != nil && exitCode == ExitSuccess {
		return ExitUsageError
	}
	return exitCode
}

// newProfileFactory wires the GitHub client into view-models.
// This is the composition root for everything that fetches profile data.
func newProfileFactory(cfg *config.Config, logger profile.Logger) (profile.Factory, error) {
	client, err := github.NewClient(api.ClientConfig{
		BaseURL:    cfg.GitHubURL,
		GraphQLURL: cfg.GitHubGraphQLURL,
		Token:      cfg.GitHubToken,
		Timeout:    cfg.HTTPTimeout(),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return func() *profile.ViewModel {
		return profile.NewViewModel(client, client, logger)
	}, nil
}

// buildServer wires up all dependencies and returns the configured HTTP handler.
func buildServer(cfg *config.Config, host dashboard.ScreenHost, logger dashboard.Logger) http.Handler {
	handler := dashboard.NewHandler(dashboard.HandlerConfig{
		Renderer:          dashboard.NewHTMLRenderer(),
		Logger:            logger,
		Screens:           host,
		UIRefreshInterval: cfg.UIRefreshSeconds,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	return mux
}
