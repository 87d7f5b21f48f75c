package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/vilaca/gloom/internal/config"
	"github.com/vilaca/gloom/internal/profile"
)

// fakeGitHub serves the viewer query and the profile readme.
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"viewer":{"login":"octocat","name":null,"avatarUrl":"https://example.com/a.png",
			"bio":null,"company":null,"websiteUrl":null,"twitterUsername":null,
			"repositories":{"totalCount":8},"organizations":{"totalCount":2},"starredRepositories":{"totalCount":42},
			"followers":{"totalCount":1},"following":{"totalCount":0}}}}`)
	})
	mux.HandleFunc("/repos/octocat/octocat/readme", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"type":"file","encoding":"base64","content":%q}`, base64.StdEncoding.EncodeToString([]byte("hello")))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// TestBuildServer_EndToEnd tests the wired server against a fake GitHub API.
func TestBuildServer_EndToEnd(t *testing.T) {
	// Arrange
	gh := fakeGitHub(t)
	cfg := &config.Config{
		Port:               8080,
		GitHubURL:          gh.URL,
		GitHubGraphQLURL:   gh.URL + "/graphql",
		GitHubToken:        "test-token",
		HTTPTimeoutSeconds: 5,
		UIRefreshSeconds:   1,
	}
	logger := log.New(io.Discard, "", 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	factory, err := newProfileFactory(cfg, logger)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	host := profile.NewHost(ctx, factory)
	defer host.Close()

	waitCtx, waitCancel := context.WithTimeout(ctx, 5*time.Second)
	defer waitCancel()
	if err := host.Current().Wait(waitCtx); err != nil {
		t.Fatalf("fetch did not finish: %v", err)
	}

	server := httptest.NewServer(buildServer(cfg, host, logger))
	defer server.Close()

	// Act
	resp, err := http.Get(server.URL + "/api/profile")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	// Assert
	var body struct {
		State   string `json:"state"`
		ReadMe  string `json:"readme"`
		Profile struct {
			Login string `json:"login"`
		} `json:"profile"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.State != "loaded" || body.Profile.Login != "octocat" {
		t.Errorf("expected loaded octocat, got %+v", body)
	}
	if body.ReadMe != "hello" {
		t.Errorf("expected readme 'hello', got %q", body.ReadMe)
	}
}

// TestExitCodeFor tests mapping command results to exit codes.
func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		recorded int
		err      error
		expected int
	}{
		{"success", ExitSuccess, nil, ExitSuccess},
		{"fetch failed", ExitFetchFailed, nil, ExitFetchFailed},
		{"usage error", ExitSuccess, errors.New("unknown flag"), ExitUsageError},
		{"runtime error", ExitRuntimeErr, errors.New("server failed"), ExitRuntimeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode = tt.recorded
			t.Cleanup(func() { exitCode = ExitSuccess })

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

// TestRunServe_PortInUse tests that a listen failure is a runtime error, not a usage error.
func TestRunServe_PortInUse(t *testing.T) {
	// Arrange
	gh := fakeGitHub(t)
	busy, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	defer busy.Close()

	t.Setenv("PORT", strconv.Itoa(busy.Addr().(*net.TCPAddr).Port))
	t.Setenv("GITHUB_URL", gh.URL)
	t.Setenv("GITHUB_GRAPHQL_URL", gh.URL+"/graphql")
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Cleanup(func() { exitCode = ExitSuccess })

	// Act
	err = runServe(serveCmd, nil)

	// Assert
	if err == nil {
		t.Fatal("expected listen error")
	}
	if got := exitCodeFor(err); got != ExitRuntimeErr {
		t.Errorf("expected exit code %d, got %d", ExitRuntimeErr, got)
	}
}
