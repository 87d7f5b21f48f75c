package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vilaca/gloom/internal/config"
	"github.com/vilaca/gloom/internal/output"
	"github.com/vilaca/gloom/internal/profile"
)

var (
	flagFormat  string
	flagOut     string
	flagTimeout time.Duration
	flagVerbose bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Fetch the profile once and print it",
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json, yaml)")
	profileCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	profileCmd.Flags().DurationVar(&flagTimeout, "timeout", time.Minute, "Give up after this long")
	profileCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log fetch progress to stderr")
}

func runProfile(cmd *cobra.Command, args []string) error {
	if _, err := output.GetWriter(flagFormat); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagTimeout)
	defer cancel()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if !flagVerbose {
		logger.SetOutput(io.Discard)
	}

	factory, err := newProfileFactory(cfg, logger)
	if err != nil {
		return err
	}

	screen := profile.OpenScreen(ctx, factory)
	defer screen.Close()

	vm := screen.ViewModel()
	if err := vm.Wait(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: timed out waiting for profile: %v\n", err)
		exitCode = ExitFetchFailed
		return nil
	}

	state := vm.State()
	if !state.IsLoaded() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: could not load profile (run with -v for details)")
		exitCode = ExitFetchFailed
		return nil
	}

	err = output.WriteReport(&output.Report{
		Profile: state.Profile,
		ReadMe:  vm.ReadMe.Get(),
	}, flagFormat, flagOut)
	if err != nil {
		exitCode = ExitRuntimeErr
	}
	return err
}
