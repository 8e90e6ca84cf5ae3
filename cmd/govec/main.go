package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "govec",
		Short: "Inspect, round and format 3D vectors",
		Long: `govec works with fixed-size 3D vectors of floating point components.
It prints vectors in their display form, rounds them to a grid of a given
precision, applies float format specifiers to each component, and runs Lua
scripts that build vectors with Vec(x, y, z).`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newShowCmd(cfg))
	rootCmd.AddCommand(newRunCmd(cfg))
	return rootCmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = newRootCmd(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
