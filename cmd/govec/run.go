package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/pkg/script"
	"github.com/philipparndt/govec/pkg/watcher"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg config.Config) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run <script.lua>",
		Short: "Run a Lua script with Vec available",
		Long: `Run a Lua script. The global Vec(x, y, z) builds vectors with the
fields x, y, z and the methods as_tuple(), round(p) and format(spec).
With --watch the script is re-run whenever it changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "", 0)
			if cfg.Verbose {
				logger = log.New(cmd.ErrOrStderr(), "govec: ", 0)
			}

			runner := script.Runner{Out: cmd.OutOrStdout(), Logger: logger}
			if !watch {
				return runner.RunFile(cmd.Context(), args[0])
			}
			return watchScript(cmd.Context(), runner, args[0], cfg.Debounce, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the script when it changes")
	return cmd
}

// watchScript runs path once and then on every change until ctx is done.
// Script errors are reported to errOut and do not stop watching.
func watchScript(ctx context.Context, runner script.Runner, path string, debounce time.Duration, errOut io.Writer) error {
	fw, err := watcher.NewFileWatcher(debounce, runner.Logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Watch(path); err != nil {
		return err
	}

	rerun := func(string) {
		if err := runner.RunFile(ctx, path); err != nil && ctx.Err() == nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
	rerun(path)

	if runner.Logger != nil {
		runner.Logger.Printf("watching %s", path)
	}
	err = fw.Run(ctx, rerun)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
