package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errMismatch = errors.New("mismatch")

type options struct {
	verbose bool
	plain   bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:          "complewise",
		Short:        "complement-wise traversal demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace each step")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "never draw tables")

	cmd.AddCommand(newPrintCmd(opts), newSumCmd(opts), newGravityCmd(opts))
	return cmd
}

func parseItems(args []string) ([]int, error) {
	items := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid item %q: %w", arg, err)
		}
		items = append(items, v)
	}
	return items, nil
}
