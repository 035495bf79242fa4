package main

import (
	"slices"
	"strconv"

	"github.com/dacapoday/complewise"
	"github.com/dacapoday/complewise/iterator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPrintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "print [item...]",
		Short:   "print each item with its complement",
		Example: `complewise print 1 2 3 4 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			rows := complementRows(items, opts.logger)
			render(cmd.OutOrStdout(), opts.plain, []string{"item", "complement"}, rows)
			return nil
		},
	}
}

func complementRows(items []int, logger *zap.Logger) [][]string {
	rows := make([][]string, 0, len(items))
	complewise.ForEach(items, func(item *int, others complewise.Complement[int]) {
		logger.Debug("step", zap.Int("index", others.Index()), zap.Int("complement", others.Len()))
		rest := slices.Collect(iterator.Map(others.All(), strconv.Itoa))
		rows = append(rows, []string{strconv.Itoa(*item), list(rest)})
	})
	return rows
}
