package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dacapoday/complewise"
	"github.com/dacapoday/complewise/iterator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSumCmd(opts *options) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "sum [item...]",
		Short: "add the sum of the other items to each item, one at a time",
		Long: `Add the sum of the other items to each item, one at a time.
Each update is visible to the items visited after it.`,
		Example: `complewise sum 1 2 3 4 5   # [15 29 56 109 214]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			want := slices.Clone(items)

			accumulate(items, opts.logger)
			if check {
				nestedAccumulate(want)
				if !slices.Equal(items, want) {
					return fmt.Errorf("%w: got %v, nested loop gives %v", errMismatch, items, want)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), list(slices.Collect(iterator.Map(slices.Values(items), strconv.Itoa))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify against a nested index loop")
	return cmd
}

func accumulate(items []int, logger *zap.Logger) {
	it := complewise.Of(items)
	for item, others, ok := it.Next(); ok; item, others, ok = it.Next() {
		sum := iterator.Sum(others.All())
		logger.Debug("step", zap.Int("index", others.Index()), zap.Int("item", *item), zap.Int("sum", sum))
		*item += sum
	}
}

// nestedAccumulate is accumulate written as a plain double loop over indices.
func nestedAccumulate(items []int) {
	for i := range items {
		for j := range items {
			if i != j {
				items[i] += items[j]
			}
		}
	}
}
