package main

import (
	"fmt"
	"strconv"

	"github.com/dacapoday/complewise"
	"github.com/dacapoday/complewise/iterator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type vec2 struct {
	x, y float64
}

type body struct {
	position vec2
	mass     float64
	force    vec2
}

func newGravityCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "gravity",
		Short:   "compute the force on each body due to the other bodies",
		Example: `complewise gravity -n 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("invalid body count %d", count)
			}
			bodies := diagonal(count)
			applyGravity(bodies, opts.logger)

			rows := make([][]string, 0, len(bodies))
			for i, b := range bodies {
				rows = append(rows, []string{
					strconv.Itoa(i),
					fmt.Sprintf("(%g,%g)", b.position.x, b.position.y),
					strconv.FormatFloat(b.mass, 'g', -1, 64),
					strconv.FormatFloat(b.force.x, 'f', 4, 64),
					strconv.FormatFloat(b.force.y, 'f', 4, 64),
				})
			}
			render(cmd.OutOrStdout(), opts.plain, []string{"body", "position", "mass", "force x", "force y"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "bodies", "n", 5, "number of bodies")
	return cmd
}

// diagonal places body k at (k,k) with mass 100(k+1).
func diagonal(n int) []body {
	bodies := make([]body, n)
	for k := range bodies {
		bodies[k] = body{
			position: vec2{float64(k), float64(k)},
			mass:     100 * float64(k+1),
		}
	}
	return bodies
}

// applyGravity adds to each body the pull of every other body, scaled by the
// other body's mass over the squared distance. Coincident bodies are skipped.
func applyGravity(bodies []body, logger *zap.Logger) {
	complewise.ForEach(bodies, func(this *body, others complewise.Complement[body]) {
		apart := iterator.Filter(others.All(), func(other body) bool {
			return other.position != this.position
		})
		this.force = iterator.Fold(apart, this.force, func(force vec2, other body) vec2 {
			dx := other.position.x - this.position.x
			dy := other.position.y - this.position.y
			f := other.mass / (dx*dx + dy*dy)
			return vec2{force.x + f*dx, force.y + f*dy}
		})
		logger.Debug("step",
			zap.Int("body", others.Index()),
			zap.Float64("fx", this.force.x),
			zap.Float64("fy", this.force.y))
	})
}
