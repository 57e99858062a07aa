package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/denismitr/pcset"
	"github.com/denismitr/pcset/internal/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// step is one row of transform output.
type step struct {
	Op          string `json:"op" yaml:"op"`
	Set         string `json:"set" yaml:"set"`
	NormalOrder []int  `json:"normal_order" yaml:"normal_order,flow"`
}

func newTransformCommand(opts *options) *cobra.Command {
	var ops []string

	cmd := &cobra.Command{
		Use:   "transform <set> --op T5 --op I0 ...",
		Short: "Apply T_n and I_n operators to a set, in order",
		Long: `Apply transposition (Tn) and inversion (In) operators to a set. Operators are
applied in the order given; n must be 0-11.

Examples:
  pcset transform "0 4 7" --op T5
  pcset transform 047 --op I0 --op T3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			s, err := pcset.Parse(args[0])
			if err != nil {
				return err
			}

			steps := []step{{Op: "start", Set: s.String(), NormalOrder: s.NormalOrder()}}
			for _, op := range ops {
				if err := applyOp(s, op); err != nil {
					return err
				}
				log.Debug("applied operator", zap.String("op", op), zap.Stringer("set", s))
				steps = append(steps, step{Op: strings.ToUpper(op), Set: s.String(), NormalOrder: s.NormalOrder()})
			}

			rows := make([]table.Row, 0, len(steps))
			for _, st := range steps {
				rows = append(rows, table.Row{st.Op, st.Set, render.Ints(st.NormalOrder)})
			}

			return render.Write(cmd.OutOrStdout(), cfg.Format, steps, table.Row{"Op", "Set", "Normal order"}, rows)
		},
	}

	cmd.Flags().StringArrayVarP(&ops, "op", "o", nil, "operator to apply, Tn or In (repeatable)")

	return cmd
}

// applyOp parses "T5" or "i0" and applies it to s.
func applyOp(s *pcset.Set, op string) error {
	if len(op) < 2 {
		return fmt.Errorf("invalid operator %q, want Tn or In", op)
	}

	n, err := strconv.Atoi(op[1:])
	if err != nil {
		return fmt.Errorf("invalid operator %q, want Tn or In", op)
	}

	switch op[0] {
	case 'T', 't':
		err = s.Transpose(n)
	case 'I', 'i':
		err = s.Invert(n)
	default:
		return fmt.Errorf("invalid operator %q, want Tn or In", op)
	}

	return errors.Wrapf(err, "operator %s", op)
}
