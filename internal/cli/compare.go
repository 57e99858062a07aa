package cli

import (
	"strconv"

	"github.com/denismitr/pcset"
	"github.com/denismitr/pcset/internal/render"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type comparison struct {
	A            string `json:"a" yaml:"a"`
	B            string `json:"b" yaml:"b"`
	Union        string `json:"union" yaml:"union"`
	Intersection string `json:"intersection" yaml:"intersection"`
	AMinusB      string `json:"a_minus_b" yaml:"a_minus_b"`
	BMinusA      string `json:"b_minus_a" yaml:"b_minus_a"`
	Subset       bool   `json:"a_subset_of_b" yaml:"a_subset_of_b"`
	Superset     bool   `json:"a_superset_of_b" yaml:"a_superset_of_b"`
	Equal        bool   `json:"equal" yaml:"equal"`
	SameClass    bool   `json:"same_set_class" yaml:"same_set_class"`
}

func compare(a, b *pcset.Set) comparison {
	return comparison{
		A:            a.String(),
		B:            b.String(),
		Union:        a.Union(b).String(),
		Intersection: a.Intersection(b).String(),
		AMinusB:      a.Difference(b).String(),
		BMinusA:      b.Difference(a).String(),
		Subset:       a.IsSubset(b),
		Superset:     a.IsSuperset(b),
		Equal:        a.Equal(b),
		SameClass:    slices.Equal(a.PrimeForm(), b.PrimeForm()),
	}
}

func newCompareCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Show the set algebra of two sets",
		Long: `Show the union, intersection and differences of two sets, their containment
relations and whether they belong to the same set class (equal prime forms).

Example:
  pcset compare "10 4 9 6" "4 1 8 2"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			a, err := pcset.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := pcset.Parse(args[1])
			if err != nil {
				return err
			}

			c := compare(a, b)
			rows := []table.Row{
				{"A", c.A},
				{"B", c.B},
				{"A ∪ B", c.Union},
				{"A ∩ B", c.Intersection},
				{"A − B", c.AMinusB},
				{"B − A", c.BMinusA},
				{"A ⊆ B", strconv.FormatBool(c.Subset)},
				{"A ⊇ B", strconv.FormatBool(c.Superset)},
				{"A = B", strconv.FormatBool(c.Equal)},
				{"Same set class", strconv.FormatBool(c.SameClass)},
			}

			return render.Write(cmd.OutOrStdout(), cfg.Format, c, table.Row{"Relation", "Value"}, rows)
		},
	}
}
