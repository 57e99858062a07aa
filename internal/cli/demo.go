package cli

import (
	"fmt"
	"io"

	"github.com/denismitr/pcset"
	"github.com/denismitr/pcset/internal/render"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the descriptors and set algebra of two sample sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	a := pcset.MustNew(10, 4, 9, 6)
	b := pcset.MustNew(4, 1, 8, 2)

	title := color.New(color.FgCyan, color.Bold)
	section := func(heading string, lines ...fmt.Stringer) error {
		if _, err := title.Fprintln(w, heading); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return err
			}
		}
		return nil
	}

	sections := []struct {
		heading string
		lines   []fmt.Stringer
	}{
		{"Console representations of 2 test PCSet objects:", []fmt.Stringer{a, b}},
		{"Prime forms of 2 test PCSet objects:", []fmt.Stringer{sequence(a.PrimeForm()), sequence(b.PrimeForm())}},
		{"Interval-class vectors of 2 test PCSet objects:", []fmt.Stringer{a.IntervalClassVector(), b.IntervalClassVector()}},
		{"Union of 2 test PCSet objects:", []fmt.Stringer{a.Union(b)}},
		{"Difference of 2 test PCSet objects:", []fmt.Stringer{a.Difference(b)}},
		{"Intersection of 2 test PCSet objects:", []fmt.Stringer{a.Intersection(b)}},
	}

	for _, s := range sections {
		if err := section(s.heading, s.lines...); err != nil {
			return err
		}
	}

	return nil
}

type sequence []int

func (s sequence) String() string {
	return render.Ints(s)
}
