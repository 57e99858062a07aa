package analysis

import (
	"strings"

	"github.com/denismitr/pcset"
)

// Report holds the descriptors of one analyzed set.
type Report struct {
	Label          string               `json:"label,omitempty" yaml:"label,omitempty"`
	Input          string               `json:"input" yaml:"input"`
	Set            string               `json:"set" yaml:"set"`
	Cardinality    int                  `json:"cardinality" yaml:"cardinality"`
	NormalOrder    []int                `json:"normal_order" yaml:"normal_order,flow"`
	PrimeForm      []int                `json:"prime_form" yaml:"prime_form,flow"`
	IntervalVector pcset.IntervalVector `json:"interval_vector" yaml:"interval_vector,flow"`
}

func NewReport(label, input string, s *pcset.Set) Report {
	return Report{
		Label:          label,
		Input:          input,
		Set:            s.String(),
		Cardinality:    s.Len(),
		NormalOrder:    s.NormalOrder(),
		PrimeForm:      s.PrimeForm(),
		IntervalVector: s.IntervalClassVector(),
	}
}

// ParseLine splits "label: set" into its parts. Blank lines and lines
// starting with # return ErrSkip.
func ParseLine(line string) (label string, text string, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", ErrSkip
	}

	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", line, nil
	}

	head := strings.TrimSpace(line[:idx])
	if head == "PCSet" {
		return "", line, nil
	}

	return head, strings.TrimSpace(line[idx+1:]), nil
}
