package pcset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/denismitr/pcset/utils"
)

// IntervalVector counts interval classes 1 through 6, index 0 holding ic1.
type IntervalVector [6]int

func (v IntervalVector) String() string {
	var b strings.Builder
	b.WriteString("<")
	for i, n := range v {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("%d", n))
	}
	b.WriteString(">")
	return b.String()
}

// Pairs is the number of unordered pairs the vector counts.
func (v IntervalVector) Pairs() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// NormalOrder returns the most compact rotation of the sorted members.
//
// Each candidate start a scores the sum of 2^((b - a) mod 12) over all
// members b; the lowest score wins and the first one wins a tie. Weighting by
// powers of two makes the score compare the span first, then the intervals
// closest to the end of the rotation, which is the usual packing rule.
func (s *Set) NormalOrder() []int {
	sorted := s.Sorted()
	if len(sorted) == 0 {
		return []int{}
	}

	minIdx, minScore := 0, -1
	for i, a := range sorted {
		score := 0
		for _, b := range sorted {
			score += 1 << utils.Mod(b-a, Classes)
		}

		if minScore < 0 || score < minScore {
			minIdx, minScore = i, score
		}
	}

	return rotate(sorted, minIdx)
}

// PrimeForm returns the representative of the set class under transposition
// and inversion. Transposed forms win ties against inverted ones.
func (s *Set) PrimeForm() []int {
	sorted := s.Sorted()
	if len(sorted) == 0 {
		return []int{}
	}

	inverted := make([]int, len(sorted))
	for i, pc := range sorted {
		inverted[i] = utils.Mod(-pc, Classes)
	}
	sort.Ints(inverted)

	transposition, minT := densest(sorted)
	inversion, minI := densest(inverted)
	if minT <= minI {
		return transposition
	}

	return inversion
}

// densest normalizes pcs to start at 0 from each member in turn and returns
// the candidate with the lowest sum of 2^interval, with its score.
func densest(pcs []int) ([]int, int) {
	var best []int
	minScore := -1
	for _, a := range pcs {
		candidate := make([]int, 0, len(pcs))
		for _, b := range pcs {
			candidate = append(candidate, utils.Mod(b-a, Classes))
		}
		sort.Ints(candidate)

		score := 0
		for _, ivl := range candidate {
			score += 1 << ivl
		}

		if minScore < 0 || score < minScore {
			best, minScore = candidate, score
		}
	}

	return best, minScore
}

// IntervalClassVector counts every unordered pair of members by interval
// class. Intervals above the tritone fold onto their complement.
func (s *Set) IntervalClassVector() IntervalVector {
	var v IntervalVector

	pcs := s.Sorted()
	for i, a := range pcs {
		for _, b := range pcs[i+1:] {
			ivl := utils.Mod(b-a, Classes)
			if ivl > Classes/2 {
				ivl = utils.Mod(-ivl, Classes)
			}
			v[ivl-1]++
		}
	}

	return v
}

func rotate(pcs []int, front int) []int {
	result := make([]int, 0, len(pcs))
	result = append(result, pcs[front:]...)
	return append(result, pcs[:front]...)
}
