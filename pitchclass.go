package pcset

import (
	"strconv"

	"github.com/pkg/errors"
)

// Classes is the size of the pitch-class space.
const Classes = 12

// PitchClass is a note modulo the octave, always in 0-11 once produced by Check.
type PitchClass uint8

func (pc PitchClass) Int() int {
	return int(pc)
}

func (pc PitchClass) String() string {
	return strconv.Itoa(int(pc))
}

// Check validates n as a pitch class, transposition interval or inversion
// index. All three share the 0-11 domain.
func Check(n int) (PitchClass, error) {
	if n < 0 || n >= Classes {
		return 0, errors.Wrapf(ErrInvalidPitchClass, "got %d", n)
	}

	return PitchClass(n), nil
}
