package scan

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// Names without any digit run sort after every numbered name.
const noDigitSentinel = 999999

// NumericKey is a sort key that orders names the way a human expects:
// embedded numbers compare numerically, the full name breaks ties.
type NumericKey struct {
	runs []int
	name string
}

// NumericKeyOf extracts every maximal digit run of name, left to right, and
// builds the composite key.
func NumericKeyOf(name string) NumericKey {
	matches := digitRun.FindAllString(name, -1)
	if len(matches) == 0 {
		return NumericKey{runs: []int{noDigitSentinel}, name: name}
	}
	runs := make([]int, len(matches))
	for i, m := range matches {
		// Atoi saturates on overflow, which still orders correctly
		n, _ := strconv.Atoi(m)
		runs[i] = n
	}
	return NumericKey{runs: runs, name: name}
}

// Compare returns -1, 0 or 1 ordering k against other. Digit runs compare
// elementwise, a shorter run prefix sorts first, the name is the final tiebreak.
func (k NumericKey) Compare(other NumericKey) int {
	for i := 0; i < len(k.runs) && i < len(other.runs); i++ {
		if k.runs[i] != other.runs[i] {
			if k.runs[i] < other.runs[i] {
				return -1
			}
			return 1
		}
	}
	if len(k.runs) != len(other.runs) {
		if len(k.runs) < len(other.runs) {
			return -1
		}
		return 1
	}
	return strings.Compare(k.name, other.name)
}

// Less reports whether k orders before other.
func (k NumericKey) Less(other NumericKey) bool {
	return k.Compare(other) < 0
}

// CompareNames orders two bare names by their numeric keys.
func CompareNames(a, b string) int {
	return NumericKeyOf(a).Compare(NumericKeyOf(b))
}
