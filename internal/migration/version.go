package migration

import (
	"sort"
	"strconv"
	"strings"
)

// Compare orders two versions numerically: -1 when a is before b, 0 when
// both spell the same numeric value ("0002" and "2" are the same version),
// 1 when a is after b. Values too large for uint64 compare as strings.
func Compare(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)

	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}

	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}

// VersionLess reports whether version a sorts before version b. Ordering
// is numeric so that "2" sorts before "10"; spellings of the same numeric
// value ("01" vs "001") are tie-broken as strings to keep sorting
// deterministic. Watermark checks must use Compare, not VersionLess, so
// that equal numeric values count as already applied.
func VersionLess(a, b string) bool {
	if c := Compare(a, b); c != 0 {
		return c < 0
	}

	return a < b
}

// Sort returns a new slice of migrations in ascending version order.
// The sort is stable to preserve insertion order for equal versions.
func Sort(migrations []Migration) []Migration {
	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)

	sort.SliceStable(sorted, func(i, j int) bool {
		return VersionLess(sorted[i].Version, sorted[j].Version)
	})

	return sorted
}
