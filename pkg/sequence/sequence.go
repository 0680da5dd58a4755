// Package sequence names frame files and orders them.
//
// Frame order is carried only by file names, and external tools write
// unpadded numbers ("1.png" .. "10.png"), so names are compared naturally.
package sequence

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// FrameExt is the extension of frame files in a scratch directory.
const FrameExt = ".png"

// FrameName returns the file name of the frame at index.
func FrameName(index int) string {
	return strconv.Itoa(index) + FrameExt
}

// Index parses the index out of a frame file name.
func Index(name string) (int, bool) {
	base := filepath.Base(name)
	n, err := strconv.Atoi(strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// IsFrame reports whether name looks like a frame file.
func IsFrame(name string) bool {
	return strings.EqualFold(filepath.Ext(name), FrameExt)
}

// Less compares two names in natural order.
func Less(a, b string) bool {
	return natural.Less(a, b)
}

// Sort orders names naturally in place.
func Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
}
