package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidCoordinate is returned by ParsePosition for coordinates that are
// not numbers or relative coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

var axes = [3]string{"x", "y", "z"}

// ParsePosition parses three coordinate arguments into a position. Each
// coordinate is either absolute, such as 10.5, or relative to origin when
// prefixed with a tilde, such as ~ or ~-3.
func ParsePosition(x, y, z string, origin mgl64.Vec3) (mgl64.Vec3, error) {
	var pos mgl64.Vec3
	for i, arg := range [3]string{x, y, z} {
		v, err := parseCoordinate(arg, origin[i])
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("%s coordinate %q: %w", axes[i], arg, err)
		}
		pos[i] = v
	}
	return pos, nil
}

func parseCoordinate(arg string, origin float64) (float64, error) {
	offset, relative := strings.CutPrefix(arg, "~")
	if relative && offset == "" {
		return origin, nil
	}
	v, err := strconv.ParseFloat(offset, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinate
	}
	if relative {
		return origin + v, nil
	}
	return v, nil
}

// Position parses the three arguments starting at index start as a position
// relative to origin.
func (c *Context) Position(start int, origin mgl64.Vec3) (mgl64.Vec3, bool) {
	if start < 0 || start+3 > len(c.args) {
		c.log.Warn("Position arguments missing.", "label", c.label, "start", start, "args", len(c.args))
		return mgl64.Vec3{}, false
	}
	pos, err := ParsePosition(c.args[start], c.args[start+1], c.args[start+2], origin)
	if err != nil {
		c.log.Warn("Invalid position arguments.", "label", c.label, "start", start, "err", err)
		return mgl64.Vec3{}, false
	}
	return pos, true
}
