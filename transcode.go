package pyxel

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// This file holds the transforms between raw docData.json values and
// their domain representations. Each transform is a pure function; the
// UnmarshalJSON methods in decode.go bind them to specific fields.

// degreesFromQuadrant converts a tile rotation quadrant (0-3) to
// degrees. The wire format only emits quadrants, so anything above 3 is
// rejected instead of being multiplied out.
func degreesFromQuadrant(q uint64) (float64, error) {
	if q > 3 {
		return 0, fmt.Errorf("%w: rotation quadrant %d out of range 0-3", ErrDeserialize, q)
	}
	return float64(q) * 90.0, nil
}

// durationFromMillis converts a millisecond count to a duration.
func durationFromMillis(ms uint64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// multipliersFromPercents converts scaled percentages to multipliers:
// 100 becomes 1.0, 50 becomes 0.5. Order is preserved and an empty
// input yields an empty (non-nil) output.
func multipliersFromPercents(percents []uint64) []float64 {
	out := make([]float64, len(percents))
	for i, p := range percents {
		out[i] = float64(p) / 100.0
	}
	return out
}

// colorFromHex decodes an 8-hex-digit AARRGGBB string. Note the alpha
// byte comes first, unlike the more common RRGGBBAA ordering.
func colorFromHex(s string) (Color, error) {
	if len(s) != 8 {
		return Color{}, fmt.Errorf("%w: color %q must be 8 hex digits", ErrDeserialize, s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrDeserialize, s, err)
	}
	return Color{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}

// parseSlotKey parses a JSON object key as a non-negative slot index.
func parseSlotKey(entity, key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: key %q is not an integer", ErrDeserialize, entity, key)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s: negative key %d", ErrDeserialize, entity, n)
	}
	return n, nil
}

// denseSlice materializes an integer-keyed map into a slice, placing
// each value at its key. The key set must be exactly {0..len(m)-1}:
// gaps, negatives and out-of-range keys fail. Duplicate keys in the
// source JSON object collapse last-write-wins before this runs, as the
// JSON decoder folds them into one map entry.
func denseSlice[T any](entity string, m map[string]T) ([]T, error) {
	out := make([]T, len(m))
	seen := make([]bool, len(m))
	for key, v := range m {
		n, err := parseSlotKey(entity, key)
		if err != nil {
			return nil, err
		}
		if n >= len(m) {
			return nil, fmt.Errorf("%w: %s: key %d leaves a gap in 0-%d", ErrDeserialize, entity, n, len(m)-1)
		}
		seen[n] = true
		out[n] = v
	}
	for n, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing key %d", ErrDeserialize, entity, n)
		}
	}
	return out, nil
}

// sparseSlice materializes an integer-keyed map into a pointer slice
// sized by the highest key, leaving nil at unkeyed slots. Keys must be
// non-negative and below maxSlots. Duplicate-key policy is the same as
// for denseSlice.
func sparseSlice[T any](entity string, m map[string]T, maxSlots int) ([]*T, error) {
	out := make([]*T, 0, len(m))
	for key, v := range m {
		n, err := parseSlotKey(entity, key)
		if err != nil {
			return nil, err
		}
		if n >= maxSlots {
			return nil, fmt.Errorf("%w: %s: key %d exceeds %d slots", ErrLimitExceeded, entity, n, maxSlots)
		}
		for n >= len(out) {
			out = append(out, nil)
		}
		v := v
		out[n] = &v
	}
	return out, nil
}
