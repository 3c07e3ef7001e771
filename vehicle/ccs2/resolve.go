// Package ccs2 translates the vendor's CCS2 status tree into vehicle snapshots
package ccs2

import (
	"strconv"
	"strings"
)

// Resolve walks a dot-separated path through a nested status document and
// returns the value at the path. The second return is false when any path
// segment is missing or a non-traversable value is hit before the path ends.
// Numeric segments index into arrays. Leaf values are returned as-is, without
// coercion.
func Resolve(doc map[string]interface{}, path string) (interface{}, bool) {
	var val interface{} = doc

	for _, seg := range strings.Split(path, ".") {
		switch node := val.(type) {
		case map[string]interface{}:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			val = v

		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			val = node[idx]

		default:
			return nil, false
		}
	}

	return val, true
}
