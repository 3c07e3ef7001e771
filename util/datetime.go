package util

import (
	"strings"
	"time"
)

const dateTimeLayout = "20060102150405"

// ParseDatetime parses the vehicle api's timestamp formats. Timestamps arrive
// either digit-squashed ("20230119041631") or with ISO-style separators;
// separators are stripped first, trailing fractional second digits are ignored.
// The result carries the supplied location.
func ParseDatetime(value string, loc *time.Location) (time.Time, error) {
	v := strings.NewReplacer("-", "", "T", "", ":", "", " ", "", "Z", "", ".", "").Replace(value)
	if len(v) > len(dateTimeLayout) {
		v = v[:len(dateTimeLayout)]
	}

	return time.ParseInLocation(dateTimeLayout, v, loc)
}
