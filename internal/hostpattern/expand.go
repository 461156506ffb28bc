package hostpattern

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPattern is returned by Expand when a bracket expression cannot
// be parsed: non-numeric bounds, unbalanced brackets, or a lower bound
// greater than the upper bound.
var ErrInvalidPattern = errors.New("invalid host pattern")

var (
	// node[1-4].example.com — dash ranges pad only on an explicit leading zero
	dashRangePattern = regexp.MustCompile(`^(.*)\[(\d+)-(\d+)\](.*)$`)

	// node[01:10].example.com — colon ranges always pad to the lower bound width
	colonRangePattern = regexp.MustCompile(`^(.*)\[(\d+):(\d+)\](.*)$`)

	ipv4Shape       = regexp.MustCompile(`^\d+(\.\d+){3}$`)
	hostnameLabel   = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	maxHostnameLen  = 253
	maxRangeEntries = 1024
)

// Expand expands a hostname pattern into the ordered list of concrete
// hostnames it describes. A pattern without brackets expands to itself.
func Expand(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "[]") {
		return []string{pattern}, nil
	}

	if m := dashRangePattern.FindStringSubmatch(pattern); m != nil {
		// Pad only when the lower bound is written with a leading zero,
		// e.g. node[01-10] counts node01..node10 but node[1-10] does not pad.
		width := 0
		if len(m[2]) > 1 && m[2][0] == '0' {
			width = len(m[2])
		}
		return expandRange(m[1], m[2], m[3], m[4], width)
	}

	if m := colonRangePattern.FindStringSubmatch(pattern); m != nil {
		return expandRange(m[1], m[2], m[3], m[4], len(m[2]))
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
}

// expandRange generates prefix+N+suffix for N in [start, end]. A width > 0
// zero-pads every generated number to that width.
func expandRange(prefix, startStr, endStr, suffix string, width int) ([]string, error) {
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad lower bound %q", ErrInvalidPattern, startStr)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad upper bound %q", ErrInvalidPattern, endStr)
	}
	if start > end {
		return nil, fmt.Errorf("%w: range %d-%d is reversed", ErrInvalidPattern, start, end)
	}
	if end-start+1 > maxRangeEntries {
		return nil, fmt.Errorf("%w: range %d-%d expands to more than %d hosts",
			ErrInvalidPattern, start, end, maxRangeEntries)
	}

	hosts := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		num := strconv.Itoa(i)
		if width > 0 && len(num) < width {
			num = strings.Repeat("0", width-len(num)) + num
		}
		hosts = append(hosts, prefix+num+suffix)
	}
	return hosts, nil
}

// Validate reports whether value is acceptable as inventory input: a
// well-formed bracket pattern, a dotted-quad IPv4 address, or an RFC-1123
// hostname. It never returns an error; input fields use it to reject bad
// values before Expand runs.
func Validate(value string) bool {
	if value == "" {
		return false
	}

	if strings.ContainsAny(value, "[]") {
		hosts, err := Expand(value)
		if err != nil {
			return false
		}
		// The bounds must also expand to plausible hostnames.
		for _, h := range hosts {
			if !validHostname(h) && !validIPv4(h) {
				return false
			}
		}
		return true
	}

	if ipv4Shape.MatchString(value) {
		return validIPv4(value)
	}

	return validHostname(value)
}

func validIPv4(value string) bool {
	if !ipv4Shape.MatchString(value) {
		return false
	}
	for _, octet := range strings.Split(value, ".") {
		if len(octet) > 3 {
			return false
		}
		n, err := strconv.Atoi(octet)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

func validHostname(value string) bool {
	if len(value) == 0 || len(value) > maxHostnameLen {
		return false
	}
	value = strings.TrimSuffix(value, ".")
	for _, label := range strings.Split(value, ".") {
		if !hostnameLabel.MatchString(label) {
			return false
		}
	}
	return true
}
