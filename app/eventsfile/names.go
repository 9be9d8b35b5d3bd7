package eventsfile

import (
	"sort"
	"strings"
)

// Compare orders two identifiers case-insensitively, byte by byte on their
// lowercased forms.
func Compare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// NaturalCompare orders identifiers case-insensitively, comparing runs of
// digits by numeric value so that "Event2" sorts before "Event10".
func NaturalCompare(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			si := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			sj := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Dedupe drops case-insensitive duplicates, keeping the casing of the first
// occurrence. Empty entries are dropped too.
func Dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		k := strings.ToLower(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// SortUnique dedupes items and sorts them with Compare.
func SortUnique(items []string) []string {
	out := Dedupe(items)
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return out
}

// ContainsFold reports whether items holds name, ignoring case.
func ContainsFold(items []string, name string) bool {
	for _, it := range items {
		if strings.EqualFold(it, name) {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool { return r == '\\' || r == '/' }

// ShortName returns the final segment of a `\` or `/` separated reference.
// Input without separators is returned unchanged.
func ShortName(ref string) string {
	ref = strings.TrimRightFunc(ref, isSeparator)
	if i := strings.LastIndexFunc(ref, isSeparator); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// NamespaceOf returns everything before the final segment of ref, joined with
// `\` and without leading or trailing separators.
func NamespaceOf(ref string) string {
	ref = strings.Trim(ref, `\/`)
	i := strings.LastIndexFunc(ref, isSeparator)
	if i < 0 {
		return ""
	}
	return strings.ReplaceAll(ref[:i], "/", `\`)
}
