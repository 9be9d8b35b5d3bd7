package eventsfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Entry is one `Event::class => [Listener::class, ...]` line of the listen
// block. Event keeps the spelling found in the file; Listeners are short
// names.
type Entry struct {
	Event     string
	Listeners []string
}

// RegistrationMap is the ordered event → listeners model of a listen block.
type RegistrationMap struct {
	Entries []Entry
}

func (m *RegistrationMap) find(event string) int {
	for i, e := range m.Entries {
		if sameKey(e.Event, event) {
			return i
		}
	}
	return -1
}

// sameKey reports whether two event keys name the same class. Keys that
// are both namespace-qualified compare in full; otherwise only the short
// names are compared, since an unqualified key resolves through the imports.
func sameKey(a, b string) bool {
	a, b = strings.TrimPrefix(a, `\`), strings.TrimPrefix(b, `\`)
	if strings.Contains(a, `\`) && strings.Contains(b, `\`) {
		return strings.EqualFold(a, b)
	}
	return strings.EqualFold(ShortName(a), ShortName(b))
}

// addEntry appends listeners to event, creating the entry if needed. A key
// repeated in the file folds into its first occurrence.
func (m *RegistrationMap) addEntry(event string, listeners []string) {
	i := m.find(event)
	if i < 0 {
		m.Entries = append(m.Entries, Entry{Event: event})
		i = len(m.Entries) - 1
	}
	m.Entries[i].Listeners = append(m.Entries[i].Listeners, listeners...)
}

// Add registers listener for event unless it is already registered
// (compared case-insensitively).
func (m *RegistrationMap) Add(event, listener string) {
	listener = ShortName(listener)
	i := m.find(event)
	if i >= 0 && ContainsFold(m.Entries[i].Listeners, listener) {
		return
	}
	m.addEntry(event, []string{listener})
}

// Listeners returns the listeners registered for event.
func (m RegistrationMap) Listeners(event string) []string {
	if i := m.find(event); i >= 0 {
		return m.Entries[i].Listeners
	}
	return nil
}

// Normalize sorts and dedupes every listener list and orders the entries by
// event name in natural, case-insensitive order.
func (m *RegistrationMap) Normalize() {
	for i := range m.Entries {
		m.Entries[i].Listeners = SortUnique(m.Entries[i].Listeners)
	}
	sort.SliceStable(m.Entries, func(i, j int) bool {
		return NaturalCompare(ShortName(m.Entries[i].Event), ShortName(m.Entries[j].Event)) < 0
	})
}

// Render returns the canonical listen([...]); call for m.
func (m RegistrationMap) Render() string {
	var b strings.Builder
	b.WriteString("listen([\n")
	for _, e := range m.Entries {
		fmt.Fprintf(&b, "    %s::class => [\n", e.Event)
		for _, l := range e.Listeners {
			fmt.Fprintf(&b, "        %s::class,\n", l)
		}
		b.WriteString("    ],\n")
	}
	b.WriteString("]);")
	return b.String()
}

// ParseListenBlock returns the registration map found in buf. The boolean
// is false when buf has no listen block.
func ParseListenBlock(buf string) (RegistrationMap, bool, error) {
	blk, err := FindListenBlock(buf)
	if err != nil || blk == nil {
		return RegistrationMap{}, false, err
	}
	return blk.Map, true, nil
}

// MergeMapping registers listener for event in the listen block of buf and
// re-renders the block canonically. When buf has no listen block a new one
// is placed after whichever grouped import for anchorPrefixes ends last, so
// that every name it uses is already imported, or appended to the end of
// buf if none of those imports exist.
func MergeMapping(buf, event, listener string, anchorPrefixes ...string) (string, error) {
	blk, err := FindListenBlock(buf)
	if err != nil {
		return buf, err
	}
	if blk != nil {
		m := blk.Map
		m.Add(event, listener)
		m.Normalize()
		log.Debug().Str("event", event).Str("listener", listener).Msg("rewriting listen block")
		return Splice(buf, blk.Range, m.Render()), nil
	}

	var m RegistrationMap
	m.Add(event, listener)
	m.Normalize()
	block := m.Render()

	var anchor *GroupedImport
	for _, prefix := range anchorPrefixes {
		if prefix == "" {
			continue
		}
		g, err := FindGroupedImport(buf, prefix)
		if err != nil {
			return buf, err
		}
		if g != nil && (anchor == nil || g.Range.End > anchor.Range.End) {
			anchor = g
		}
	}
	if anchor != nil {
		log.Debug().Str("anchor", anchor.Prefix).Msg("inserting listen block after grouped import")
		return Insert(buf, anchor.Range.End, "\n\n"+block), nil
	}

	log.Debug().Msg("appending listen block at end of file")
	switch {
	case buf == "":
		return block + "\n", nil
	case strings.HasSuffix(buf, "\n"):
		return Insert(buf, len(buf), "\n"+block+"\n"), nil
	default:
		return Insert(buf, len(buf), "\n\n"+block+"\n"), nil
	}
}
