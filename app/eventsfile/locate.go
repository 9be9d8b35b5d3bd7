package eventsfile

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// GroupedImport is a located `use <Prefix>\{ ... };` statement.
type GroupedImport struct {
	Range  Range
	Prefix string // namespace as written in the file, without trailing `\`
	Items  []string
}

// SingleImport is a located `use <prefix>\<Name>;` statement. Range covers
// the whole line when the statement sits alone on it.
type SingleImport struct {
	Range Range
	Name  string
}

// FindGroupedImport returns the first grouped import for prefix, or nil when
// the file has none. A statement that opens a group for prefix but does not
// close it as `};` is reported as ErrBlockNotRecognized. Only file-level
// statements count; a trait `use` inside a class body is not an import.
func FindGroupedImport(buf, prefix string) (*GroupedImport, error) {
	toks := lex(buf)
	depth := braceDepth(toks)
	for i := 0; i+2 < len(toks); i++ {
		if !toks[i].isName("use") || depth[i] != 0 {
			continue
		}
		name := toks[i+1]
		if name.kind != tokName || !strings.HasSuffix(name.text, `\`) || !toks[i+2].is("{") {
			continue
		}
		if !sameNamespace(name.text, prefix) {
			continue
		}
		g, err := parseGroup(buf, toks, i)
		if err != nil {
			return nil, err
		}
		g.Prefix = strings.Trim(name.text, `\`)
		log.Debug().Str("prefix", g.Prefix).Int("start", g.Range.Start).Strs("items", g.Items).Msg("found grouped import")
		return g, nil
	}
	return nil, nil
}

// parseGroup reads the items of the group whose `use` keyword is toks[at].
func parseGroup(buf string, toks []token, at int) (*GroupedImport, error) {
	var (
		items []string
		cur   []string
	)
	flush := func() {
		if len(cur) > 0 {
			items = append(items, strings.Join(cur, " "))
			cur = nil
		}
	}
	for j := at + 3; j < len(toks); j++ {
		t := toks[j]
		switch {
		case t.is(","):
			flush()
		case t.is("}"):
			flush()
			if j+1 >= len(toks) || !toks[j+1].is(";") {
				return nil, notRecognized(buf, toks[at].start, "grouped import not terminated by `};`")
			}
			return &GroupedImport{
				Range: Range{Start: toks[at].start, End: toks[j+1].end},
				Items: items,
			}, nil
		case t.kind == tokName:
			cur = append(cur, t.text)
		default:
			return nil, notRecognized(buf, t.start, "unexpected "+t.text+" in grouped import")
		}
	}
	return nil, notRecognized(buf, toks[at].start, "unterminated grouped import")
}

// FindSingleImports returns every `use <prefix>\<Name>;` statement that
// imports a class directly under prefix. Aliased imports and imports from
// deeper namespaces are left alone.
func FindSingleImports(buf, prefix string) []SingleImport {
	toks := lex(buf)
	depth := braceDepth(toks)
	var out []SingleImport
	for i := 0; i+2 < len(toks); i++ {
		if !toks[i].isName("use") || depth[i] != 0 || toks[i+1].kind != tokName || !toks[i+2].is(";") {
			continue
		}
		ref := toks[i+1].text
		if strings.HasSuffix(ref, `\`) || !sameNamespace(NamespaceOf(ref), prefix) {
			continue
		}
		r := lineBounds(buf, Range{Start: toks[i].start, End: toks[i+2].end})
		out = append(out, SingleImport{Range: r, Name: ShortName(ref)})
	}
	if len(out) > 0 {
		log.Debug().Str("prefix", prefix).Int("count", len(out)).Msg("found single imports")
	}
	return out
}

// ImportedClass is one class name made visible by a file-level `use`
// statement.
type ImportedClass struct {
	Name string // the name usable in code, the alias when one is given
	FQCN string // without leading `\`
}

// ImportedClasses lists the classes imported by every file-level `use`
// statement of buf, grouped or not. Function and constant imports are
// skipped.
func ImportedClasses(buf string) []ImportedClass {
	toks := lex(buf)
	depth := braceDepth(toks)
	var out []ImportedClass
	add := func(prefix string, parts []string) {
		if len(parts) == 0 {
			return
		}
		fqcn := strings.Trim(prefix+parts[0], `\`)
		name := ShortName(fqcn)
		if len(parts) == 3 && strings.EqualFold(parts[1], "as") {
			name = parts[2]
		}
		out = append(out, ImportedClass{Name: name, FQCN: fqcn})
	}
	for i := 0; i < len(toks); i++ {
		if !toks[i].isName("use") || depth[i] != 0 || i+1 >= len(toks) {
			continue
		}
		if toks[i+1].isName("function") || toks[i+1].isName("const") {
			continue
		}
		prefix := ""
		var parts []string
		grouped := false
		for j := i + 1; j < len(toks); j++ {
			t := toks[j]
			switch {
			case t.is("{") && !grouped && len(parts) == 1 && strings.HasSuffix(parts[0], `\`):
				grouped, prefix, parts = true, parts[0], nil
			case t.is(","):
				add(prefix, parts)
				parts = nil
			case t.is("}") && grouped:
				add(prefix, parts)
				parts = nil
				grouped = false
			case t.is(";"):
				add(prefix, parts)
				i = j
				j = len(toks)
			case t.kind == tokName:
				parts = append(parts, t.text)
			default:
				i = j
				j = len(toks)
			}
		}
	}
	return out
}

// findNamespaceDecl returns the offset just past the first
// `namespace <Name>;` statement.
func findNamespaceDecl(buf string) (int, bool) {
	toks := lex(buf)
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].isName("namespace") && toks[i+1].kind == tokName && toks[i+2].is(";") {
			return toks[i+2].end, true
		}
	}
	return 0, false
}

const openTag = "<?php"

// findOpenTag returns the offset just past the first `<?php` marker.
func findOpenTag(buf string) (int, bool) {
	i := strings.Index(buf, openTag)
	if i < 0 {
		return 0, false
	}
	return i + len(openTag), true
}

// ListenBlock is a located `listen([ ... ]);` call and its parsed contents.
type ListenBlock struct {
	Range Range
	Map   RegistrationMap
}

func isListenCall(toks []token, i int) bool {
	if i+2 >= len(toks) {
		return false
	}
	t := toks[i]
	if t.kind != tokName || !strings.EqualFold(strings.TrimLeft(t.text, `\`), "listen") {
		return false
	}
	if !toks[i+1].is("(") || !toks[i+2].is("[") {
		return false
	}
	if i > 0 {
		prev := toks[i-1]
		if prev.is("->") || prev.is("::") || prev.isName("function") {
			return false
		}
	}
	return true
}

// FindListenBlock returns the first listen([...]) call, or nil when the file
// has none. A call whose brackets do not balance, that is not closed as
// `]);`, or that holds anything other than `Event::class => [Listener::class,
// ...]` entries is reported as ErrBlockNotRecognized.
func FindListenBlock(buf string) (*ListenBlock, error) {
	toks := lex(buf)
	for i := range toks {
		if !isListenCall(toks, i) {
			continue
		}
		open := i + 2
		depth := 0
		closeAt := -1
		for j := open; j < len(toks); j++ {
			if toks[j].is("[") {
				depth++
			} else if toks[j].is("]") {
				depth--
				if depth == 0 {
					closeAt = j
					break
				}
			}
		}
		if closeAt < 0 {
			return nil, notRecognized(buf, toks[i].start, "unbalanced brackets in listen() call")
		}
		if closeAt+2 >= len(toks) || !toks[closeAt+1].is(")") || !toks[closeAt+2].is(";") {
			return nil, notRecognized(buf, toks[i].start, "listen() call not terminated by `]);`")
		}
		m, err := parseEntries(buf, toks[open+1:closeAt])
		if err != nil {
			return nil, err
		}
		blk := &ListenBlock{
			Range: Range{Start: toks[i].start, End: toks[closeAt+2].end},
			Map:   m,
		}
		log.Debug().Int("start", blk.Range.Start).Int("entries", len(m.Entries)).Msg("found listen block")
		return blk, nil
	}
	return nil, nil
}

// classRef matches `Name::class` at toks[j] and returns the name.
func classRef(toks []token, j int) (string, bool) {
	if j+2 >= len(toks) {
		return "", false
	}
	if toks[j].kind != tokName || !toks[j+1].is("::") || !toks[j+2].isName("class") {
		return "", false
	}
	return toks[j].text, true
}

func parseEntries(buf string, toks []token) (RegistrationMap, error) {
	var m RegistrationMap
	j := 0
	for j < len(toks) {
		key, ok := classRef(toks, j)
		if !ok {
			return m, notRecognized(buf, toks[j].start, "unsupported key in listen() block")
		}
		j += 3
		if j+1 >= len(toks) || !toks[j].is("=>") || !toks[j+1].is("[") {
			return m, notRecognized(buf, toks[j-3].start, "expected `=> [` after "+key+"::class")
		}
		j += 2
		var listeners []string
		for {
			if j >= len(toks) {
				return m, notRecognized(buf, toks[len(toks)-1].start, "unterminated listener list")
			}
			if toks[j].is("]") {
				j++
				break
			}
			name, ok := classRef(toks, j)
			if !ok {
				return m, notRecognized(buf, toks[j].start, "unsupported listener for "+key+"::class")
			}
			listeners = append(listeners, ShortName(name))
			j += 3
			if j < len(toks) && toks[j].is(",") {
				j++
			}
		}
		if j < len(toks) && toks[j].is(",") {
			j++
		}
		m.addEntry(key, listeners)
	}
	return m, nil
}
