package eventsfile

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RenderGroupedImport returns the canonical grouped import for prefix. Items
// are written in the given order, one per line, each followed by a comma.
func RenderGroupedImport(prefix string, items []string) string {
	var b strings.Builder
	b.WriteString("use ")
	b.WriteString(strings.Trim(prefix, `\`))
	b.WriteString("\\{\n")
	for _, it := range items {
		b.WriteString("    ")
		b.WriteString(it)
		b.WriteString(",\n")
	}
	b.WriteString("};")
	return b.String()
}

// MergeImport makes sure name is imported from prefix through a single
// grouped import and re-renders that import canonically.
//
// An existing group is rewritten in place. Otherwise every single-class
// import from prefix is folded into a new group, which takes the place of
// the first of them; with no single imports either, the group goes after
// the namespace declaration, after the opening `<?php` tag, or at the very
// top of buf, whichever exists first.
//
// A name the file already imports from a different namespace is reported as
// ErrImportConflict and buf is returned unchanged.
func MergeImport(buf, prefix, name string) (string, error) {
	prefix = strings.Trim(prefix, `\`)
	name = ShortName(name)

	want := strings.Trim(prefix+`\`+name, `\`)
	for _, imp := range ImportedClasses(buf) {
		if strings.EqualFold(imp.Name, name) && !strings.EqualFold(imp.FQCN, want) {
			return buf, errors.Wrapf(ErrImportConflict, "%s is already imported as %s", name, imp.FQCN)
		}
	}

	g, err := FindGroupedImport(buf, prefix)
	if err != nil {
		return buf, err
	}
	if g != nil {
		items := g.Items
		if !ContainsFold(items, name) {
			items = append(items, name)
		}
		log.Debug().Str("prefix", prefix).Str("name", name).Msg("rewriting grouped import")
		return Splice(buf, g.Range, RenderGroupedImport(g.Prefix, SortUnique(items))), nil
	}

	singles := FindSingleImports(buf, prefix)
	items := make([]string, 0, len(singles)+1)
	for _, s := range singles {
		items = append(items, s.Name)
	}
	items = SortUnique(append(items, name))
	block := RenderGroupedImport(prefix, items)

	if len(singles) > 0 {
		first := singles[0].Range
		if strings.HasSuffix(buf[first.Start:first.End], "\n") {
			block += "\n"
		}
		for i := len(singles) - 1; i >= 0; i-- {
			buf = Splice(buf, singles[i].Range, "")
		}
		log.Debug().Str("prefix", prefix).Int("folded", len(singles)).Msg("replacing single imports with grouped import")
		return Insert(buf, first.Start, block), nil
	}

	if pos, ok := findNamespaceDecl(buf); ok {
		log.Debug().Str("prefix", prefix).Msg("inserting grouped import after namespace declaration")
		return Insert(buf, pos, "\n\n"+block), nil
	}
	if pos, ok := findOpenTag(buf); ok {
		log.Debug().Str("prefix", prefix).Msg("inserting grouped import after open tag")
		return Insert(buf, pos, "\n\n"+block), nil
	}
	log.Debug().Str("prefix", prefix).Msg("inserting grouped import at top of file")
	if buf == "" {
		return block + "\n", nil
	}
	return Insert(buf, 0, block+"\n\n"), nil
}
