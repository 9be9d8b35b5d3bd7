package eventsfile

import "github.com/pkg/errors"

// ErrBlockNotRecognized is returned when text opens one of the recognized
// blocks (a grouped import for the requested namespace, or a listen([...])
// call) but its body does not have the expected shape. Rewriting such a block
// would lose whatever the parser could not understand, so the merge stops.
var ErrBlockNotRecognized = errors.New("block not recognized")

// ErrImportConflict is returned when importing a class would reuse a short
// name that the file already imports from somewhere else.
var ErrImportConflict = errors.New("import conflicts with an existing import")

// Range is a half-open byte range [Start, End) inside a buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Splice replaces buf[r.Start:r.End] with text. Bytes outside r are kept
// as they are.
func Splice(buf string, r Range, text string) string {
	return buf[:r.Start] + text + buf[r.End:]
}

// Insert is Splice with an empty range at pos.
func Insert(buf string, pos int, text string) string {
	return Splice(buf, Range{Start: pos, End: pos}, text)
}

func notRecognized(buf string, pos int, what string) error {
	line := 1
	for i := 0; i < pos && i < len(buf); i++ {
		if buf[i] == '\n' {
			line++
		}
	}
	return errors.Wrapf(ErrBlockNotRecognized, "%s at line %d", what, line)
}
