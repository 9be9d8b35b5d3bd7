package commands

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

var classNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// QualifiedName is a class name given on the command line as
// "Folder/Sub/Name". Sub holds the folder segments, which become both
// sub-namespaces and sub-directories.
type QualifiedName struct {
	Sub  []string
	Name string
}

// ParseQualifiedName splits arg on `/` or `\` and turns every segment into a
// class-style name. Segments written with word separators ("user_registered",
// "send-mail") are converted to PascalCase; other segments only get their
// first letter upper-cased so existing acronyms survive.
func ParseQualifiedName(arg string) (QualifiedName, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return QualifiedName{}, ErrMissingArgument
	}
	parts := strings.FieldsFunc(arg, func(r rune) bool { return r == '/' || r == '\\' })
	if len(parts) == 0 {
		return QualifiedName{}, errors.Wrapf(ErrInvalidName, "%q", arg)
	}
	for i, p := range parts {
		name := ToClassName(p)
		if !classNamePattern.MatchString(name) {
			return QualifiedName{}, errors.Wrapf(ErrInvalidName, "%q in %q", p, arg)
		}
		parts[i] = name
	}
	return QualifiedName{Sub: parts[:len(parts)-1], Name: parts[len(parts)-1]}, nil
}

// ToClassName is the per-segment conversion used by ParseQualifiedName.
func ToClassName(segment string) string {
	segment = strings.TrimSpace(segment)
	if strings.ContainsAny(segment, "_- .") {
		return strcase.ToCamel(segment)
	}
	r, size := utf8.DecodeRuneInString(segment)
	if r == utf8.RuneError {
		return segment
	}
	return string(unicode.ToUpper(r)) + segment[size:]
}

// Namespace returns base extended with the sub-namespaces.
func (q QualifiedName) Namespace(base string) string {
	parts := []string{strings.Trim(base, `\`)}
	parts = append(parts, q.Sub...)
	return strings.Trim(strings.Join(parts, `\`), `\`)
}

// FQCN returns the fully qualified class name under base.
func (q QualifiedName) FQCN(base string) string {
	if ns := q.Namespace(base); ns != "" {
		return ns + `\` + q.Name
	}
	return q.Name
}

// File returns the path of the class file under baseDir.
func (q QualifiedName) File(baseDir string) string {
	parts := append([]string{baseDir}, q.Sub...)
	return filepath.Join(append(parts, q.Name+".php")...)
}

// String renders the name the way it is typed on the command line.
func (q QualifiedName) String() string {
	return strings.Join(append(append([]string{}, q.Sub...), q.Name), "/")
}
