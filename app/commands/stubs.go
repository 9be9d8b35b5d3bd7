package commands

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

//go:embed stubs/*.tmpl
var stubFiles embed.FS

var stubTemplates = template.Must(
	template.New("stubs").Funcs(sprig.TxtFuncMap()).ParseFS(stubFiles, "stubs/*.tmpl"),
)

// ListenerShape selects how the listener receives the event.
type ListenerShape int

const (
	// ShapeInvokable listeners implement __invoke.
	ShapeInvokable ListenerShape = iota
	// ShapeHandle listeners implement a handle method.
	ShapeHandle
)

// Method is the PHP method name for the shape.
func (s ListenerShape) Method() string {
	if s == ShapeHandle {
		return "handle"
	}
	return "__invoke"
}

func (s ListenerShape) String() string {
	if s == ShapeHandle {
		return "handle"
	}
	return "invokable"
}

// EventStub is the data of the event class template.
type EventStub struct {
	Namespace string
	Class     string
}

// ListenerStub is the data of the listener class template.
type ListenerStub struct {
	Namespace  string
	Class      string
	EventFQCN  string
	EventClass string
	Shape      ListenerShape
}

// Method is exposed to the template.
func (l ListenerStub) Method() string { return l.Shape.Method() }

func renderStub(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := stubTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "rendering %s", name)
	}
	return buf.String(), nil
}

// RenderEventStub returns the PHP source of a new event class.
func RenderEventStub(stub EventStub) (string, error) {
	return renderStub("event.php.tmpl", stub)
}

// RenderListenerStub returns the PHP source of a new listener class.
func RenderListenerStub(stub ListenerStub) (string, error) {
	return renderStub("listener.php.tmpl", stub)
}

// WriteStub creates path with content, making parent directories first. An
// existing file is left alone and reported with ErrStubExists.
func WriteStub(path, content string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Info().Str("dir", dir).Msg("creating directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		return errors.Wrap(ErrStubExists, path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	log.Debug().Str("file", path).Msg("stub written")
	return nil
}
