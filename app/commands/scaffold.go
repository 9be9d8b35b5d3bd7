package commands

import (
	"os"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/eventsfile"
	config "github.com/Guerrilla-Interactive/eventgen-go-cli/internal"
	"github.com/pkg/errors"
)

// File statuses reported back to the user.
const (
	StatusCreated     = "created"
	StatusExists      = "exists"
	StatusUpdated     = "updated"
	StatusUnchanged   = "unchanged"
	StatusWouldCreate = "would create"
	StatusWouldUpdate = "would update"
)

// FileChange is one file touched (or left alone) by a command.
type FileChange struct {
	Path   string
	Status string
}

// Layout is where event and listener classes live in a project.
type Layout struct {
	Root            string
	EventsFile      string
	EventsDir       string
	ListenersDir    string
	EventsPrefix    string
	ListenersPrefix string
}

// NewLayout resolves cfg against the project root.
func NewLayout(root string, cfg config.Config) Layout {
	cfg = cfg.WithDefaults()
	return Layout{
		Root:            root,
		EventsFile:      cfg.EventsFilePath(root),
		EventsDir:       cfg.EventsDir(root),
		ListenersDir:    cfg.ListenersDir(root),
		EventsPrefix:    cfg.EventsPrefix(),
		ListenersPrefix: cfg.ListenersPrefix(),
	}
}

// Registration pairs listener with event under this layout.
func (l Layout) Registration(event, listener QualifiedName) Registration {
	return Registration{
		Event:           event,
		Listener:        listener,
		EventsPrefix:    l.EventsPrefix,
		ListenersPrefix: l.ListenersPrefix,
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeEvent writes the class file for event. An existing file is not
// touched and yields ErrStubExists.
func MakeEvent(l Layout, event QualifiedName, dryRun bool) (FileChange, error) {
	path := event.File(l.EventsDir)
	if exists(path) {
		return FileChange{Path: path, Status: StatusExists}, errors.Wrap(ErrStubExists, path)
	}
	if dryRun {
		return FileChange{Path: path, Status: StatusWouldCreate}, nil
	}
	src, err := RenderEventStub(EventStub{
		Namespace: event.Namespace(l.EventsPrefix),
		Class:     event.Name,
	})
	if err != nil {
		return FileChange{Path: path}, err
	}
	if err := WriteStub(path, src); err != nil {
		return FileChange{Path: path}, err
	}
	return FileChange{Path: path, Status: StatusCreated}, nil
}

// MakeListener writes the listener class and, when missing, the event class.
// Files already present are reported with StatusExists and left alone.
func MakeListener(l Layout, listener, event QualifiedName, shape ListenerShape, dryRun bool) ([]FileChange, error) {
	var changes []FileChange

	listenerPath := listener.File(l.ListenersDir)
	switch {
	case exists(listenerPath):
		changes = append(changes, FileChange{Path: listenerPath, Status: StatusExists})
	case dryRun:
		changes = append(changes, FileChange{Path: listenerPath, Status: StatusWouldCreate})
	default:
		src, err := RenderListenerStub(ListenerStub{
			Namespace:  listener.Namespace(l.ListenersPrefix),
			Class:      listener.Name,
			EventFQCN:  event.FQCN(l.EventsPrefix),
			EventClass: event.Name,
			Shape:      shape,
		})
		if err != nil {
			return changes, err
		}
		if err := WriteStub(listenerPath, src); err != nil {
			return changes, err
		}
		changes = append(changes, FileChange{Path: listenerPath, Status: StatusCreated})
	}

	change, err := MakeEvent(l, event, dryRun)
	if errors.Is(err, ErrStubExists) {
		err = nil
	}
	changes = append(changes, change)
	return changes, err
}

// Register runs UpdateEventsFile for the pair and reports the events file.
func Register(l Layout, event, listener QualifiedName, opts UpdateOptions) (FileChange, UpdateResult, error) {
	res, err := UpdateEventsFile(l.EventsFile, l.Registration(event, listener), opts)
	change := FileChange{Path: l.EventsFile}
	switch {
	case err != nil:
	case !res.Changed:
		change.Status = StatusUnchanged
	case opts.DryRun:
		change.Status = StatusWouldUpdate
	default:
		change.Status = StatusUpdated
	}
	return change, res, err
}

// ListRegistrations parses the listen block of the events file.
func ListRegistrations(l Layout) (eventsfile.RegistrationMap, bool, error) {
	data, err := os.ReadFile(l.EventsFile)
	if os.IsNotExist(err) {
		return eventsfile.RegistrationMap{}, false, errors.Wrap(ErrTargetFileNotFound, l.EventsFile)
	}
	if err != nil {
		return eventsfile.RegistrationMap{}, false, errors.Wrapf(err, "failed to read %s", l.EventsFile)
	}
	m, found, err := eventsfile.ParseListenBlock(string(data))
	if err != nil {
		return m, false, errors.Wrap(err, l.EventsFile)
	}
	return m, found, nil
}
