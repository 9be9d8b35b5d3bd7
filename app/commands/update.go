package commands

import (
	"os"
	"path/filepath"

	"github.com/Guerrilla-Interactive/eventgen-go-cli/app/eventsfile"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog/log"
)

// Registration is one listener to register for one event. The prefixes are
// the fully qualified base namespaces the names are resolved against.
type Registration struct {
	Event           QualifiedName
	Listener        QualifiedName
	EventsPrefix    string
	ListenersPrefix string
}

// UpdateOptions tune UpdateEventsFile.
type UpdateOptions struct {
	// DryRun computes the new content and its diff without writing.
	DryRun bool
}

// UpdateResult describes what UpdateEventsFile did.
type UpdateResult struct {
	Path    string
	Changed bool
	Written bool
	Diff    string
}

// UpdateEventsFile adds reg to the events file at path: the listener and
// event imports are merged into their grouped imports and the listener is
// added to the event's list in the listen block.
//
// The file is read once and written once, after every merge succeeded. A
// file that ends up unchanged is not written.
func UpdateEventsFile(path string, reg Registration, opts UpdateOptions) (UpdateResult, error) {
	result := UpdateResult{Path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return result, errors.Wrap(ErrTargetFileNotFound, path)
	}
	if err != nil {
		return result, errors.Wrapf(err, "failed to read %s", path)
	}
	original := string(data)

	listenerNS := reg.Listener.Namespace(reg.ListenersPrefix)
	eventNS := reg.Event.Namespace(reg.EventsPrefix)

	buf, err := eventsfile.MergeImport(original, listenerNS, reg.Listener.Name)
	if err != nil {
		return result, errors.Wrapf(err, "%s: listener import", path)
	}
	buf, err = eventsfile.MergeImport(buf, eventNS, reg.Event.Name)
	if err != nil {
		return result, errors.Wrapf(err, "%s: event import", path)
	}
	buf, err = eventsfile.MergeMapping(buf, reg.Event.Name, reg.Listener.Name, eventNS, listenerNS)
	if err != nil {
		return result, errors.Wrapf(err, "%s: listen block", path)
	}

	result.Changed = buf != original
	if !result.Changed {
		log.Info().Str("file", path).Msg("events file already up to date")
		return result, nil
	}

	if opts.DryRun {
		result.Diff, err = UnifiedDiff(path, original, buf)
		return result, err
	}

	if err := WriteFileAtomic(path, []byte(buf)); err != nil {
		return result, err
	}
	result.Written = true
	log.Info().Str("file", path).
		Str("event", reg.Event.FQCN(reg.EventsPrefix)).
		Str("listener", reg.Listener.FQCN(reg.ListenersPrefix)).
		Msg("events file updated")
	return result, nil
}

// UnifiedDiff renders the change from before to after for display.
func UnifiedDiff(path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (updated)",
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrap(err, "computing diff")
	}
	return diff, nil
}

// WriteFileAtomic replaces path with data through a temporary file in the
// same directory. On failure the original file is untouched and the error
// wraps ErrWriteFailure.
func WriteFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(ErrWriteFailure, "%s: %v", path, err)
	}
	return nil
}
