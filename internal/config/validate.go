package config

import (
	"errors"
	"fmt"

	"github.com/tmajors/runr/internal/command"
)

// Validation errors for document anomalies. The lenient load repairs
// all of these silently; ValidateDocument surfaces them so users can
// see what a load would drop or clear.
var (
	// ErrMissingCommand indicates an entry with no command string.
	ErrMissingCommand = errors.New("entry has no command")

	// ErrUnknownType indicates an unrecognized command type tag.
	ErrUnknownType = errors.New("unknown command type")

	// ErrDanglingDefault indicates a default_key naming no entry.
	ErrDanglingDefault = errors.New("default_key names no entry")

	// ErrDanglingPreCommand indicates a pre_command naming no sibling entry.
	ErrDanglingPreCommand = errors.New("pre_command names no sibling entry")
)

// EntryError locates a validation problem within the document.
type EntryError struct {
	Context string
	Key     string
	Err     error
}

func (e *EntryError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("commands.%s: %v", e.Context, e.Err)
	}
	return fmt.Sprintf("commands.%s.entries.%s: %v", e.Context, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ValidateDocument parses raw TOML bytes and reports every structural
// anomaly the lenient load would repair. It returns nil for a clean
// document; parse failures come back as the single error.
func ValidateDocument(data []byte) []error {
	doc, err := parseDocument(data)
	if err != nil {
		return []error{err}
	}

	var errs []error
	for _, name := range sortedKeys(doc.Commands) {
		docCfg := doc.Commands[name]

		for _, key := range sortedKeys(docCfg.Entries) {
			entry := docCfg.Entries[key]

			if entry.Command == "" {
				errs = append(errs, &EntryError{Context: name, Key: key, Err: ErrMissingCommand})
			}
			if entry.Type != "" && !command.ValidType(command.Type(entry.Type)) {
				errs = append(errs, &EntryError{
					Context: name,
					Key:     key,
					Err:     fmt.Errorf("%w: %q", ErrUnknownType, entry.Type),
				})
			}
			if entry.PreCommand != "" {
				if _, ok := docCfg.Entries[entry.PreCommand]; !ok || entry.PreCommand == key {
					errs = append(errs, &EntryError{
						Context: name,
						Key:     key,
						Err:     fmt.Errorf("%w: %q", ErrDanglingPreCommand, entry.PreCommand),
					})
				}
			}
		}

		if docCfg.DefaultKey != "" {
			if _, ok := docCfg.Entries[docCfg.DefaultKey]; !ok {
				errs = append(errs, &EntryError{
					Context: name,
					Err:     fmt.Errorf("%w: %q", ErrDanglingDefault, docCfg.DefaultKey),
				})
			}
		}
	}

	return errs
}
