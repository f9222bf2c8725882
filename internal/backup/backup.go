// Package backup keeps timestamped copies of the config document so
// destructive operations can be undone.
package backup

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/tmajors/runr/internal/paths"
)

// DefaultRetention is the number of backups kept before pruning.
const DefaultRetention = 5

// ErrNoBackupsFound indicates no backups exist to restore from.
var ErrNoBackupsFound = errors.New("no backups found")

// Manager creates, lists and restores document backups under a single
// directory. IDs are creation timestamps, so lexical order is creation
// order.
type Manager struct {
	fs        afero.Fs
	dir       string
	retention int
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir overrides the backup directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithRetention sets how many backups Create keeps.
func WithRetention(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// New returns a Manager over fs, defaulting to the runr backups
// directory and DefaultRetention.
func New(fs afero.Fs, opts ...Option) *Manager {
	m := &Manager{
		fs:        fs,
		dir:       Dir(),
		retention: DefaultRetention,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the default backup directory, next to the config document.
func Dir() string {
	return filepath.Join(paths.ConfigDir(), "backups")
}

// Create copies the document at src into the backup directory and
// prunes old backups. Returns the new backup's ID, or "" when src does
// not exist and there is nothing to back up.
func (m *Manager) Create(src string) (string, error) {
	exists, err := afero.Exists(m.fs, src)
	if err != nil {
		return "", errors.Wrapf(err, "checking %s", src)
	}
	if !exists {
		return "", nil
	}

	data, err := afero.ReadFile(m.fs, src)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", src)
	}

	if err := m.fs.MkdirAll(m.dir, paths.DefaultDirPerm); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	id, err := m.nextID(time.Now().Format("20060102T150405"))
	if err != nil {
		return "", err
	}
	if err := afero.WriteFile(m.fs, m.path(id), data, paths.DefaultFilePerm); err != nil {
		return "", errors.Wrap(err, "writing backup")
	}

	if err := m.prune(); err != nil {
		return "", err
	}
	return id, nil
}

// List returns all backup IDs, newest first.
func (m *Manager) List() ([]string, error) {
	infos, err := afero.ReadDir(m.fs, m.dir)
	if err != nil {
		if exists, xerr := afero.DirExists(m.fs, m.dir); xerr == nil && !exists {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing backups")
	}

	var ids []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".toml"))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	return ids, nil
}

// Latest returns the newest backup ID, or ErrNoBackupsFound.
func (m *Manager) Latest() (string, error) {
	ids, err := m.List()
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", ErrNoBackupsFound
	}
	return ids[0], nil
}

// Restore copies the backup with the given ID over dst. An empty ID
// restores the latest backup. Returns the restored ID.
func (m *Manager) Restore(id, dst string) (string, error) {
	if id == "" {
		latest, err := m.Latest()
		if err != nil {
			return "", err
		}
		id = latest
	}

	data, err := afero.ReadFile(m.fs, m.path(id))
	if err != nil {
		return "", errors.Mark(
			errors.Wrapf(err, "reading backup %s", id),
			ErrNoBackupsFound,
		)
	}

	if err := m.fs.MkdirAll(filepath.Dir(dst), paths.DefaultDirPerm); err != nil {
		return "", errors.Wrap(err, "creating config directory")
	}
	if err := afero.WriteFile(m.fs, dst, data, paths.DefaultFilePerm); err != nil {
		return "", errors.Wrapf(err, "restoring backup %s", id)
	}
	return id, nil
}

// prune deletes the oldest backups beyond the retention count.
func (m *Manager) prune() error {
	ids, err := m.List()
	if err != nil {
		return err
	}
	for _, id := range ids[min(len(ids), m.retention):] {
		if err := m.fs.Remove(m.path(id)); err != nil {
			return errors.Wrapf(err, "pruning backup %s", id)
		}
	}
	return nil
}

// nextID disambiguates timestamps: two backups within the same second
// get -1, -2, ... suffixes instead of overwriting each other. The
// suffixed IDs still sort after the bare one, keeping List's
// newest-first order.
func (m *Manager) nextID(base string) (string, error) {
	id := base
	for n := 1; ; n++ {
		exists, err := afero.Exists(m.fs, m.path(id))
		if err != nil {
			return "", errors.Wrap(err, "checking backup directory")
		}
		if !exists {
			return id, nil
		}
		id = base + "-" + strconv.Itoa(n)
	}
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+".toml")
}
