package backup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

func newTestManager(opts ...Option) *Manager {
	fs := afero.NewMemMapFs()
	return New(fs, append([]Option{WithDir("/backups")}, opts...)...)
}

func TestCreate_CopiesDocument(t *testing.T) {
	m := newTestManager()
	if err := afero.WriteFile(m.fs, "/cfg/runr.toml", []byte("[commands]\n"), 0600); err != nil {
		t.Fatal(err)
	}

	id, err := m.Create("/cfg/runr.toml")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned empty ID for an existing document")
	}

	data, err := afero.ReadFile(m.fs, "/backups/"+id+".toml")
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(data) != "[commands]\n" {
		t.Errorf("backup content = %q, want original document", data)
	}
}

func TestCreate_MissingSourceIsNoop(t *testing.T) {
	m := newTestManager()

	id, err := m.Create("/cfg/runr.toml")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != "" {
		t.Errorf("Create() = %q, want empty ID for a missing document", id)
	}

	ids, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("List() = %v, want no backups", ids)
	}
}

func TestList_NewestFirst(t *testing.T) {
	m := newTestManager()
	for _, id := range []string{"20260101T100000", "20260301T100000", "20260201T100000"} {
		if err := afero.WriteFile(m.fs, "/backups/"+id+".toml", []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"20260301T100000", "20260201T100000", "20260101T100000"}
	if len(ids) != len(want) {
		t.Fatalf("List() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestList_NoDirectory(t *testing.T) {
	m := newTestManager()

	ids, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("List() = %v, want empty", ids)
	}
}

func TestCreate_PrunesOldBackups(t *testing.T) {
	m := newTestManager(WithRetention(3))
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("2026010%dT100000", i+1)
		if err := afero.WriteFile(m.fs, "/backups/"+id+".toml", []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := afero.WriteFile(m.fs, "/cfg/runr.toml", []byte("y"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Create("/cfg/runr.toml"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ids, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 3 {
		t.Errorf("retention should keep 3 backups, got %d: %v", len(ids), ids)
	}
	if ids[len(ids)-1] == "20260101T100000" {
		t.Error("pruning should drop the oldest backups first")
	}
}

func TestRestore_Latest(t *testing.T) {
	m := newTestManager()
	if err := afero.WriteFile(m.fs, "/backups/20260101T100000.toml", []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(m.fs, "/backups/20260201T100000.toml", []byte("new"), 0600); err != nil {
		t.Fatal(err)
	}

	id, err := m.Restore("", "/cfg/runr.toml")
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if id != "20260201T100000" {
		t.Errorf("Restore() id = %q, want the latest backup", id)
	}

	data, err := afero.ReadFile(m.fs, "/cfg/runr.toml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("restored content = %q, want %q", data, "new")
	}
}

func TestRestore_ByID(t *testing.T) {
	m := newTestManager()
	if err := afero.WriteFile(m.fs, "/backups/20260101T100000.toml", []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(m.fs, "/backups/20260201T100000.toml", []byte("new"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Restore("20260101T100000", "/cfg/runr.toml"); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	data, err := afero.ReadFile(m.fs, "/cfg/runr.toml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Errorf("restored content = %q, want %q", data, "old")
	}
}

func TestRestore_NoBackups(t *testing.T) {
	m := newTestManager()

	if _, err := m.Restore("", "/cfg/runr.toml"); !errors.Is(err, ErrNoBackupsFound) {
		t.Errorf("Restore() error = %v, want ErrNoBackupsFound", err)
	}
	if _, err := m.Restore("20260101T100000", "/cfg/runr.toml"); !errors.Is(err, ErrNoBackupsFound) {
		t.Errorf("Restore(id) error = %v, want ErrNoBackupsFound", err)
	}
}

func TestCreate_SameSecondDoesNotOverwrite(t *testing.T) {
	m := newTestManager()
	if err := afero.WriteFile(m.fs, "/cfg/runr.toml", []byte("first"), 0600); err != nil {
		t.Fatal(err)
	}

	first, err := m.Create("/cfg/runr.toml")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := afero.WriteFile(m.fs, "/cfg/runr.toml", []byte("second"), 0600); err != nil {
		t.Fatal(err)
	}
	second, err := m.Create("/cfg/runr.toml")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first == second {
		t.Fatalf("both backups got ID %q", first)
	}

	ids, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("List() = %v, want both backups kept", ids)
	}

	data, err := afero.ReadFile(m.fs, "/backups/"+first+".toml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("earlier backup content = %q, want %q", data, "first")
	}
}

func TestNextID_SuffixesCollisions(t *testing.T) {
	m := newTestManager()
	for _, name := range []string{"20260101T100000.toml", "20260101T100000-1.toml"} {
		if err := afero.WriteFile(m.fs, "/backups/"+name, []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	id, err := m.nextID("20260101T100000")
	if err != nil {
		t.Fatalf("nextID() error = %v", err)
	}
	if id != "20260101T100000-2" {
		t.Errorf("nextID() = %q, want %q", id, "20260101T100000-2")
	}
}
