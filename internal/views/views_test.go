package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/Paintersrp/binders/internal/backup"
	"github.com/Paintersrp/binders/internal/library"
)

func init() {
	color.NoColor = true
}

func TestBindersTable(t *testing.T) {
	var buf bytes.Buffer
	binders := []library.Binder{
		{ID: 1, Number: 0, Label: "Director"},
		{ID: 2, Number: 7, Label: "Sopranos"},
	}

	if err := Binders(&buf, binders, map[int64]int{1: 12, 2: 3}); err != nil {
		t.Fatalf("binders: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "NUMBER") || !strings.Contains(lines[0], "SONGS") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	fields := strings.Fields(lines[2])
	if len(fields) != 3 || fields[0] != "07" || fields[1] != "Sopranos" || fields[2] != "3" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestBindersEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Binders(&buf, nil, nil); err != nil {
		t.Fatalf("binders: %v", err)
	}
	if buf.String() != "No binders yet.\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSongsTableMarksMissingFields(t *testing.T) {
	var buf bytes.Buffer
	songs := []library.Song{{ID: 4, Title: "Gloria"}}

	if err := Songs(&buf, songs); err != nil {
		t.Fatalf("songs: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	fields := strings.Fields(lines[1])
	if len(fields) != 4 || fields[0] != "4" || fields[1] != "Gloria" || fields[2] != "-" || fields[3] != "-" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestBackupsTable(t *testing.T) {
	var buf bytes.Buffer
	objects := []backup.Object{
		{Key: "backups/binders-20240102T030405Z.sqlite", Size: 4096, Modified: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)},
	}

	if err := Backups(&buf, objects); err != nil {
		t.Fatalf("backups: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	want := []string{"backups/binders-20240102T030405Z.sqlite", "4096", "2024-01-02", "03:04:05"}
	if got := strings.Fields(lines[1]); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("row = %q, want %q", got, want)
	}

	buf.Reset()
	if err := Backups(&buf, nil); err != nil {
		t.Fatalf("backups: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No backups found." {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}
