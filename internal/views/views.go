// Package views prints binders and songs as plain tables for the list
// subcommands.
package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Paintersrp/binders/internal/backup"
	"github.com/Paintersrp/binders/internal/library"
)

var (
	headerColor   = color.New(color.Bold, color.Underline)
	directorColor = color.New(color.FgYellow, color.Bold)
	missingColor  = color.New(color.FgHiBlack)
)

const maxColWidth = 60

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = maxColWidth
	tbl.Wrap = false
	return tbl
}

// Binders writes one row per binder. counts maps binder id to its number of
// songs; a nil map omits the column.
func Binders(w io.Writer, binders []library.Binder, counts map[int64]int) error {
	if len(binders) == 0 {
		_, err := fmt.Fprintln(w, "No binders yet.")
		return err
	}

	tbl := newTable()
	if counts != nil {
		tbl.AddRow(headerColor.Sprint("NUMBER"), headerColor.Sprint("LABEL"), headerColor.Sprint("SONGS"))
	} else {
		tbl.AddRow(headerColor.Sprint("NUMBER"), headerColor.Sprint("LABEL"))
	}

	for _, b := range binders {
		number := fmt.Sprintf("%02d", b.Number)
		if b.IsDirector() {
			number = directorColor.Sprint(number)
		}
		if counts != nil {
			tbl.AddRow(number, b.Label, strconv.Itoa(counts[b.ID]))
		} else {
			tbl.AddRow(number, b.Label)
		}
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// Songs writes one row per song with its id, so the id can be passed to the
// song subcommands.
func Songs(w io.Writer, songs []library.Song) error {
	if len(songs) == 0 {
		_, err := fmt.Fprintln(w, "No songs to display.")
		return err
	}

	tbl := newTable()
	tbl.AddRow(headerColor.Sprint("ID"), headerColor.Sprint("TITLE"), headerColor.Sprint("COMPOSER"), headerColor.Sprint("LINK"))
	for _, s := range songs {
		composer := strings.TrimSpace(s.Composer)
		if composer == "" {
			composer = missingColor.Sprint("-")
		}
		link := strings.TrimSpace(s.Link)
		if link == "" {
			link = missingColor.Sprint("-")
		}
		tbl.AddRow(strconv.FormatInt(s.ID, 10), s.Title, composer, link)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}

func Backups(w io.Writer, objects []backup.Object) error {
	if len(objects) == 0 {
		_, err := fmt.Fprintln(w, "No backups found.")
		return err
	}

	tbl := newTable()
	tbl.AddRow(headerColor.Sprint("KEY"), headerColor.Sprint("SIZE"), headerColor.Sprint("MODIFIED"))
	for _, o := range objects {
		tbl.AddRow(o.Key, strconv.FormatInt(o.Size, 10), o.Modified.Local().Format(time.DateTime))
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}
