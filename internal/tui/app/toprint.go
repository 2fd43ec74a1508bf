package app

import (
	"fmt"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/report"
)

type printView int

const (
	printByBinder printView = iota
	printBySong
)

const (
	pointerSelected = "▶ "
	pointerBlank    = "  "

	// scrollLead keeps a few rows above the cursor visible.
	scrollLead = 3
)

type binderRow struct {
	header bool
	text   string
	binder int
	song   int
}

type songRow struct {
	text string
	song *library.Song
}

// toPrintScreen holds one print-review session: the reconciliation report,
// the two row projections built from it, and the cursor.
type toPrintScreen struct {
	directorFound bool
	report        *report.Report
	view          printView
	binderRows    []binderRow
	songRows      []songRow
	selected      int
	scroll        int
}

func newToPrintScreen(r *report.Report, directorFound bool) *toPrintScreen {
	if r == nil {
		r = &report.Report{}
	}
	s := &toPrintScreen{directorFound: directorFound, report: r}
	s.refreshBinderRows()
	s.refreshSongRows()
	return s
}

func (s *toPrintScreen) title() string {
	if s.view == printBySong {
		return "To Print • By Song"
	}
	return "To Print • By Binder"
}

// toggleView switches projections and resets the cursor.
func (s *toPrintScreen) toggleView() {
	if !s.directorFound {
		return
	}
	if s.view == printByBinder {
		s.view = printBySong
	} else {
		s.view = printByBinder
	}
	s.selected = 0
	s.scroll = 0
	s.updateScroll()
}

func (s *toPrintScreen) currentLen() int {
	if s.view == printBySong {
		return len(s.songRows)
	}
	return len(s.binderRows)
}

func (s *toPrintScreen) move(delta int) {
	if !s.directorFound {
		return
	}
	n := s.currentLen()
	if n == 0 {
		s.selected = 0
		s.scroll = 0
		return
	}
	s.selected = clamp(s.selected+delta, 0, n-1)
	s.updateScroll()
}

func (s *toPrintScreen) selectFirst() {
	if !s.directorFound {
		return
	}
	s.selected = 0
	s.updateScroll()
}

func (s *toPrintScreen) selectLast() {
	if !s.directorFound {
		return
	}
	s.selected = max(s.currentLen()-1, 0)
	s.updateScroll()
}

func (s *toPrintScreen) maxScroll() int {
	if !s.directorFound {
		return 0
	}
	return max(s.currentLen()-1, 0)
}

func (s *toPrintScreen) updateScroll() {
	if !s.directorFound || s.currentLen() == 0 {
		s.scroll = 0
		s.selected = 0
		return
	}
	s.scroll = min(max(s.selected-scrollLead, 0), s.maxScroll())
}

// toggleCurrent flips the checkbox under the cursor. It only acts on song
// rows of the by-binder view; ok is false otherwise.
func (s *toPrintScreen) toggleCurrent() (checked, ok bool) {
	if !s.directorFound || s.view != printByBinder {
		return false, false
	}
	if s.selected < 0 || s.selected >= len(s.binderRows) {
		return false, false
	}
	row := s.binderRows[s.selected]
	if row.header {
		return false, false
	}

	checked, err := s.report.Toggle(row.binder, row.song)
	if err != nil {
		return false, false
	}
	s.refreshSongRows()
	s.refreshBinderRows()
	return checked, true
}

func (s *toPrintScreen) hasPendingChanges() bool {
	return s.report.PendingChanges() > 0
}

func (s *toPrintScreen) pendingAssignments() []report.Assignment {
	return s.report.Pending()
}

func (s *toPrintScreen) refreshBinderRows() {
	if !s.directorFound {
		s.binderRows = nil
		return
	}

	var rows []binderRow
	for bi, b := range s.report.Binders {
		rows = append(rows, binderRow{header: true, text: b.Heading(), binder: bi, song: -1})
		for si, m := range b.Songs {
			box := "[ ]"
			if m.Checked {
				box = "[x]"
			}
			rows = append(rows, binderRow{
				text:   fmt.Sprintf("%s %s", box, m.Song.DisplayTitle()),
				binder: bi,
				song:   si,
			})
		}
	}
	s.binderRows = rows

	if s.view == printByBinder {
		s.clampSelection()
	}
}

func (s *toPrintScreen) refreshSongRows() {
	var rows []songRow
	for _, n := range s.report.Needs() {
		song := n.Song
		rows = append(rows, songRow{text: n.String(), song: &song})
	}
	if len(rows) == 0 {
		rows = append(rows, songRow{text: report.NoSongsNeeded})
	}
	s.songRows = rows

	if s.view == printBySong {
		s.clampSelection()
	}
}

func (s *toPrintScreen) clampSelection() {
	n := s.currentLen()
	if n == 0 {
		s.selected = 0
	} else if s.selected >= n {
		s.selected = n - 1
	}
	s.updateScroll()
}

// currentSong is the song under the cursor in the by-song view.
func (s *toPrintScreen) currentSong() (library.Song, bool) {
	if !s.directorFound || s.view != printBySong {
		return library.Song{}, false
	}
	if s.selected < 0 || s.selected >= len(s.songRows) {
		return library.Song{}, false
	}
	row := s.songRows[s.selected]
	if row.song == nil {
		return library.Song{}, false
	}
	return *row.song, true
}

// lines renders the active projection with the cursor pointer.
func (s *toPrintScreen) lines() []string {
	if !s.directorFound {
		return nil
	}

	if s.view == printBySong {
		out := make([]string, 0, len(s.songRows))
		for i, row := range s.songRows {
			out = append(out, s.pointer(i)+row.text)
		}
		return out
	}

	if len(s.binderRows) == 0 {
		return []string{s.pointer(0) + report.NothingToPrint}
	}
	out := make([]string, 0, len(s.binderRows))
	for i, row := range s.binderRows {
		if row.header {
			out = append(out, s.pointer(i)+row.text)
		} else {
			out = append(out, s.pointer(i)+"  "+row.text)
		}
	}
	return out
}

func (s *toPrintScreen) pointer(i int) string {
	if i == s.selected {
		return pointerSelected
	}
	return pointerBlank
}
