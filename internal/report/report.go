// Package report reconciles every binder against the director's binder and
// tracks which missing songs have been marked as added during a print run.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Paintersrp/binders/internal/library"
)

// MissingSong is a director song a binder lacks. Checked marks it as
// printed and ready to be linked.
type MissingSong struct {
	Song    library.Song
	Checked bool
}

type BinderReport struct {
	BinderID int64
	Number   int64
	Label    string
	Songs    []MissingSong
}

func (b BinderReport) Heading() string {
	return fmt.Sprintf("Binder %02d • %s", b.Number, b.Label)
}

// SongNeed counts the binders that still need a copy of Song.
type SongNeed struct {
	Song   library.Song
	Needed int
}

func (n SongNeed) String() string {
	unit := "copies"
	if n.Needed == 1 {
		unit = "copy"
	}
	return fmt.Sprintf("%s  (%d %s)", n.Song.DisplayTitle(), n.Needed, unit)
}

// Assignment is a pending (binder, song) link.
type Assignment struct {
	BinderID int64
	SongID   int64
}

// Holding is a binder together with the songs currently linked to it.
type Holding struct {
	Binder library.Binder
	Songs  []library.Song
}

type Report struct {
	Binders []BinderReport
	totals  []SongNeed
	pending int
}

// Build computes, for every holding, the director songs it is missing.
// Holdings with nothing missing are left out. Holdings for the director's
// own binder are skipped.
func Build(director []library.Song, holdings []Holding) *Report {
	r := &Report{}
	index := make(map[int64]int)

	for _, h := range holdings {
		if h.Binder.IsDirector() {
			continue
		}

		have := make(map[int64]struct{}, len(h.Songs))
		for _, s := range h.Songs {
			have[s.ID] = struct{}{}
		}

		var missing []MissingSong
		for _, s := range director {
			if _, ok := have[s.ID]; ok {
				continue
			}
			missing = append(missing, MissingSong{Song: s})

			if i, ok := index[s.ID]; ok {
				r.totals[i].Needed++
			} else {
				index[s.ID] = len(r.totals)
				r.totals = append(r.totals, SongNeed{Song: s, Needed: 1})
			}
		}

		if len(missing) > 0 {
			r.Binders = append(r.Binders, BinderReport{
				BinderID: h.Binder.ID,
				Number:   h.Binder.Number,
				Label:    h.Binder.Label,
				Songs:    missing,
			})
		}
	}
	return r
}

// SongLister loads the songs linked to a binder.
type SongLister interface {
	ListBinderSongs(ctx context.Context, binderID int64) ([]library.Song, error)
}

// Load fetches the director's songs and every other binder's songs and
// builds the report. The boolean is false when no director's binder exists.
func Load(ctx context.Context, src SongLister, binders []library.Binder) (*Report, bool, error) {
	director, ok := library.FindDirector(binders)
	if !ok {
		return &Report{}, false, nil
	}

	directorSongs, err := src.ListBinderSongs(ctx, director.ID)
	if err != nil {
		return nil, true, err
	}

	holdings := make([]Holding, 0, len(binders))
	for _, b := range binders {
		if b.ID == director.ID {
			continue
		}
		songs, err := src.ListBinderSongs(ctx, b.ID)
		if err != nil {
			return nil, true, err
		}
		holdings = append(holdings, Holding{Binder: b, Songs: songs})
	}

	return Build(directorSongs, holdings), true, nil
}

// Toggle flips the checkbox of one missing song and returns its new state.
// Checking lowers the song's needed count by one, unchecking raises it,
// and the count never drops below zero.
func (r *Report) Toggle(binder, song int) (bool, error) {
	if binder < 0 || binder >= len(r.Binders) {
		return false, fmt.Errorf("binder index %d out of range", binder)
	}
	songs := r.Binders[binder].Songs
	if song < 0 || song >= len(songs) {
		return false, fmt.Errorf("song index %d out of range", song)
	}

	entry := &songs[song]
	entry.Checked = !entry.Checked

	if entry.Checked {
		r.pending++
		r.adjust(entry.Song.ID, -1)
	} else {
		if r.pending > 0 {
			r.pending--
		}
		r.adjust(entry.Song.ID, 1)
	}
	return entry.Checked, nil
}

func (r *Report) adjust(songID int64, delta int) {
	for i := range r.totals {
		if r.totals[i].Song.ID != songID {
			continue
		}
		r.totals[i].Needed = max(r.totals[i].Needed+delta, 0)
		return
	}
}

// PendingChanges is the number of checked rows.
func (r *Report) PendingChanges() int {
	return r.pending
}

// Pending returns the checked (binder, song) pairs in report order.
func (r *Report) Pending() []Assignment {
	var out []Assignment
	for _, b := range r.Binders {
		for _, m := range b.Songs {
			if m.Checked {
				out = append(out, Assignment{BinderID: b.BinderID, SongID: m.Song.ID})
			}
		}
	}
	return out
}

// Needs returns the songs still needed by at least one binder, sorted by
// title then composer, ignoring case.
func (r *Report) Needs() []SongNeed {
	out := make([]SongNeed, 0, len(r.totals))
	for _, n := range r.totals {
		if n.Needed > 0 {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Song, out[j].Song
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if at != bt {
			return at < bt
		}
		return strings.ToLower(a.Composer) < strings.ToLower(b.Composer)
	})
	return out
}

// needed returns the current needed count for songID, or zero.
func (r *Report) needed(songID int64) int {
	for _, n := range r.totals {
		if n.Song.ID == songID {
			return n.Needed
		}
	}
	return 0
}
