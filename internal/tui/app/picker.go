package app

import (
	"context"

	"github.com/Paintersrp/binders/internal/library"
)

// pickerItem is either the synthetic "create a new song" entry or an
// existing song that is not yet in the binder.
type pickerItem struct {
	create bool
	song   library.Song
}

type picker struct {
	binderID int64
	items    []pickerItem
	selected int
	checked  map[int64]struct{}
	director map[int64]struct{}
}

func loadPicker(ctx context.Context, gw Gateway, binderID int64) (*picker, error) {
	available, err := gw.ListAvailableSongs(ctx, binderID)
	if err != nil {
		return nil, err
	}
	director, err := gw.DirectorSongIDs(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]pickerItem, 0, len(available)+1)
	items = append(items, pickerItem{create: true})
	for _, s := range available {
		items = append(items, pickerItem{song: s})
	}

	return &picker{
		binderID: binderID,
		items:    items,
		checked:  make(map[int64]struct{}),
		director: director,
	}, nil
}

func (p *picker) len() int { return len(p.items) }

func (p *picker) move(offset int) {
	if len(p.items) == 0 {
		return
	}
	p.selected = clamp(p.selected+offset, 0, len(p.items)-1)
}

func (p *picker) selectFirst() {
	p.selected = 0
}

func (p *picker) selectLast() {
	if len(p.items) > 0 {
		p.selected = len(p.items) - 1
	}
}

func (p *picker) current() (pickerItem, bool) {
	if p.selected < 0 || p.selected >= len(p.items) {
		return pickerItem{}, false
	}
	return p.items[p.selected], true
}

func (p *picker) isChecked(i int) bool {
	if i < 0 || i >= len(p.items) || p.items[i].create {
		return false
	}
	_, ok := p.checked[p.items[i].song.ID]
	return ok
}

// inDirector reports whether the song is already in the director's binder.
func (p *picker) inDirector(s library.Song) bool {
	_, ok := p.director[s.ID]
	return ok
}

func (p *picker) toggleCurrent() {
	item, ok := p.current()
	if !ok || item.create {
		return
	}
	if _, on := p.checked[item.song.ID]; on {
		delete(p.checked, item.song.ID)
	} else {
		p.checked[item.song.ID] = struct{}{}
	}
}

// checkedSongs returns the checked songs in list order.
func (p *picker) checkedSongs() []library.Song {
	var out []library.Song
	for _, item := range p.items {
		if item.create {
			continue
		}
		if _, ok := p.checked[item.song.ID]; ok {
			out = append(out, item.song)
		}
	}
	return out
}
