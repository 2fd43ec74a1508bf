// Package app implements the binder manager's terminal UI: the screens, the
// interaction modes layered over them, and the key dispatch that moves
// between them.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/binders/internal/library"
	"github.com/Paintersrp/binders/internal/report"
)

// GridColumns is the number of binder cards per grid row.
const GridColumns = 4

// Gateway is the persistence the controller needs. Every call blocks until
// the store answers.
type Gateway interface {
	ListBinders(ctx context.Context) ([]library.Binder, error)
	CreateBinder(ctx context.Context, number int64, label string) (library.Binder, error)
	UpdateBinder(ctx context.Context, id, number int64, label string) error
	DeleteBinder(ctx context.Context, id int64) error
	ListSongs(ctx context.Context) ([]library.Song, error)
	ListComposers(ctx context.Context) ([]string, error)
	ListBinderSongs(ctx context.Context, binderID int64) ([]library.Song, error)
	ListAvailableSongs(ctx context.Context, binderID int64) ([]library.Song, error)
	DirectorSongIDs(ctx context.Context) (map[int64]struct{}, error)
	CreateSong(ctx context.Context, title, composer, link string) (library.Song, error)
	UpdateSong(ctx context.Context, id int64, title, composer, link string) error
	LinkSong(ctx context.Context, binderID, songID int64) error
	UnlinkSong(ctx context.Context, binderID, songID int64) error
	DeleteSong(ctx context.Context, id int64) error
}

// Opener hands a song link to the operating system.
type Opener interface {
	Open(target string) error
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusError
)

type status struct {
	text string
	kind statusKind
}

// App is the controller. It owns the active screen, the active mode, the
// binder and composer caches, and the status line.
type App struct {
	ctx    context.Context
	gw     Gateway
	opener Opener
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	binders   []library.Binder
	selected  int
	composers []string

	screen Screen
	mode   Mode
	status *status

	savedSearch *searchState

	width  int
	height int
}

type Option func(*App)

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// New loads the binders and composers. Failures here are fatal to the UI.
func New(ctx context.Context, gw Gateway, open Opener, opts ...Option) (*App, error) {
	a := &App{
		ctx:    ctx,
		gw:     gw,
		opener: open,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:   newKeyMap(),
		help:   help.New(),
		screen: bindersScreen{},
		mode:   normalMode{},
	}
	for _, opt := range opts {
		opt(a)
	}

	binders, err := gw.ListBinders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load binders: %w", err)
	}
	composers, err := gw.ListComposers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load composers: %w", err)
	}

	a.binders = binders
	a.composers = composers
	return a, nil
}

// HandleKey routes one key event to the handler for the current screen and
// mode and reports whether the application should exit. The mode is taken
// out before dispatch and replaced by whatever the handler returns.
func (a *App) HandleKey(msg tea.KeyMsg) bool {
	mode := a.mode
	a.mode = normalMode{}

	var quit bool
	switch m := mode.(type) {
	case normalMode:
		mode, quit = a.handleNormal(msg)
	case addingBinderMode:
		mode = a.handleAddBinder(msg, m)
	case editingBinderMode:
		mode = a.handleEditBinder(msg, m)
	case confirmBinderDeleteMode:
		mode = a.handleConfirmBinderDelete(msg, m)
	case editingSongMode:
		mode = a.handleEditSong(msg, m)
	case confirmSongRemoveMode:
		mode = a.handleConfirmSongRemove(msg, m)
	case selectingSongMode:
		mode = a.handleSelectSong(msg, m)
	case confirmSongDeleteMode:
		mode = a.handleConfirmSongDelete(msg, m)
	case creatingSongMode:
		mode = a.handleCreateSong(msg, m)
	case confirmToPrintExitMode:
		mode, quit = a.handleConfirmToPrintExit(msg, m)
	case searchingMode:
		mode = a.handleSearch(msg, m)
	default:
		mode = normalMode{}
	}

	a.mode = mode
	return quit
}

// Screen and Mode expose the current state for rendering and tests.
func (a *App) Screen() Screen { return a.screen }
func (a *App) Mode() Mode     { return a.mode }

// Status returns the status line text, or "" when there is none.
func (a *App) Status() string {
	if a.status == nil {
		return ""
	}
	return a.status.text
}

func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
}

func (a *App) setInfo(text string) {
	a.status = &status{text: text, kind: statusInfo}
}

func (a *App) setError(text string) {
	a.status = &status{text: text, kind: statusError}
}

func (a *App) clearStatus() {
	a.status = nil
}

// fail logs err against op and shows its deepest cause in the status line.
func (a *App) fail(op string, err error, attrs ...any) string {
	msg := surfaceError(err)
	a.logger.Warn(op+" failed", append(attrs, "err", err)...)
	a.setError(msg)
	return msg
}

// surfaceError returns the message of the innermost wrapped error, which is
// the most specific cause.
func surfaceError(err error) string {
	if err == nil {
		return ""
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func (a *App) currentBinder() (library.Binder, bool) {
	if a.selected < 0 || a.selected >= len(a.binders) {
		return library.Binder{}, false
	}
	return a.binders[a.selected], true
}

// moveGrid moves the grid cursor by offset. Moves that would leave the grid
// are ignored rather than wrapped.
func (a *App) moveGrid(offset int) {
	if _, ok := a.screen.(bindersScreen); !ok || len(a.binders) == 0 {
		return
	}
	next := a.selected + offset
	if next >= 0 && next < len(a.binders) {
		a.selected = next
	}
}

// reloadBinders refetches the binders, focusing focusID when it is still
// present and otherwise keeping the cursor in range.
func (a *App) reloadBinders(focusID int64) error {
	binders, err := a.gw.ListBinders(a.ctx)
	if err != nil {
		return err
	}
	a.binders = binders
	if len(binders) == 0 {
		a.selected = 0
		return nil
	}

	if focusID != 0 {
		for i, b := range binders {
			if b.ID == focusID {
				a.selected = i
				return nil
			}
		}
	}
	if a.selected >= len(binders) {
		a.selected = len(binders) - 1
	}
	return nil
}

func (a *App) reloadComposers() error {
	composers, err := a.gw.ListComposers(a.ctx)
	if err != nil {
		return err
	}
	a.composers = composers
	return nil
}

func (a *App) openBinder(b library.Binder) error {
	songs, err := a.gw.ListBinderSongs(a.ctx, b.ID)
	if err != nil {
		return err
	}
	a.screen = newSongScreen(b, songs)
	return nil
}

// openRelativeBinder opens the binder offset places away by number,
// wrapping around at either end.
func (a *App) openRelativeBinder(offset int) error {
	current, ok := a.screen.(*songScreen)
	if !ok || len(a.binders) == 0 {
		return nil
	}

	ordered := append([]library.Binder(nil), a.binders...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	pos := 0
	for i, b := range ordered {
		if b.ID == current.binder.ID {
			pos = i
			break
		}
	}
	n := len(ordered)
	target := ordered[((pos+offset)%n+n)%n]

	for i, b := range a.binders {
		if b.ID == target.ID {
			a.selected = i
			break
		}
	}
	return a.openBinder(target)
}

func (a *App) openSongManager() error {
	songs, err := a.gw.ListSongs(a.ctx)
	if err != nil {
		return err
	}
	if err := a.reloadComposers(); err != nil {
		return err
	}
	a.screen = newSongManagerScreen(songs)
	return nil
}

func (a *App) openToPrint() error {
	r, found, err := report.Load(a.ctx, a.gw, a.binders)
	if err != nil {
		return err
	}
	a.screen = newToPrintScreen(r, found)
	return nil
}

// refreshSongScreen reloads the open binder's songs, if a binder is open.
func (a *App) refreshSongScreen() error {
	s, ok := a.screen.(*songScreen)
	if !ok {
		return nil
	}
	songs, err := a.gw.ListBinderSongs(a.ctx, s.binder.ID)
	if err != nil {
		return err
	}
	s.list.setSongs(songs)
	return nil
}

// refreshSongManager reloads the manager's songs when it is open and always
// reloads the composer cache.
func (a *App) refreshSongManager() error {
	if m, ok := a.screen.(*songManagerScreen); ok {
		songs, err := a.gw.ListSongs(a.ctx)
		if err != nil {
			return err
		}
		m.list.setSongs(songs)
	}
	return a.reloadComposers()
}

// refreshAfterWrite runs the given reloads after a successful write. A
// failure is logged and reported but never undoes the write.
func (a *App) refreshAfterWrite(reloads ...func() error) bool {
	for _, reload := range reloads {
		if err := reload(); err != nil {
			a.fail("refresh", err)
			return false
		}
	}
	return true
}

func (a *App) openLink(s library.Song) {
	if !s.HasLink() {
		a.setError("This song does not have a link.")
		return
	}
	if err := a.opener.Open(s.Link); err != nil {
		a.logger.Warn("open link failed", "song", s.ID, "err", err)
		a.setError(fmt.Sprintf("Failed to open link: %v", err))
		return
	}
	a.setInfo(fmt.Sprintf("Opened %s.", s.DisplayTitle()))
}

// copyLink is swapped out in tests.
var copyLink = clipboard.WriteAll

func (a *App) copySongLink(s library.Song) {
	if !s.HasLink() {
		a.setError("This song does not have a link.")
		return
	}
	if err := copyLink(s.Link); err != nil {
		a.logger.Warn("copy link failed", "song", s.ID, "err", err)
		a.setError(fmt.Sprintf("Failed to copy link: %v", err))
		return
	}
	a.setInfo(fmt.Sprintf("Copied link for %s.", s.DisplayTitle()))
}

// currentListSong returns the selected song of the songs or manager screen.
func (a *App) currentListSong() (library.Song, bool) {
	switch s := a.screen.(type) {
	case *songScreen:
		return s.list.current()
	case *songManagerScreen:
		return s.list.current()
	}
	return library.Song{}, false
}

// EditFromSearch jumps from an active search into editing the selected song.
// The search is stashed and comes back when the edit closes.
func (a *App) EditFromSearch() {
	search, ok := a.mode.(searchingMode)
	if !ok {
		return
	}

	song, ok := a.currentListSong()
	if !ok {
		a.setError("No song selected to edit.")
		return
	}

	saved := *search.search
	a.savedSearch = &saved
	a.mode = editingSongMode{id: song.ID, form: songFormFrom(song)}
}

// ToggleNoLinkFilter flips the song manager's no-link filter from any mode.
func (a *App) ToggleNoLinkFilter() {
	m, ok := a.screen.(*songManagerScreen)
	if !ok {
		return
	}
	a.setNoLinkStatus(m.list.toggleNoLink())
}

func (a *App) setNoLinkStatus(active bool) {
	if active {
		a.setInfo("Showing songs without links.")
	} else {
		a.setInfo("Showing all songs.")
	}
}

// restoreSearch returns the stashed search, if any, as the next mode.
func (a *App) restoreSearch() Mode {
	if a.savedSearch == nil {
		return normalMode{}
	}
	s := a.savedSearch
	a.savedSearch = nil
	return searchingMode{search: s}
}
