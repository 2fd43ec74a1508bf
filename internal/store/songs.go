package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Paintersrp/binders/internal/library"
)

const songOrder = `ORDER BY s.title COLLATE NOCASE, s.composer COLLATE NOCASE`

func scanSong(scanner interface{ Scan(dest ...any) error }) (library.Song, error) {
	var (
		song     library.Song
		composer sql.NullString
		link     sql.NullString
	)
	if err := scanner.Scan(&song.ID, &song.Title, &composer, &link); err != nil {
		return library.Song{}, err
	}
	song.Composer = composer.String
	song.Link = link.String
	return song, nil
}

func (s *Store) querySongs(ctx context.Context, what string, query string, args ...any) ([]library.Song, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", what, err)
	}
	defer rows.Close()

	var songs []library.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", what, err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect %s: %w", what, err)
	}
	return songs, nil
}

// ListSongs returns every song ordered by title then composer, ignoring case.
func (s *Store) ListSongs(ctx context.Context) ([]library.Song, error) {
	return s.querySongs(ctx, "songs",
		`SELECT s.id, s.title, s.composer, s.link FROM songs s `+songOrder)
}

func (s *Store) ListBinderSongs(ctx context.Context, binderID int64) ([]library.Song, error) {
	return s.querySongs(ctx, "binder songs", `
		SELECT s.id, s.title, s.composer, s.link
		FROM songs s
		INNER JOIN binder_songs bs ON bs.song_id = s.id
		WHERE bs.binder_id = ? `+songOrder, binderID)
}

// ListAvailableSongs returns the songs not yet linked to binderID.
func (s *Store) ListAvailableSongs(ctx context.Context, binderID int64) ([]library.Song, error) {
	return s.querySongs(ctx, "available songs", `
		SELECT s.id, s.title, s.composer, s.link
		FROM songs s
		WHERE NOT EXISTS (
			SELECT 1 FROM binder_songs bs WHERE bs.song_id = s.id AND bs.binder_id = ?
		) `+songOrder, binderID)
}

// ListComposers returns distinct non-empty composers, case-insensitively
// sorted with the original spelling as tiebreak.
func (s *Store) ListComposers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT composer FROM songs
		WHERE composer IS NOT NULL AND composer <> ''
		ORDER BY LOWER(composer), composer`)
	if err != nil {
		return nil, fmt.Errorf("failed to load composers: %w", err)
	}
	defer rows.Close()

	var composers []string
	for rows.Next() {
		var composer string
		if err := rows.Scan(&composer); err != nil {
			return nil, fmt.Errorf("failed to read composer: %w", err)
		}
		composers = append(composers, composer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect composers: %w", err)
	}
	return composers, nil
}

// DirectorSongIDs returns the ids of songs in the director's binder.
func (s *Store) DirectorSongIDs(ctx context.Context) (map[int64]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT bs.song_id
		FROM binder_songs bs
		INNER JOIN binders b ON b.id = bs.binder_id
		WHERE b.number = 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to look up director songs: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to read director song: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect director songs: %w", err)
	}
	return ids, nil
}

func (s *Store) SongByID(ctx context.Context, id int64) (library.Song, error) {
	song, err := scanSong(s.db.QueryRowContext(ctx,
		`SELECT s.id, s.title, s.composer, s.link FROM songs s WHERE s.id = ?`, id))
	if err != nil {
		if isNoRows(err) {
			return library.Song{}, errSongNotFound
		}
		return library.Song{}, fmt.Errorf("failed to load song %d: %w", id, err)
	}
	return song, nil
}

func (s *Store) CreateSong(ctx context.Context, title, composer, link string) (library.Song, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO songs (title, composer, link) VALUES (?, ?, ?)`, title, composer, link)
	if err != nil {
		return library.Song{}, fmt.Errorf("failed to insert song: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return library.Song{}, fmt.Errorf("failed to read song id: %w", err)
	}

	s.logger.Info("song created", "id", id)
	return library.Song{ID: id, Title: title, Composer: composer, Link: link}, nil
}

func (s *Store) UpdateSong(ctx context.Context, id int64, title, composer, link string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE songs SET title = ?, composer = ?, link = ? WHERE id = ?`, title, composer, link, id)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}
	if err := expectRow(res, errSongNotFound); err != nil {
		return err
	}

	s.logger.Info("song updated", "id", id)
	return nil
}

// DeleteSong removes a song from the library and from every binder.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	if err := expectRow(res, errSongNotFound); err != nil {
		return err
	}

	s.logger.Info("song deleted", "id", id)
	return nil
}

// LinkSong adds a song to a binder. Linking twice is a no-op.
func (s *Store) LinkSong(ctx context.Context, binderID, songID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO binder_songs (binder_id, song_id) VALUES (?, ?)`, binderID, songID)
	if err != nil {
		return fmt.Errorf("failed to link song: %w", err)
	}
	return nil
}

func (s *Store) UnlinkSong(ctx context.Context, binderID, songID int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM binder_songs WHERE binder_id = ? AND song_id = ?`, binderID, songID)
	if err != nil {
		return fmt.Errorf("failed to unlink song: %w", err)
	}
	return expectRow(res, errLinkNotFound)
}

func expectRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
