package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Paintersrp/binders/internal/library"
)

// SeedFile describes a library to import. Binder songs refer to entries in
// Songs by display title ("title - composer") or by bare title.
type SeedFile struct {
	Binders []SeedBinder `yaml:"binders"`
	Songs   []SeedSong   `yaml:"songs"`
}

type SeedBinder struct {
	Number int64    `yaml:"number"`
	Label  string   `yaml:"label"`
	Songs  []string `yaml:"songs"`
}

type SeedSong struct {
	Title    string `yaml:"title"`
	Composer string `yaml:"composer"`
	Link     string `yaml:"link"`
}

type SeedResult struct {
	BindersCreated int
	SongsCreated   int
	Links          int
}

// Seed imports f in one transaction. Existing binders (by number) and songs
// (by title and composer) are reused, so running it twice changes nothing.
func (s *Store) Seed(ctx context.Context, f SeedFile) (SeedResult, error) {
	var result SeedResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	songIDs := make(map[string]int64, len(f.Songs)*2)
	for _, raw := range f.Songs {
		in, err := library.ParseSongInput(raw.Title, raw.Composer, raw.Link)
		if err != nil {
			return result, fmt.Errorf("song %q: %w", raw.Title, err)
		}

		id, created, err := seedSong(ctx, tx, in)
		if err != nil {
			return result, err
		}
		if created {
			result.SongsCreated++
		}

		song := library.Song{Title: in.Title, Composer: in.Composer}
		songIDs[song.DisplayTitle()] = id
		if _, taken := songIDs[in.Title]; !taken {
			songIDs[in.Title] = id
		}
	}

	for _, raw := range f.Binders {
		in, err := library.ParseBinderInput(fmt.Sprint(raw.Number), raw.Label)
		if err != nil {
			return result, fmt.Errorf("binder %d: %w", raw.Number, err)
		}

		binderID, created, err := seedBinder(ctx, tx, in)
		if err != nil {
			return result, err
		}
		if created {
			result.BindersCreated++
		}

		for _, ref := range raw.Songs {
			songID, ok := songIDs[library.Normalize(ref)]
			if !ok {
				return result, fmt.Errorf("binder %d: unknown song %q", raw.Number, ref)
			}
			res, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO binder_songs (binder_id, song_id) VALUES (?, ?)`, binderID, songID)
			if err != nil {
				return result, fmt.Errorf("failed to link %q: %w", ref, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				result.Links++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit seed: %w", err)
	}

	s.logger.Info("seed applied",
		"binders", result.BindersCreated,
		"songs", result.SongsCreated,
		"links", result.Links,
	)
	return result, nil
}

func seedSong(ctx context.Context, tx *sql.Tx, in library.SongInput) (int64, bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM songs WHERE title = ? AND COALESCE(composer, '') = ? LIMIT 1`,
		in.Title, in.Composer,
	).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !isNoRows(err) {
		return 0, false, fmt.Errorf("failed to look up song %q: %w", in.Title, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO songs (title, composer, link) VALUES (?, ?, ?)`, in.Title, in.Composer, in.Link)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert song %q: %w", in.Title, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read song id: %w", err)
	}
	return id, true, nil
}

func seedBinder(ctx context.Context, tx *sql.Tx, in library.BinderInput) (int64, bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM binders WHERE number = ?`, in.Number).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !isNoRows(err) {
		return 0, false, fmt.Errorf("failed to look up binder %d: %w", in.Number, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO binders (number, label) VALUES (?, ?)`, in.Number, in.Label)
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert binder %d: %w", in.Number, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read binder id: %w", err)
	}
	return id, true, nil
}
