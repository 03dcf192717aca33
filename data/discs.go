package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pvdiscs.dev/track"
)

// Disc is a burned disc and the track on it.
type Disc struct {
	ID          uuid.UUID
	Holder      uuid.UUID
	URL         string
	Name        string
	Fingerprint uint64
	BurnedAt    time.Time
}

const discColumns = `id, holder, url, fingerprint, name, burned_at`

// BurnDisc writes url onto the disc held by holder, replacing whatever was
// burned there before.
func (s *Store) BurnDisc(ctx context.Context, holder uuid.UUID, url, name string) (*Disc, error) {
	d := &Disc{
		ID:          uuid.New(),
		Holder:      holder,
		URL:         url,
		Name:        name,
		Fingerprint: track.Fingerprint(url),
		BurnedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO discs (`+discColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (holder) DO UPDATE SET
			id = excluded.id,
			url = excluded.url,
			fingerprint = excluded.fingerprint,
			name = excluded.name,
			burned_at = excluded.burned_at`,
		d.ID.String(), d.Holder.String(), d.URL, int64(d.Fingerprint), d.Name, d.BurnedAt.UnixMilli())
	if err != nil {
		return nil, err
	}
	return d, nil
}

// HeldDisc returns the disc held by holder or ErrNotFound.
func (s *Store) HeldDisc(ctx context.Context, holder uuid.UUID) (*Disc, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+discColumns+` FROM discs WHERE holder = ?`, holder.String())
	d, err := scanDisc(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

// EraseDisc blanks the disc held by holder. It reports whether there was
// anything to erase.
func (s *Store) EraseDisc(ctx context.Context, holder uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM discs WHERE holder = ?`, holder.String())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DiscsByTrack returns every disc carrying the same track as url.
func (s *Store) DiscsByTrack(ctx context.Context, url string) ([]*Disc, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+discColumns+` FROM discs WHERE fingerprint = ? ORDER BY burned_at`,
		int64(track.Fingerprint(url)))
	if err != nil {
		return nil, err
	}
	return scanDiscs(rows)
}

// SearchDiscs returns up to limit discs whose name contains query, ignoring case.
func (s *Store) SearchDiscs(ctx context.Context, query string, limit int) ([]*Disc, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+discColumns+` FROM discs WHERE name LIKE ? ESCAPE '\' ORDER BY name LIMIT ?`,
		"%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	return scanDiscs(rows)
}

// DiscNames returns up to limit distinct disc names starting with prefix.
func (s *Store) DiscNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT name FROM discs WHERE name LIKE ? ESCAPE '\' ORDER BY name LIMIT ?`,
		escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDisc(row scanner) (*Disc, error) {
	var (
		id, holder  string
		fingerprint int64
		burnedAt    int64
		d           Disc
	)
	if err := row.Scan(&id, &holder, &d.URL, &fingerprint, &d.Name, &burnedAt); err != nil {
		return nil, err
	}
	var err error
	if d.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if d.Holder, err = uuid.Parse(holder); err != nil {
		return nil, err
	}
	d.Fingerprint = uint64(fingerprint)
	d.BurnedAt = time.UnixMilli(burnedAt).UTC()
	return &d, nil
}

func scanDiscs(rows *sql.Rows) ([]*Disc, error) {
	defer rows.Close()
	discs := []*Disc{}
	for rows.Next() {
		d, err := scanDisc(rows)
		if err != nil {
			return nil, err
		}
		discs = append(discs, d)
	}
	return discs, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
