package data

import (
	"context"

	"github.com/google/uuid"
)

// Grant gives player the permission node. Granting twice is not an error.
func (s *Store) Grant(ctx context.Context, player uuid.UUID, node string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO permission_grants (player, node) VALUES (?, ?)`,
		player.String(), node)
	return err
}

// Revoke removes a node previously granted to player.
func (s *Store) Revoke(ctx context.Context, player uuid.UUID, node string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM permission_grants WHERE player = ? AND node = ?`,
		player.String(), node)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Grants lists the nodes granted to player.
func (s *Store) Grants(ctx context.Context, player uuid.UUID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT node FROM permission_grants WHERE player = ? ORDER BY node`, player.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := []string{}
	for rows.Next() {
		var node string
		if err := rows.Scan(&node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, rows.Err()
}
