package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netpath/core"

	_ "modernc.org/sqlite"
)

const (
	// driverName is the database/sql name registered by modernc.org/sqlite.
	driverName = "sqlite"
	// pragmas enables cascading deletes and waits on locked files.
	pragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
)

var (
	// ErrNetworkNotFound is returned when no network has the requested name.
	ErrNetworkNotFound = errors.New("store: network not found")

	// ErrEmptyName is returned for an empty network name.
	ErrEmptyName = fmt.Errorf("store: empty network name: %w", core.ErrInvalidArgument)

	// ErrNilGraph is returned when Save is given a nil graph.
	ErrNilGraph = fmt.Errorf("store: graph is nil: %w", core.ErrInvalidArgument)
)

// Store is a SQLite-backed network store.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dsn and migrates the schema.
func New(dsn string) (*Store, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open(driverName, dsn+sep+pragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Every ":memory:" connection is a separate database; one connection
	// keeps the store coherent and serialises writers for file databases too.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS networks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS nodes (
		network_id INTEGER NOT NULL,
		idx INTEGER NOT NULL,
		label TEXT NOT NULL,
		PRIMARY KEY (network_id, idx),
		FOREIGN KEY (network_id) REFERENCES networks(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS links (
		network_id INTEGER NOT NULL,
		node_a INTEGER NOT NULL,
		node_b INTEGER NOT NULL,
		cost INTEGER NOT NULL CHECK (cost > 0),
		PRIMARY KEY (network_id, node_a, node_b),
		CHECK (node_a < node_b),
		FOREIGN KEY (network_id) REFERENCES networks(id) ON DELETE CASCADE
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save stores g under name, replacing any network with the same name.
// Each undirected pair is written once, lower id first.
func (s *Store) Save(ctx context.Context, name string, g *core.Graph) error {
	if name == "" {
		return fmt.Errorf("Save: %w", ErrEmptyName)
	}
	if g == nil {
		return fmt.Errorf("Save(%s): %w", name, ErrNilGraph)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM networks WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to replace network %s: %w", name, err)
	}
	res, err := tx.ExecContext(ctx, `INSERT INTO networks (name) VALUES (?)`, name)
	if err != nil {
		return fmt.Errorf("failed to insert network %s: %w", name, err)
	}
	networkID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read network id: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (network_id, idx, label) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare node insert: %w", err)
	}
	defer nodeStmt.Close()
	for _, n := range g.Nodes() {
		if _, err := nodeStmt.ExecContext(ctx, networkID, int(n.ID), n.Label); err != nil {
			return fmt.Errorf("failed to insert node %s: %w", n.Label, err)
		}
	}

	linkStmt, err := tx.PrepareContext(ctx, `INSERT INTO links (network_id, node_a, node_b, cost) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()
	for _, e := range g.Edges() {
		if e.From > e.To {
			continue
		}
		if _, err := linkStmt.ExecContext(ctx, networkID, int(e.From), int(e.To), e.Cost); err != nil {
			return fmt.Errorf("failed to insert link %d-%d: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit network %s: %w", name, err)
	}

	return nil
}

// Load rebuilds the network stored under name.
func (s *Store) Load(ctx context.Context, name string) (*core.Graph, error) {
	var networkID int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM networks WHERE name = ?`, name).Scan(&networkID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Load(%s): %w", name, ErrNetworkNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query network %s: %w", name, err)
	}

	g := core.NewGraph()

	rows, err := s.db.QueryContext(ctx, `SELECT idx, label FROM nodes WHERE network_id = ? ORDER BY idx`, networkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			idx   int
			label string
		)
		if err := rows.Scan(&idx, &label); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		if n := g.RegisterNode(label); int(n.ID) != idx {
			return nil, fmt.Errorf("Load(%s): node index gap at %d", name, idx)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nodes: %w", err)
	}

	linkRows, err := s.db.QueryContext(ctx, `
		SELECT node_a, node_b, cost FROM links
		WHERE network_id = ?
		ORDER BY node_a, node_b
	`, networkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var (
			a, b int
			cost int64
		)
		if err := linkRows.Scan(&a, &b, &cost); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		if _, err := g.Link(core.NodeID(a), core.NodeID(b), cost); err != nil {
			return nil, fmt.Errorf("Load(%s): %w", name, err)
		}
	}
	if err := linkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}

	return g, nil
}

// List returns the stored network names in alphabetical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM networks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query networks: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan network: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Delete removes the named network with its nodes and links.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM networks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete network %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("Delete(%s): %w", name, ErrNetworkNotFound)
	}

	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
