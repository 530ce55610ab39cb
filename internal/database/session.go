package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Session is the single database connection for a run. One connection is
// acquired from the pool at Connect and held until Close, so connection
// state like session_replication_role survives the whole run instead of
// landing on whichever pooled connection happens to serve a statement.
type Session struct {
	pool *pgxpool.Pool
	conn *pgxpool.Conn
	qb   squirrel.StatementBuilderType
}

// SchemaStats is one line of the end-of-run summary.
type SchemaStats struct {
	Schema string
	Tables int
	Rows   int64
}

func Connect(ctx context.Context, url string) (*Session, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	conn, err := pool.Acquire(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Release()
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Session{
		pool: pool,
		conn: conn,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

func (s *Session) Close() {
	if s.conn != nil {
		s.conn.Release()
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// Builder returns the dollar-placeholder statement builder loaders use to
// assemble inserts.
func (s *Session) Builder() squirrel.StatementBuilderType {
	return s.qb
}

// Begin opens the transaction that scopes one loader, on the run's
// dedicated connection.
func (s *Session) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.conn.Begin(ctx)
}

// TableNames lists base tables of schema in name order.
func (s *Session) TableNames(ctx context.Context, schema string) ([]string, error) {
	sql, args, err := s.qb.Select("table_name").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": schema, "table_type": "BASE TABLE"}).
		OrderBy("table_name").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TruncateSchema truncates every base table in schema except those on the
// preserve list, in a single statement so foreign keys cannot interfere.
func (s *Session) TruncateSchema(ctx context.Context, schema string, preserve []string) error {
	names, err := s.TableNames(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to list tables in %s: %w", schema, err)
	}

	keep := make(map[string]bool, len(preserve))
	for _, t := range preserve {
		keep[t] = true
	}

	var targets []string
	for _, name := range names {
		if keep[name] {
			continue
		}
		targets = append(targets, pgx.Identifier{schema, name}.Sanitize())
	}
	if len(targets) == 0 {
		return nil
	}

	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(targets, ", "))
	if _, err := s.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate schema %s: %w", schema, err)
	}
	return nil
}

// DisableTriggers puts the run's connection into replica mode so row
// triggers do not fire during bulk ingest.
func (s *Session) DisableTriggers(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "SET session_replication_role = replica")
	return err
}

// EnableTriggers restores the default replication role. Called on every
// exit path of a run.
func (s *Session) EnableTriggers(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "SET session_replication_role = DEFAULT")
	return err
}

// ReplicationRole reports the current session_replication_role setting.
func (s *Session) ReplicationRole(ctx context.Context) (string, error) {
	var role string
	err := s.conn.QueryRow(ctx, "SHOW session_replication_role").Scan(&role)
	return role, err
}

// Stats reads per-schema table and live-row counts from the runtime
// statistics view for the end-of-run summary.
func (s *Session) Stats(ctx context.Context) ([]SchemaStats, error) {
	query := `
		SELECT schemaname, COUNT(*), COALESCE(SUM(n_live_tup), 0)
		FROM pg_stat_user_tables
		GROUP BY schemaname
		ORDER BY schemaname`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []SchemaStats
	for rows.Next() {
		var st SchemaStats
		if err := rows.Scan(&st.Schema, &st.Tables, &st.Rows); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
