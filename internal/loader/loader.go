// Package loader defines the contract every table producer implements and
// the one generic driver that runs them. A loader is data: a target table,
// the cache kinds it needs, and a row-builder closure. The driver owns the
// transaction boundary, batching, progress logging and the skip-if-empty
// rule, so the per-table code is nothing but value recipes.
package loader

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/lodgelab/roomseed/internal/database"
	"github.com/lodgelab/roomseed/internal/gen"
	"github.com/lodgelab/roomseed/internal/idgen"
	"github.com/lodgelab/roomseed/internal/registry"
)

// Row is one record destined for the loader's table. All rows emitted by
// one loader must share the same column set.
type Row map[string]any

// Loader describes one table producer.
type Loader struct {
	// Kind is the cache kind this loader contributes and the label used
	// in progress output.
	Kind string
	// Table is the target table name.
	Table string
	// Needs lists the cache kinds that must be non-empty before the
	// loader runs. The driver skips the loader with a notice otherwise.
	Needs []string
	// Count is the default number of rows; the config may override it
	// per kind.
	Count int
	// Rows builds the rows and the cache contributions.
	Rows func(b *Build) error
}

// Build is what a row-builder closure works with. It borrows the
// generator, identifier service and cache for the duration of one call.
type Build struct {
	Gen   *gen.Generator
	IDs   *idgen.Generator
	Cache *registry.Registry
	Count int

	kind   string
	rows   []Row
	shared []registry.Record
}

// Emit queues one row for insertion.
func (b *Build) Emit(row Row) {
	b.rows = append(b.rows, row)
}

// Share queues a cache record under the loader's kind. Records become
// visible to later loaders only after the transaction commits, so the
// cache never references uncommitted rows.
func (b *Build) Share(rec registry.Record) {
	b.shared = append(b.shared, rec)
}

// Emitted returns the rows queued so far.
func (b *Build) Emitted() []Row { return b.rows }

// Shared returns the cache records queued so far.
func (b *Build) Shared() []registry.Record { return b.shared }

const batchSize = 500

// Env bundles the per-run collaborators the driver hands to each loader.
type Env struct {
	Session *database.Session
	Gen     *gen.Generator
	IDs     *idgen.Generator
	Cache   *registry.Registry
}

// Run executes one loader inside its own transaction and returns the
// number of rows inserted. A missing prerequisite is a clean skip, any
// database error rolls back and propagates.
func Run(ctx context.Context, env *Env, ld *Loader, count int) (int, error) {
	for _, need := range ld.Needs {
		if env.Cache.Count(need) == 0 {
			color.Yellow("  Skipping %s: no %s available", ld.Kind, need)
			return 0, nil
		}
	}

	color.Cyan("  Inserting %s...", ld.Kind)

	b := &Build{
		Gen:   env.Gen,
		IDs:   env.IDs,
		Cache: env.Cache,
		Count: count,
		kind:  ld.Kind,
	}
	if err := ld.Rows(b); err != nil {
		return 0, fmt.Errorf("loader %s: %w", ld.Kind, err)
	}

	if len(b.rows) > 0 {
		if err := InsertRows(ctx, env.Session, ld.Table, b.rows); err != nil {
			return 0, fmt.Errorf("loader %s: %w", ld.Kind, err)
		}
	}

	for _, rec := range b.shared {
		env.Cache.Put(ld.Kind, rec)
	}

	color.Green("  Inserted %d %s", len(b.rows), ld.Kind)
	return len(b.rows), nil
}

// InsertRows writes rows to table in one transaction, batching the
// generated INSERT statements. Injectors use it directly; the driver uses
// it for every loader.
func InsertRows(ctx context.Context, sess *database.Session, table string, rows []Row) error {
	columns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	tx, err := sess.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		ins := sess.Builder().Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			values := make([]any, len(columns))
			for i, col := range columns {
				values[i] = row[col]
			}
			ins = ins.Values(values...)
		}

		sql, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
