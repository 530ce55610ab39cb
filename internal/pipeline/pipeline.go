// Package pipeline drives the full dependency-ordered loader plan against
// one database session: truncate, suppress triggers, run every domain
// group, restore triggers, summarize.
package pipeline

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/lodgelab/roomseed/internal/config"
	"github.com/lodgelab/roomseed/internal/database"
	"github.com/lodgelab/roomseed/internal/gen"
	"github.com/lodgelab/roomseed/internal/idgen"
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/loaders"
	"github.com/lodgelab/roomseed/internal/registry"
)

// NewEnv builds the per-run collaborators: one seeded random source, one
// identifier generator, one empty identity cache.
func NewEnv(cfg *config.Config, sess *database.Session) *loader.Env {
	g := gen.New(cfg.Seed)
	return &loader.Env{
		Session: sess,
		Gen:     g,
		IDs:     idgen.New(cfg.Seed),
		Cache:   registry.New(g.Rand()),
	}
}

type Orchestrator struct {
	cfg *config.Config
	env *loader.Env
}

func New(cfg *config.Config, env *loader.Env) *Orchestrator {
	return &Orchestrator{cfg: cfg, env: env}
}

// Run executes the full plan. Bulk inserts run with row triggers
// suppressed; every exit path restores them, and a re-enable failure
// fails the run even when every loader succeeded.
func (o *Orchestrator) Run(ctx context.Context, truncate bool) error {
	if err := o.env.IDs.SelfTest(); err != nil {
		return fmt.Errorf("identifier self-test failed: %w", err)
	}
	color.Green("Identifier self-test passed")

	sess := o.env.Session

	if truncate {
		color.Yellow("Truncating schema %s (preserving %d catalog tables)...", o.cfg.Schema, len(o.cfg.Preserve))
		if err := sess.TruncateSchema(ctx, o.cfg.Schema, o.cfg.Preserve); err != nil {
			return err
		}
	}

	err := WithTriggersDisabled(ctx, sess, func() error {
		total := 0
		for _, group := range loaders.Plan() {
			Banner(group.Name)
			for _, ld := range group.Loaders {
				n, err := loader.Run(ctx, o.env, ld, o.cfg.CountFor(ld.Kind, ld.Count))
				if err != nil {
					return err
				}
				total += n
			}
		}
		color.Green("\nPipeline complete: %d rows across %d loaders", total, len(loaders.All()))
		return nil
	})
	if err != nil {
		return err
	}

	return Summary(ctx, sess)
}
