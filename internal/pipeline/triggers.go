package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
)

// TriggerSwitch is the slice of the database session the trigger guard
// needs. *database.Session implements it.
type TriggerSwitch interface {
	DisableTriggers(ctx context.Context) error
	EnableTriggers(ctx context.Context) error
	ReplicationRole(ctx context.Context) (string, error)
}

const restoreTimeout = 10 * time.Second

// WithTriggersDisabled runs fn with row triggers suppressed and restores
// them on every exit path, then verifies the role actually returned to
// origin. A restore failure never masks fn's error, but it fails an
// otherwise clean run.
func WithTriggersDisabled(ctx context.Context, s TriggerSwitch, fn func() error) (err error) {
	if err := s.DisableTriggers(ctx); err != nil {
		return fmt.Errorf("failed to disable triggers: %w", err)
	}

	defer func() {
		// The run context may already be cancelled (interrupt); triggers
		// must come back regardless.
		restoreCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
		defer cancel()
		if triggerErr := restoreTriggers(restoreCtx, s); triggerErr != nil {
			color.Red("Failed to re-enable triggers: %v", triggerErr)
			if err == nil {
				err = fmt.Errorf("triggers were not restored: %w", triggerErr)
			}
		}
	}()

	return fn()
}

func restoreTriggers(ctx context.Context, s TriggerSwitch) error {
	if err := s.EnableTriggers(ctx); err != nil {
		return err
	}
	role, err := s.ReplicationRole(ctx)
	if err != nil {
		return fmt.Errorf("could not verify replication role: %w", err)
	}
	if role != "origin" {
		return fmt.Errorf("session_replication_role is still %q", role)
	}
	return nil
}
