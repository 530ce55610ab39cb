package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeSwitch records the trigger calls a run makes and lets tests fail
// individual steps.
type fakeSwitch struct {
	disableErr error
	enableErr  error
	role       string
	roleErr    error

	disabled      int
	enabled       int
	roleChecks    int
	restoreCtxErr error
}

func (f *fakeSwitch) DisableTriggers(ctx context.Context) error {
	f.disabled++
	return f.disableErr
}

func (f *fakeSwitch) EnableTriggers(ctx context.Context) error {
	f.enabled++
	f.restoreCtxErr = ctx.Err()
	return f.enableErr
}

func (f *fakeSwitch) ReplicationRole(ctx context.Context) (string, error) {
	f.roleChecks++
	return f.role, f.roleErr
}

func TestWithTriggersDisabledHappyPath(t *testing.T) {
	f := &fakeSwitch{role: "origin"}
	ran := false

	err := WithTriggersDisabled(context.Background(), f, func() error {
		ran = true
		if f.disabled != 1 {
			t.Error("Expected triggers disabled before the body runs")
		}
		if f.enabled != 0 {
			t.Error("Expected triggers still suppressed inside the body")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if !ran {
		t.Fatal("Expected the body to run")
	}
	if f.enabled != 1 || f.roleChecks != 1 {
		t.Errorf("Expected one restore and one role check, got %d/%d", f.enabled, f.roleChecks)
	}
}

func TestWithTriggersDisabledRestoresAfterBodyError(t *testing.T) {
	f := &fakeSwitch{role: "origin"}
	bodyErr := errors.New("insert failed")

	err := WithTriggersDisabled(context.Background(), f, func() error {
		return bodyErr
	})

	if !errors.Is(err, bodyErr) {
		t.Fatalf("Expected the body error, got %v", err)
	}
	if f.enabled != 1 {
		t.Errorf("Expected triggers restored after a failed body, got %d calls", f.enabled)
	}
}

func TestWithTriggersDisabledFailsWhenRestoreFails(t *testing.T) {
	f := &fakeSwitch{enableErr: errors.New("connection gone")}

	err := WithTriggersDisabled(context.Background(), f, func() error { return nil })

	if err == nil {
		t.Fatal("Expected an error when triggers cannot be restored")
	}
	if !strings.Contains(err.Error(), "triggers were not restored") {
		t.Errorf("Expected a restore error, got %v", err)
	}
}

func TestWithTriggersDisabledBodyErrorWinsOverRestoreError(t *testing.T) {
	f := &fakeSwitch{enableErr: errors.New("connection gone")}
	bodyErr := errors.New("insert failed")

	err := WithTriggersDisabled(context.Background(), f, func() error {
		return bodyErr
	})

	if !errors.Is(err, bodyErr) {
		t.Fatalf("Expected the body error to win, got %v", err)
	}
}

func TestWithTriggersDisabledVerifiesRole(t *testing.T) {
	f := &fakeSwitch{role: "replica"}

	err := WithTriggersDisabled(context.Background(), f, func() error { return nil })

	if err == nil || !strings.Contains(err.Error(), "replica") {
		t.Fatalf("Expected a role verification failure, got %v", err)
	}
}

func TestWithTriggersDisabledRestoresAfterCancel(t *testing.T) {
	f := &fakeSwitch{role: "origin"}
	ctx, cancel := context.WithCancel(context.Background())

	err := WithTriggersDisabled(ctx, f, func() error {
		cancel()
		return ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected the cancellation error, got %v", err)
	}
	if f.enabled != 1 {
		t.Fatal("Expected triggers restored despite the cancelled run context")
	}
	if f.restoreCtxErr != nil {
		t.Error("Expected the restore to run on a live context")
	}
}

func TestWithTriggersDisabledSkipsBodyWhenDisableFails(t *testing.T) {
	f := &fakeSwitch{disableErr: errors.New("permission denied")}

	err := WithTriggersDisabled(context.Background(), f, func() error {
		t.Fatal("Body must not run when triggers cannot be disabled")
		return nil
	})

	if err == nil {
		t.Fatal("Expected an error when disabling fails")
	}
	if f.enabled != 0 {
		t.Error("Expected no restore attempt when nothing was disabled")
	}
}
