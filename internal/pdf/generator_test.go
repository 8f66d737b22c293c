package pdf

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestMapTimeoutWrapsDeadlineExpiry(t *testing.T) {
	g := NewGenerator(slog.Default())

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := g.mapTimeout(ctx, errors.New("page crashed"))
	if !errors.Is(err, ErrExportTimeout) {
		t.Errorf("expired context must map to ErrExportTimeout, got %v", err)
	}
}

func TestMapTimeoutLeavesOtherErrors(t *testing.T) {
	g := NewGenerator(slog.Default())

	cause := errors.New("page crashed")
	err := g.mapTimeout(context.Background(), cause)
	if errors.Is(err, ErrExportTimeout) {
		t.Error("healthy context must not map to a timeout")
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause must be preserved, got %v", err)
	}
}
