package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lodgelab/roomseed/internal/database"
)

// Banner prints the domain group header the progress lines sit under.
func Banner(name string) {
	fmt.Println()
	color.Cyan("=== %s %s", name, strings.Repeat("=", max(0, 50-len(name))))
}

// Summary queries the runtime statistics view and prints one line per
// schema.
func Summary(ctx context.Context, sess *database.Session) error {
	stats, err := sess.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema statistics: %w", err)
	}

	fmt.Println()
	color.Cyan("=== Schema summary %s", strings.Repeat("=", 36))
	for _, st := range stats {
		fmt.Printf("  %-20s %4d tables  %10d rows\n", st.Schema, st.Tables, st.Rows)
	}
	return nil
}
