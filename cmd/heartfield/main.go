// Command heartfield renders the particle heart offscreen, in a window or in
// a terminal, and scores the companion health risk models.
//
// Usage:
//
//	heartfield render --output heart.png --frames 120
//	heartfield window
//	heartfield term
//	heartfield score diabetes payload.json
//	heartfield version
//
// Settings come from flags, an optional heartfield.yaml and HEARTFIELD_*
// environment variables, in that order of precedence.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "heartfield:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	a := newApp()
	defer a.close()

	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
