// SPDX-License-Identifier: EPL-2.0

// Command sfxplay exercises sfxpool from the command line: it plays
// configured sounds through a real or headless backend, prints attenuation
// tables, renders files to WAV and writes starter configs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
