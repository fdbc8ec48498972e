// Command goertzel measures the level of a single tone in a sample stream.
//
// Usage:
//
//	goertzel [command] [flags]
//
// Examples:
//
//	goertzel demo
//	goertzel process -f 1000 -r 8000 samples.txt
//	goertzel gen -f 697 --bursts 4 | goertzel stream -f 697 -n 205
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-goertzel/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
