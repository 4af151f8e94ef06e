// Command lecture2html converts the lecture JSON files under the data
// directory into one HTML page per lecture.
//
// Run without arguments to convert every lecture found in data/ into pages/.
// Settings come from lecture2html.yaml when present, LECTURE2HTML_*
// environment variables, and flags, in increasing priority.
package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())

	env := DefaultEnv()
	err := run(ctx, os.Args, env)
	stop()

	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
	}
	os.Exit(exitCodeFor(err))
}
