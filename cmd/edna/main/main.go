package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/edna/cmd/edna"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := edna.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printer := style.NewPrinter(os.Stderr)
		fmt.Fprintln(os.Stderr, printer.Render(style.ErrorStyle, fmt.Sprintf(edna.MsgErrorFormat, err)))
	}
	os.Exit(errors.ExitCode(err))
}
