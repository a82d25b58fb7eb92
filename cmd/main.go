package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campaign-desk/internal/cli"
)

// signalCause records which signal ended the run.
type signalCause struct {
	sig syscall.Signal
}

func (s signalCause) Error() string {
	return "received " + s.sig.String()
}

// main runs the campaign-desk CLI. SIGINT and SIGTERM cancel the command's
// context so serve can drain; the process then exits with 128+signal.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if sig, ok := (<-sigs).(syscall.Signal); ok {
			cancel(signalCause{sig: sig})
		}
	}()

	err := cli.NewRootCommand().ExecuteContext(ctx)

	var sc signalCause
	if errors.As(context.Cause(ctx), &sc) {
		exitCode = 128 + int(sc.sig)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return
	}
	exitCode = 0
}
