package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// WithInterrupt returns a context cancelled by the first Ctrl+C or
// SIGTERM. When stdin is a terminal, ESC cancels it as well and the
// terminal stays in raw mode until the returned func is called. The
// returned func may be called more than once.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(ctx)
	restore := watchESC(cancel)
	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			restore()
			cancel()
			stop()
		})
	}
}

// watchESC puts stdin in raw mode and cancels on ESC or Ctrl+C. The
// returned func restores the terminal.
func watchESC(cancel context.CancelFunc) func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}
	}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				return
			}
			if buf[0] == 0x1b || buf[0] == 0x03 {
				cancel()
				return
			}
		}
	}()
	return func() { _ = term.Restore(fd, old) }
}
