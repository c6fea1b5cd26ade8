package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/healthsync/internal/client/client"
	"github.com/dmitrijs2005/healthsync/internal/client/config"
)

type App struct {
	api    client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

// NewApp wires the HTTP client from c and talks to the terminal.
func NewApp(c *config.Config) *App {
	return newApp(client.NewHTTPClient(c.ServerURL, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(c client.Client, in io.Reader, out io.Writer) *App {
	return &App{api: c, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) getStatus() string {
	if a.email == "" || !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Run checks that the server answers, then blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to HealthSync CLI (type 'help' for commands)")
	if err := a.api.Ping(ctx); err != nil {
		fmt.Fprintln(a.out, "Warning: server is not reachable:", err)
	}
	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, "Error:", err)
	return err
}
