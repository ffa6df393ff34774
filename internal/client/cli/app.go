package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
)

// App is the interactive client. It owns the API client and the
// name of the currently signed-in user.
type App struct {
	config   *config.Config
	api      client.Client
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewAuthKeeperClient(c)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run prints a greeting and blocks in the REPL until the user exits
// or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	fmt.Fprintf(a.out, "authkeeper client, server %s. Type \"help\" for commands.\n", a.config.ServerEndpointAddr)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "guest"
	}
	return a.userName
}
