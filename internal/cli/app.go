package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userkeep/internal/bookstore"
	"github.com/dmitrijs2005/userkeep/internal/config"
	"github.com/dmitrijs2005/userkeep/internal/logging"
	"github.com/dmitrijs2005/userkeep/internal/repositories/users"
	"github.com/dmitrijs2005/userkeep/internal/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	books       *bookstore.Store
	userName    string
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	repo, err := users.NewJSONRepository(c.StorePath)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(repo, logger.With("store", repo.Path()))

	return &App{
		config:      c,
		logger:      logger,
		authService: as,
		books:       bookstore.NewStore(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run executes the one-shot command named by args, if any, otherwise starts
// the REPL. It returns the error of a one-shot command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return a.runCommand(ctx, args)
	}

	a.logger.Debug(ctx, "starting repl", "store", a.config.StorePath)
	fmt.Fprintln(a.out, "Welcome to userkeep (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) runCommand(ctx context.Context, args []string) error {
	cmd := args[0]
	if len(args) != 2 || (cmd != "register" && cmd != "login") {
		return fmt.Errorf("usage: userkeep [flags] register|login <username>")
	}

	if cmd == "register" {
		return a.register(ctx, args[1])
	}
	return a.login(ctx, args[1])
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) passwordPrompt() ([]byte, error) {
	return getPassword(a.reader, a.out)
}
