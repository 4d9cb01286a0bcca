package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/janolinej/internal/config"
	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/dmitrijs2005/janolinej/internal/services"
	"github.com/dmitrijs2005/janolinej/internal/store"
)

// Screen names the part of the session the operator is in.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenMenu      Screen = "menu"
	ScreenDashboard Screen = "dashboard"
	ScreenClients   Screen = "clients"
	ScreenProjects  Screen = "projects"
	ScreenReports   Screen = "reports"
	ScreenExit      Screen = "exit"
)

// App is one interactive session over a store.
type App struct {
	authService    services.AuthService
	clientService  services.ClientService
	projectService services.ProjectService
	reportService  services.ReportService

	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	format    *formatter
	ttyFd     int
	loginHint bool

	user   *models.User
	Screen Screen
}

// NewApp wires the services over st and binds the session to in and out.
// Passwords are read without echo only when in is a terminal.
func NewApp(st *store.Store, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	db := st.DB()

	return &App{
		authService:    services.NewAuthService(st, db, log),
		clientService:  services.NewClientService(st, db, log),
		projectService: services.NewProjectService(st, db, log),
		reportService:  services.NewReportService(st, db),
		log:            log,
		reader:         bufio.NewReader(in),
		out:            out,
		format:         newFormatter(cfg.Locale, out),
		ttyFd:          terminalFd(in),
		loginHint:      cfg.LoginHint,
	}
}

func (a *App) setScreen(ctx context.Context, s Screen) {
	if a.Screen != s {
		a.log.Debug(ctx, "screen changed", "from", string(a.Screen), "to", string(s))
		a.Screen = s
	}
}

// Run drives the session until the operator exits or the input ends.
func (a *App) Run(ctx context.Context) error {
	err := a.run(ctx)
	if errors.Is(err, io.EOF) {
		a.log.Info(ctx, "input closed, ending session", "screen", string(a.Screen))
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	if err := a.Login(ctx); err != nil {
		return err
	}
	if err := runMainMenu(ctx, a, a.reader, a.out); err != nil {
		return err
	}
	a.setScreen(ctx, ScreenExit)
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}

func (a *App) option() (string, error) {
	return GetOption(a.reader, "\nEscolha uma opção: ", a.out)
}
