package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vaulthub/vaulthub-cli/internal/client/api"
	"github.com/vaulthub/vaulthub-cli/internal/client/audit"
	"github.com/vaulthub/vaulthub-cli/internal/client/config"
	"github.com/vaulthub/vaulthub-cli/internal/client/session"
	"github.com/vaulthub/vaulthub-cli/internal/client/storage"
	"github.com/vaulthub/vaulthub-cli/internal/client/vault"
	"github.com/vaulthub/vaulthub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the API client, session store and the screen controllers into
// the command surface the REPL dispatches on.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	tokens  *storage.TokenStore
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader

	vaults  *vault.ListLoader
	pager   *audit.Pager
	feed    *audit.Feed
	metrics *audit.Metrics

	serverConfig api.ConfigResponse
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local state database", "error", err)
		return nil, err
	}

	tokens := storage.NewTokenStore(storage.NewSQLiteRepository(db))

	app := &App{
		config: c,
		tokens: tokens,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}

	// The guard fires the session teardown at most once per cooldown window,
	// however many requests come back 401 together.
	guard := api.NewUnauthorizedGuard(api.DefaultUnauthorizedCooldown, func() {
		if app.session != nil {
			app.session.HandleUnauthorized()
		}
	})

	apiClient, err := api.New(c.ServerBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithTokenProvider(tokens.Token),
		api.WithAPIKey(c.APIKey),
		api.WithUnauthorizedGuard(guard),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	app.api = apiClient

	app.session = session.NewStore(session.Options{
		API:    apiClient,
		Tokens: tokens,
		Navigate: func(route string) {
			if route == session.RouteLogin {
				printlnFn("Signed out. Type 'login' to sign in again.")
			}
		},
		Browse: openBrowser,
		Logger: log,
	})

	app.vaults = vault.NewListLoader(func(ctx context.Context) ([]api.VaultLite, error) {
		return apiClient.GetVaults(ctx)
	})
	app.pager = audit.NewPager(apiClient.GetAuditLogs)
	app.feed = audit.NewFeed(apiClient.GetAuditLogs, audit.DefaultPageSize)
	app.metrics = audit.NewMetrics(apiClient.GetAuditMetrics, log)

	return app, nil
}

// Run bootstraps the session and enters the REPL. launchURL may carry a
// one-time token from an OIDC or magic-link callback; it wins over the
// persisted token and is consumed exactly once.
func (a *App) Run(ctx context.Context, launchURL string) {
	defer a.db.Close()

	a.session.Initialize(ctx, launchURL)

	if cfg, err := a.api.GetConfig(ctx); err == nil {
		a.serverConfig = *cfg
	} else {
		a.log.Debug(ctx, "server config unavailable", "error", err)
	}

	printlnFn("Welcome to VaultHub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) oidcEnabled() bool {
	return a.serverConfig.OidcEnabled
}

func (a *App) emailEnabled() bool {
	return a.serverConfig.EmailEnabled
}

// getStatus renders the prompt suffix: the signed-in user plus how long the
// token has left, or nothing when logged out.
func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	s := u.Email
	if exp, ok := session.TokenExpiry(a.tokens.Token(context.Background())); ok {
		left := time.Until(exp)
		if left > 0 {
			s = fmt.Sprintf("%s, expires in %s", s, left.Round(time.Minute))
		} else {
			s += ", token expired"
		}
	}
	return "(" + s + ")"
}

// copyToClipboard is a test seam for the system clipboard.
var copyToClipboard = clipboard.WriteAll

// openBrowser opens url in the user's default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
