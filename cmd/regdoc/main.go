package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/regdoc"
	"github.com/fwojciec/regdoc/audit"
	"github.com/fwojciec/regdoc/catalog"
	regfs "github.com/fwojciec/regdoc/fs"
	"github.com/fwojciec/regdoc/notify"
	"github.com/fwojciec/regdoc/session"
	regslog "github.com/fwojciec/regdoc/slog"
	"github.com/fwojciec/regdoc/sqlite"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %s\n", err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used with --store=sqlite. Set before calling Run().
	DBPath string

	// Directory used with --store=fs. Set before calling Run().
	DataDir string

	// SQLite database, when the sqlite store is selected.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Catalog       *catalog.Engine
	Audit         *audit.Log
	Session       *session.Service
	Notifications *notify.Broker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("regdoc"),
		kong.Description("Search and maintain the financial regulatory document catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'regdoc --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	store, err := m.openStore(cli.Store, stderr)
	if err != nil {
		return err
	}
	defer m.Close()
	store = regslog.NewLoggingStore(store, logger)

	m.Notifications = notify.NewBroker()
	unsubscribe := m.Notifications.Subscribe(func(n regdoc.Notification) {
		fmt.Fprintf(stderr, "[%s] %s\n", n.Kind, n.Message)
	})
	defer unsubscribe()

	m.Audit = audit.NewLog(store)
	auditService := regslog.NewLoggingAuditService(m.Audit, logger)

	m.Session = session.NewService(store)
	m.Session.Audit = auditService
	m.Session.Notifier = m.Notifications

	m.Catalog = catalog.NewEngine(store)
	m.Catalog.Audit = auditService
	m.Catalog.Identity = m.Session
	m.Catalog.Notifier = m.Notifications

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Catalog.Open(gctx) })
	g.Go(func() error { return m.Audit.Open(gctx) })
	g.Go(func() error { return m.Session.Open(gctx) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	deps.Documents = regslog.NewLoggingDocumentService(m.Catalog, logger)
	deps.FAQs = regslog.NewLoggingFAQService(m.Catalog, logger)
	deps.Audit = auditService
	deps.Session = m.Session

	deps.NewWriter = func(dir string) regdoc.DocumentWriter {
		return regfs.NewWriter(dir)
	}

	return kongCtx.Run(deps)
}

// openStore opens the store backend named by kind.
func (m *Main) openStore(kind string, stderr io.Writer) (regdoc.Store, error) {
	switch kind {
	case "fs":
		store := regfs.NewStore(m.DataDir)
		if err := store.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set REGDOC_DATA to use a different data directory\n")
			return nil, err
		}
		return store, nil
	default:
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set REGDOC_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		return sqlite.NewStore(m.DB), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("REGDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "regdoc.db"
	}
	dir := filepath.Join(home, ".regdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "regdoc.db")
}

func defaultDataDir() string {
	if dir := os.Getenv("REGDOC_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "regdoc-data"
	}
	return filepath.Join(home, ".regdoc", "data")
}
