package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/svituawww/uniparser"
	"github.com/svituawww/uniparser/fs"
	"github.com/svituawww/uniparser/goquery"
	"github.com/svituawww/uniparser/sqlite"
	"github.com/svituawww/uniparser/template"
	"github.com/svituawww/uniparser/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService uniparser.DocumentService
	ElementService  uniparser.ElementService
	ItemService     uniparser.ItemService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("uniparser"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'uniparser --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load extraction rules: config file when given, defaults otherwise.
	deps.Rules = uniparser.DefaultRules()
	if cli.Config != "" {
		conf, err := yaml.Load(cli.Config)
		if err != nil {
			return err
		}
		deps.Config = conf
		deps.Rules = conf.RuleSet()
	}

	deps.Templates = template.NewBuilder()
	deps.Reconstructor = template.NewReconstructor()
	deps.Inspector = goquery.NewInspector(deps.Rules)
	deps.NewTemplateStore = func(baseDir, name string) uniparser.TemplateStore {
		return fs.NewTemplateStore(baseDir, name)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set UNIPARSER_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.ElementService = sqlite.NewElementService(m.DB)
	m.ItemService = sqlite.NewItemService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Elements = m.ElementService
	deps.Items = m.ItemService

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("UNIPARSER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "uniparser.db"
	}
	dir := filepath.Join(home, ".uniparser")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "uniparser.db")
}
