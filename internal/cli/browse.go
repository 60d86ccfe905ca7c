package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamlist/pageflow/internal/session"
	"github.com/seamlist/pageflow/internal/tui"
)

// ErrNotATerminal is returned when the browser is started without a TTY.
var ErrNotATerminal = errors.New("browse requires an interactive terminal")

// demoSeed makes the generated session list stable across runs, so cursors
// stay comparable when experimenting.
const demoSeed = 20240301

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a cursor-paginated session list interactively",
		Long: `Browse starts a terminal UI over a generated browser-session list.

Navigation follows the derived adjacent pages: next/previous are only
offered when such a page exists, the first/last jumps are always
available, and the page size can be changed while paginated.`,
		RunE: runBrowse,
	}

	cmd.Flags().Int("page-size", 0, "items per page (0 = config default)")
	cmd.Flags().Int("count", 0, "number of sessions to generate (0 = config default)")
	cmd.Flags().Duration("latency", -1, "simulated fetch latency (-1 = config default)")
	cmd.Flags().Duration("cache-ttl", -1, "page metadata cache TTL (-1 = config default)")
	cmd.Flags().String("log-file", "", "write logs to this file")

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if n, _ := cmd.Flags().GetInt("page-size"); n > 0 {
		cfg.PageSize = n
	}
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		cfg.SessionCount = n
	}
	if d, _ := cmd.Flags().GetDuration("latency"); d >= 0 {
		cfg.FetchLatency = d
	}
	if d, _ := cmd.Flags().GetDuration("cache-ttl"); d >= 0 {
		cfg.CacheTTL = d
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	store := session.NewStore(session.Generate(cfg.SessionCount, demoSeed)).
		WithLatency(cfg.FetchLatency)
	cached := session.NewCachedSource(store.Metadata, cfg.CacheTTL)

	logger.Info().
		Int("sessions", store.Len()).
		Int("page_size", cfg.PageSize).
		Dur("latency", cfg.FetchLatency).
		Msg("starting session browser")

	model := tui.NewBrowser(ctx, store, cached.Fetch, logger)
	model.SetPageSize(cfg.PageSize)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}
