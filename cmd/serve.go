package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/learno/internal/config"
	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/images"
	"github.com/abhisek/learno/internal/llm"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/phrasing"
	"github.com/abhisek/learno/internal/server"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/store"
	"github.com/abhisek/learno/internal/tutor"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tutoring HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the journal, wires the tutor, and serves HTTP until
// interrupted.
func runServe(cmd *cobra.Command) error {
	cfg := config.FromEnv()

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := buildBackend(ctx, cmd, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close()

	srv := server.New(server.Options{
		Config:   cfg,
		Tutor:    b.tutor,
		Sessions: b.sessions,
		Log:      log,
		Version:  version,
	})
	return srv.Run(ctx)
}

// backend bundles what the HTTP server and the console client share.
type backend struct {
	store    *store.Store
	sessions *session.Store
	catalog  *content.Catalog
	tutor    *tutor.Tutor
}

func (b *backend) Close() {
	_ = b.store.Close()
}

// buildBackend opens the event journal and wires the tutor with its LLM
// speaker and, when configured, the illustrator. The tutor cannot phrase
// a single turn without a provider, so a missing API key is fatal here.
func buildBackend(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *logger.Logger) (*backend, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	opts := []tutor.Option{tutor.WithJournal(st.EventRepo())}
	if gen, imgErr := images.NewGenerator(images.ConfigFromEnv()); imgErr != nil {
		log.Warn("image generation disabled", "reason", imgErr)
	} else {
		opts = append(opts, tutor.WithIllustrator(gen))
	}

	sessions := session.NewStore(cfg.SessionTimeout)
	catalog := content.NewCatalog()
	speaker := phrasing.New(provider, phrasing.DefaultConfig())

	return &backend{
		store:    st,
		sessions: sessions,
		catalog:  catalog,
		tutor:    tutor.New(sessions, catalog, speaker, log, opts...),
	}, nil
}
