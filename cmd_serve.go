package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/db"
	"github.com/robalobadob/boggle/apps/go-server/internal/httpserver"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var port, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The server logs JSON lines; the console writer is for interactive commands.
			log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

			cfg := a.cfg
			if port != "" {
				cfg.Port = port
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}

			conn, err := db.OpenAndMigrate(cfg.DBPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			// Load eagerly to surface a missing list at boot.
			sv := solver.New(lexicon.FromPath(cfg.WordlistFile))
			if lex, err := sv.Lexicon(); err != nil {
				log.Warn().Err(err).Msg("word list not loaded; /solve will return 503 until it is")
			} else {
				log.Info().Int("words", lex.Len()).Msg("word list loaded")
			}

			srv := httpserver.New(cfg, sv, store.NewMemoryStore(), conn)
			log.Info().Str("port", cfg.Port).Str("db", cfg.DBPath).Msg("starting go-server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default: PORT or 5175)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default: DB_PATH or ./data/boggle.db)")
	return cmd
}
