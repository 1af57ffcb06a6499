package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Satvik374/success-habit-tracker/internal/server"
	"github.com/Satvik374/success-habit-tracker/internal/storage"
)

func newServeCmd() *cobra.Command {
	var host string
	var port int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if host == "" {
				host = cfg.Server.Host
			}
			if port == 0 {
				port = cfg.Server.Port
			}
			if dbPath == "" {
				dbPath = cfg.Server.DBPath
			}
			if dbPath == "" {
				home, err := storage.DefaultDBPath()
				if err != nil {
					return err
				}
				dbPath = home + ".sync"
			}

			// The server keeps its own document store, separate from
			// the local game database.
			db, err := sql.Open("sqlite", dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.PingContext(ctx); err != nil {
				return err
			}

			srv, err := server.New(db)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(fmt.Sprintf("%s:%d", host, port))
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Bind address (default from config)")
	cmd.Flags().IntVar(&port, "port", 0, "Port (default from config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Server database path (default from config)")

	return cmd
}
