package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"uploadcheck/internal/adapters/web"
	"uploadcheck/internal/config"
	"uploadcheck/internal/infrastructure/i18n"
	"uploadcheck/internal/infrastructure/profiles"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "uploadcheck",
		Short:        "File upload checks and localised page text for ODS/CSV returns",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newCheckCmd())
	return root
}

// deps holds what every subcommand loads from configuration.
type deps struct {
	cfg      *config.Config
	catalog  *i18n.Catalog
	profiles *profiles.Store
}

func loadDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	catalog, err := i18n.NewCatalog(cfg.DefaultLang)
	if err != nil {
		return nil, err
	}
	store, err := profiles.Load(cfg.ProfilesFile)
	if err != nil {
		return nil, err
	}
	return &deps{cfg: cfg, catalog: catalog, profiles: store}, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload pages and check endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps()
			if err != nil {
				return err
			}
			srv, err := web.NewServer(d.cfg, d.profiles, d.catalog)
			if err != nil {
				return err
			}
			if err := srv.Start(); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			log.Println("uploadcheck: bye")
			return nil
		},
	}
}
