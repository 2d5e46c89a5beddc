package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/config"
	"github.com/skillboard/skillboard-api/internal/database"
	"github.com/skillboard/skillboard-api/internal/handlers"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "skillboard-api",
		Short: "Workforce allocation and capacity tracking API",
	}

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			gin.SetMode(cfg.GinMode)

			if err := database.Connect(cfg); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := database.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			if err := database.Seed(database.GetDB()); err != nil {
				return fmt.Errorf("failed to seed reference data: %w", err)
			}

			roleSkills, err := config.LoadRoleSkills(cfg.RoleSkillsFile)
			if err != nil {
				return fmt.Errorf("failed to load role skills: %w", err)
			}

			r := handlers.NewRouter(database.GetDB(), cfg, roleSkills)

			log.Printf("Server starting on %s", addr)
			return r.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := database.Connect(cfg); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := database.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Println("Migrations complete")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the skill catalog and task templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := database.Connect(cfg); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := database.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			if err := database.Seed(database.GetDB()); err != nil {
				return fmt.Errorf("failed to seed reference data: %w", err)
			}
			log.Println("Seed complete")
			return nil
		},
	}
}
