package cmd

import (
	"log"

	"carlot/config"
	"carlot/database"

	"github.com/spf13/cobra"
)

// migrateCmd applies pending schema migrations and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
		cfg := config.Get()

		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}

		applied, err := database.Migrate(db)
		if err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Printf("Migrations applied: %d", applied)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
