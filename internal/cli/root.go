package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"eperson-backend/internal/config"
	"eperson-backend/internal/database"
	"eperson-backend/internal/logger"
	"eperson-backend/internal/repository"
	"eperson-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// serviceFactory builds the group service a command runs against
type serviceFactory func() (service.GroupServiceInterface, error)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd(openGroupService)
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]interface{}{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	var output string

	rootCmd := &cobra.Command{
		Use:           "groupctl",
		Short:         "Inspect and maintain eperson groups",
		Long:          "Command-line access to group search, counts and the group2group nesting cache.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("GROUPCTL_OUTPUT"); v != "" {
					output = v
				}
			}
			if output != "table" && output != "json" {
				return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
			}
			cmd.SetContext(logger.ContextWithSource(cmd.Context(), "groupctl"))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	rootCmd.AddCommand(newCountCmd(factory))
	rootCmd.AddCommand(newEmptyCmd(factory))
	rootCmd.AddCommand(newSearchCmd(factory))
	rootCmd.AddCommand(newEdgesCmd(factory))
	rootCmd.AddCommand(newRebuildCacheCmd(factory))

	return rootCmd
}

// openGroupService wires the service from the environment the same way the server does
func openGroupService() (service.GroupServiceInterface, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel, os.Stderr)

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	repos := repository.NewRepositories(db)
	return service.NewGroupService(repos, repository.NewGormTransactor(db, repos), validator.New(), cfg.GroupSearchFields), nil
}

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
