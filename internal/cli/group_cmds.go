package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"eperson-backend/internal/database/models"
	"eperson-backend/internal/service"

	"github.com/spf13/cobra"
)

func newCountCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			count, err := svc.Count(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]int64{"count": count})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}
}

func newEmptyCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "empty",
		Short: "List groups without direct members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			groups, err := svc.GetEmptyGroups(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), groups)
			}
			return printGroupTable(cmd.OutOrStdout(), groups)
		},
	}
}

func newSearchCmd(factory serviceFactory) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search groups by their metadata",
		Long:  "Case-insensitive substring search over the configured group search fields. Without a query every group is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			svc, err := factory()
			if err != nil {
				return err
			}
			result, err := svc.Search(cmd.Context(), query, page, pageSize)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), result)
			}
			if err := printGroupTable(cmd.OutOrStdout(), result.Groups); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\npage %d, %d of %d groups\n", result.Page, len(result.Groups), result.Total)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Groups per page")
	return cmd
}

func newEdgesCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "List direct parent/child nesting edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			pairs, err := svc.GetGroup2GroupResults(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), pairs)
			}
			return printPairTable(cmd.OutOrStdout(), pairs)
		},
	}
}

func newRebuildCacheCmd(factory serviceFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-cache",
		Short: "Recompute the group2group cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := factory()
			if err != nil {
				return err
			}
			size, err := svc.RebuildCache(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]int{"rows": size})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "group2group cache rebuilt: %d rows\n", size)
			return err
		},
	}
}

func printGroupTable(w io.Writer, groups []service.GroupResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPERMANENT\tCREATED")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", g.ID, g.Name, g.Permanent, g.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func printPairTable(w io.Writer, pairs []models.GroupPair) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PARENT\tCHILD")
	for _, p := range pairs {
		fmt.Fprintf(tw, "%s\t%s\n", p.ParentID, p.ChildID)
	}
	return tw.Flush()
}
