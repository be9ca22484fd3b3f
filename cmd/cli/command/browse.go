package command

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var creatorsCmd = &cobra.Command{
	Use:   "creators",
	Short: "Browse creator profiles",
}

var creatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List creators, most followed first",
	Example: `  creatorhub creators list --niche fitness --min-followers 10000
  creatorhub creators list --search ana --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := pageQuery(cmd)
		setIfChanged(cmd, query, "niche", "niche")
		setIfChanged(cmd, query, "min-followers", "minFollowers")
		setIfChanged(cmd, query, "min-engagement", "minEngagement")
		setIfChanged(cmd, query, "search", "search")

		page, err := newClient().ListCreators(cmd.Context(), query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printHeading(out, "Creators (%d of %d)", len(page.Items), page.Total)
		if len(page.Items) == 0 {
			printMuted(out, "No creators match these filters.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tPLATFORM\tFOLLOWERS\tENGAGEMENT\tNICHES")
		for _, p := range page.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f%%\t%s\n",
				p.ID, p.DisplayName, orDash(p.Platform), p.FollowersCount, p.EngagementRate, orDash(strings.Join(p.Niches, ", ")))
		}
		return tw.Flush()
	},
}

var requirementsCmd = &cobra.Command{
	Use:     "requirements",
	Aliases: []string{"reqs"},
	Short:   "Browse brand requirements",
}

var requirementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requirements, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := pageQuery(cmd)
		setIfChanged(cmd, query, "niche", "niche")
		setIfChanged(cmd, query, "min-followers", "minFollowers")
		setIfChanged(cmd, query, "status", "status")
		setIfChanged(cmd, query, "brand", "brandId")

		page, err := newClient().ListRequirements(cmd.Context(), query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printHeading(out, "Requirements (%d of %d)", len(page.Items), page.Total)
		if len(page.Items) == 0 {
			printMuted(out, "No requirements match these filters.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tMIN FOLLOWERS\tBUDGET")
		for _, r := range page.Items {
			budget := "-"
			if r.BudgetMin.Valid || r.BudgetMax.Valid {
				budget = fmt.Sprintf("%s - %s", nullAmount(r.BudgetMin.Valid, r.BudgetMin.Decimal.StringFixed(2)),
					nullAmount(r.BudgetMax.Valid, r.BudgetMax.Decimal.StringFixed(2)))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.Title, r.Status, r.MinFollowers, budget)
		}
		return tw.Flush()
	},
}

func pageQuery(cmd *cobra.Command) url.Values {
	query := url.Values{}
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return query
}

// setIfChanged copies a flag into the query only when the user set it,
// so the server defaults stay in charge otherwise.
func setIfChanged(cmd *cobra.Command, query url.Values, flag, param string) {
	if !cmd.Flags().Changed(flag) {
		return
	}
	query.Set(param, cmd.Flags().Lookup(flag).Value.String())
}

func nullAmount(valid bool, s string) string {
	if !valid {
		return "?"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number, starting at 1")
	cmd.Flags().Int("limit", 20, "Items per page (max 100)")
}

func init() {
	rootCmd.AddCommand(creatorsCmd, requirementsCmd)
	creatorsCmd.AddCommand(creatorsListCmd)
	requirementsCmd.AddCommand(requirementsListCmd)

	addPageFlags(creatorsListCmd)
	creatorsListCmd.Flags().String("niche", "", "Only creators in this niche")
	creatorsListCmd.Flags().Int64("min-followers", 0, "Minimum follower count (inclusive)")
	creatorsListCmd.Flags().Float64("min-engagement", 0, "Minimum engagement rate in percent")
	creatorsListCmd.Flags().StringP("search", "s", "", "Match display name or bio")

	addPageFlags(requirementsListCmd)
	requirementsListCmd.Flags().String("niche", "", "Only requirements targeting this niche")
	requirementsListCmd.Flags().Int64("min-followers", 0, "Requirements whose follower floor is at least this")
	requirementsListCmd.Flags().String("status", "", "open, paused or closed")
	requirementsListCmd.Flags().String("brand", "", "Only requirements of this brand user ID")
}
