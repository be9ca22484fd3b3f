package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var socialCmd = &cobra.Command{
	Use:     "social <platform> <handle>",
	Short:   "Look up social metrics for a handle",
	Example: "  creatorhub social instagram ana.fit",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newClient().SocialMetrics(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		verified := ""
		if m.Verified {
			verified = " (verified)"
		}
		printHeading(out, "@%s on %s%s", m.Handle, m.Platform, verified)
		fmt.Fprintf(out, "followers:    %d\n", m.Followers)
		fmt.Fprintf(out, "engagement:   %.2f%%\n", m.EngagementRate)
		fmt.Fprintf(out, "avg likes:    %d\n", m.AvgLikes)
		fmt.Fprintf(out, "avg comments: %d\n", m.AvgComments)
		if m.AvgViews > 0 {
			fmt.Fprintf(out, "avg views:    %d\n", m.AvgViews)
		}
		printMuted(out, "fetched %s", m.FetchedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(socialCmd)
}
