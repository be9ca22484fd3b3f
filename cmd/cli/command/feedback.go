package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate <user-id> <score>",
	Short: "Rate another user from 1 to 5",
	Long:  `Rate another user from 1 to 5. Rating the same user again replaces your earlier score.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil || score < 1 || score > 5 {
			return fmt.Errorf("score must be a whole number from 1 to 5, got %q", args[1])
		}

		c, _, err := authedClient()
		if err != nil {
			return err
		}
		rating, err := c.Rate(cmd.Context(), args[0], score)
		if err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), "Rated %s with %d/5", rating.ToUserID, rating.Score)
		return nil
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings [user-id]",
	Short: "Show the rating summary of a user (yourself by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		var userID string
		if len(args) == 1 {
			userID = args[0]
		} else {
			authed, session, err := authedClient()
			if err != nil {
				return err
			}
			c, userID = authed, session.UserID
		}

		summary, err := c.RatingSummary(cmd.Context(), userID)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printHeading(out, "Ratings for %s", summary.UserID)
		if summary.Count == 0 {
			printMuted(out, "No ratings yet.")
			return nil
		}
		fmt.Fprintf(out, "average: %s / 5\ncount:   %d\n", summary.Average, summary.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd, ratingsCmd)
}
