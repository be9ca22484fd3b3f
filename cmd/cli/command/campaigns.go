package command

import (
	"fmt"
	"text/tabwriter"

	"creatorhub/internal/microservices/http-api/models"

	"github.com/spf13/cobra"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List and answer campaign offers",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaigns you are part of",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, session, err := authedClient()
		if err != nil {
			return err
		}
		campaigns, err := c.ListCampaigns(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printHeading(out, "Campaigns for %s (%s)", session.Email, session.Role)
		if len(campaigns) == 0 {
			printMuted(out, "No campaigns yet.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tBUDGET\tSTATUS\tCREATED")
		for _, cp := range campaigns {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				cp.ID, cp.Title, cp.Budget.StringFixed(2), cp.Status, cp.CreatedAt.Format("2006-01-02"))
		}
		return tw.Flush()
	},
}

var campaignsAcceptCmd = &cobra.Command{
	Use:   "accept <campaign-id>",
	Short: "Accept a campaign offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respondToCampaign(cmd, args[0], models.CampaignAccepted)
	},
}

var campaignsDeclineCmd = &cobra.Command{
	Use:   "decline <campaign-id>",
	Short: "Decline a campaign offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respondToCampaign(cmd, args[0], models.CampaignDeclined)
	},
}

func respondToCampaign(cmd *cobra.Command, id string, status models.CampaignStatus) error {
	c, _, err := authedClient()
	if err != nil {
		return err
	}
	campaign, err := c.RespondToCampaign(cmd.Context(), id, status)
	if err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Campaign %q is now %s", campaign.Title, campaign.Status)
	return nil
}

func init() {
	rootCmd.AddCommand(campaignsCmd)
	campaignsCmd.AddCommand(campaignsListCmd, campaignsAcceptCmd, campaignsDeclineCmd)
}
