package command

import (
	"fmt"

	"creatorhub/cmd/cli/authentication"
	"creatorhub/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Register, log in and out of the creatorhub API. The session token is kept in the OS keyring.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.RegisterRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Role, _ = cmd.Flags().GetString("role")
		req.Name, _ = cmd.Flags().GetString("name")

		resp, err := newClient().Register(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		if err := saveSession(resp); err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), "Registered %s as %s", resp.User.Email, resp.User.Role)
		printMuted(cmd.OutOrStdout(), "UserID: %s", resp.User.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		resp, err := newClient().Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if err := saveSession(resp); err != nil {
			return err
		}

		printSuccess(cmd.OutOrStdout(), "Logged in as %s (%s)", resp.User.Email, resp.User.Role)
		return nil
	},
}

// logout is client-side only: tokens stay valid until they expire.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteSession(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		printSuccess(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account of the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := authedClient()
		if err != nil {
			return err
		}
		user, err := c.Me(cmd.Context())
		if err != nil {
			return err
		}

		printHeading(cmd.OutOrStdout(), "%s", user.Email)
		fmt.Fprintf(cmd.OutOrStdout(), "id:      %s\nrole:    %s\njoined:  %s\n",
			user.ID, user.Role, user.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

func saveSession(resp *dto.AuthResponse) error {
	err := authentication.StoreSession(&authentication.StoredSession{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Email:  resp.User.Email,
		Role:   resp.User.Role.String(),
	})
	if err != nil {
		return fmt.Errorf("store session in keyring: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password, at least 8 characters")
	registerCmd.Flags().StringP("role", "r", "", "Account role: creator or brand")
	registerCmd.Flags().StringP("name", "n", "", "Display or company name for the initial profile")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("role")

	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password of the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
