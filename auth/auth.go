package auth

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
	"github.com/Sro01/Documate/store"
)

// NewCmd instantiates and returns the auth command.
func NewCmd(client *api.Client, s *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate against the platform",
		Long:  "Authenticate against the platform",
	}
	cmd.AddCommand(newLoginCmd(client))
	cmd.AddCommand(newLogoutCmd(client))
	cmd.AddCommand(newMeCmd(client, s))
	cmd.AddCommand(newPasswdCmd(client))
	cmd.AddCommand(newFindUsernameCmd(client))
	cmd.AddCommand(newResetPasswordCmd(client))
	return cmd
}

// newLoginCmd instantiates and returns the auth login command.
func newLoginCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Username string
	}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an administrator",
		Long:  "Log in as an administrator",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			username := opts.Username
			var err error
			if username == "" {
				username, err = cli.PromptLine("username: ")
				cobra.CheckErr(err)
			}
			password, err := cli.PromptPassword("password:")
			cobra.CheckErr(err)

			_, err = client.Login(cmd.Context(), username, password)
			cobra.CheckErr(err)

			admin, err := client.Me(cmd.Context())
			cobra.CheckErr(err)
			cli.BotOutput("Logged in as %s (%s).\n", admin.Name, admin.Username)
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Username to log in with")
	return cmd
}

// newLogoutCmd instantiates and returns the auth logout command.
func newLogoutCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored credentials",
		Long:  "Discard the stored credentials",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			client.Logout()
			cli.BotOutput("Logged out.\n")
		},
	}
}

// newMeCmd instantiates and returns the auth me command.
func newMeCmd(client *api.Client, s *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in administrator",
		Long:  "Show the logged-in administrator",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if s.LoadAccessToken() == "" {
				cli.Warning("Not logged in.")
				return
			}
			admin, err := client.Me(cmd.Context())
			cobra.CheckErr(err)

			cli.Title("ACCOUNT")
			cli.Field("admin_id", admin.AdminID)
			cli.Field("username", admin.Username)
			cli.Field("name", admin.Name)
			if admin.LastLoginAt != "" {
				cli.Field("last_login", admin.LastLoginAt)
			}
		},
	}
}

// newPasswdCmd instantiates and returns the auth passwd command.
func newPasswdCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the logged-in administrator's password",
		Long:  "Change the logged-in administrator's password",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			oldPassword, err := cli.PromptPassword("current password:")
			cobra.CheckErr(err)
			newPassword, err := cli.PromptPassword("new password:")
			cobra.CheckErr(err)
			confirmation, err := cli.PromptPassword("confirm new password:")
			cobra.CheckErr(err)
			if newPassword != confirmation {
				cli.Error("Passwords do not match.")
				return
			}

			err = client.ChangePassword(cmd.Context(), oldPassword, newPassword)
			cobra.CheckErr(err)
			cli.BotOutput("Password changed.\n")
		},
	}
}

// newFindUsernameCmd instantiates and returns the auth find-username command.
func newFindUsernameCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "find-username <name>",
		Short: "Look up masked usernames registered under a name",
		Long:  "Look up masked usernames registered under a name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			candidates, err := client.FindUsername(cmd.Context(), args[0])
			cobra.CheckErr(err)
			if len(candidates) == 0 {
				cli.Warning("No accounts found under that name.")
				return
			}
			for _, candidate := range candidates {
				cli.UserInput("%s\n", candidate.UsernameMasked)
			}
		},
	}
}

// newResetPasswordCmd instantiates and returns the auth reset-password command.
func newResetPasswordCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username> <name>",
		Short: "Issue a temporary password for an account",
		Long:  "Issue a temporary password for an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			tempPassword, err := client.ResetPassword(cmd.Context(), args[0], args[1])
			cobra.CheckErr(err)
			cli.BotOutput("Temporary password issued.\n")
			cli.Field("temp_password", tempPassword)
		},
	}
}
