package admin

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
)

// NewSignupCmd instantiates and returns the signup command.
func NewSignupCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Request and review administrator signups",
		Long:  "Request and review administrator signups",
	}
	cmd.AddCommand(newRequestSignupCmd(client))
	cmd.AddCommand(newCheckUsernameCmd(client))
	cmd.AddCommand(newListSignupsCmd(client))
	cmd.AddCommand(newGetSignupCmd(client))
	cmd.AddCommand(newApproveSignupCmd(client))
	cmd.AddCommand(newRejectSignupCmd(client))
	return cmd
}

// newRequestSignupCmd instantiates and returns the signup request command.
func newRequestSignupCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "request <username> <name>",
		Short: "Request a new administrator account",
		Long:  "Request a new administrator account; an existing administrator must approve it",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			username, name := args[0], args[1]

			availability, err := client.CheckUsername(cmd.Context(), username)
			cobra.CheckErr(err)
			if !availability.IsAvailable {
				cli.Error("Username %s is taken: %s", username, availability.Message)
				return
			}

			password, err := cli.PromptPassword("password:")
			cobra.CheckErr(err)
			confirmation, err := cli.PromptPassword("confirm password:")
			cobra.CheckErr(err)
			if password != confirmation {
				cli.Error("Passwords do not match.")
				return
			}

			signup, err := client.RequestSignup(cmd.Context(), username, password, name)
			cobra.CheckErr(err)
			cli.BotOutput("Signup %s submitted, awaiting approval.\n", signup.SignupID)
		},
	}
}

// newCheckUsernameCmd instantiates and returns the signup check-username command.
func newCheckUsernameCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "check-username <username>",
		Short: "Check a username for availability",
		Long:  "Check a username for availability",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			availability, err := client.CheckUsername(cmd.Context(), args[0])
			cobra.CheckErr(err)
			if availability.IsAvailable {
				cli.BotOutput("%s is available.\n", availability.Username)
			} else {
				cli.Warning("%s is taken: %s", availability.Username, availability.Message)
			}
		},
	}
}

// newListSignupsCmd instantiates and returns the signup list command.
func newListSignupsCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending signup requests",
		Long:  "List pending signup requests",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			signups, err := client.ListSignups(cmd.Context())
			cobra.CheckErr(err)

			cli.Title("PENDING SIGNUPS")
			if len(signups) == 0 {
				cli.Warning("No pending signups.")
				return
			}
			for _, signup := range signups {
				cli.Field("signup_id", signup.SignupID)
				cli.Field("username", signup.Username)
				cli.Field("name", signup.Name)
				cli.Field("requested", signup.CreatedAt)
				cli.Separator()
			}
		},
	}
}

// newGetSignupCmd instantiates and returns the signup get command.
func newGetSignupCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <signup-id>",
		Short: "Show a signup request",
		Long:  "Show a signup request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			signup, err := client.GetSignup(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.Field("signup_id", signup.SignupID)
			cli.Field("username", signup.Username)
			cli.Field("name", signup.Name)
			cli.Field("requested", signup.CreatedAt)
			if signup.Details != "" {
				cli.Field("details", signup.Details)
			}
		},
	}
}

// newApproveSignupCmd instantiates and returns the signup approve command.
func newApproveSignupCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <signup-id>",
		Short: "Approve a signup request",
		Long:  "Approve a signup request, creating the administrator account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := client.ApproveSignup(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.BotOutput("Approved signup %s.\n", args[0])
		},
	}
}

// newRejectSignupCmd instantiates and returns the signup reject command.
func newRejectSignupCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <signup-id>",
		Short: "Reject a signup request",
		Long:  "Reject a signup request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Reject this signup?") {
				return
			}
			err := client.RejectSignup(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.BotOutput("Rejected signup %s.\n", args[0])
		},
	}
}
