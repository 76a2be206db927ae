package admin

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
)

// NewAdminsCmd instantiates and returns the admins command.
func NewAdminsCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admins",
		Short: "Manage administrator accounts",
		Long:  "Manage administrator accounts",
	}
	cmd.AddCommand(newListAdminsCmd(client))
	cmd.AddCommand(newGetAdminCmd(client))
	cmd.AddCommand(newDeleteAdminCmd(client))
	return cmd
}

// newListAdminsCmd instantiates and returns the admins list command.
func newListAdminsCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List administrator accounts",
		Long:  "List administrator accounts",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			admins, err := client.ListAdmins(cmd.Context())
			cobra.CheckErr(err)

			cli.Title("ADMINISTRATORS")
			for _, admin := range admins {
				printAdmin(&admin)
				cli.Separator()
			}
		},
	}
}

// newGetAdminCmd instantiates and returns the admins get command.
func newGetAdminCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <admin-id>",
		Short: "Show an administrator account",
		Long:  "Show an administrator account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			admin, err := client.GetAdmin(cmd.Context(), args[0])
			cobra.CheckErr(err)
			printAdmin(admin)
		},
	}
}

// newDeleteAdminCmd instantiates and returns the admins delete command.
func newDeleteAdminCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <admin-id>",
		Short: "Expel an administrator account",
		Long:  "Expel an administrator account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Expel this administrator?") {
				return
			}
			err := client.DeleteAdmin(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.BotOutput("Expelled administrator %s.\n", args[0])
		},
	}
}

func printAdmin(admin *api.Admin) {
	cli.Field("admin_id", admin.AdminID)
	cli.Field("username", admin.Username)
	cli.Field("name", admin.Name)
	if admin.LastLoginAt != "" {
		cli.Field("last_login", admin.LastLoginAt)
	}
}
