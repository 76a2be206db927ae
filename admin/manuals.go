package admin

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/file"
	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
)

// NewManualsCmd instantiates and returns the manuals command.
func NewManualsCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manuals",
		Short: "Manage chatbot manuals",
		Long:  "Manage the reference documents uploaded for chatbots",
	}
	cmd.AddCommand(newListManualsCmd(client))
	cmd.AddCommand(newUploadManualCmd(client))
	cmd.AddCommand(newDeleteManualCmd(client))
	return cmd
}

// newListManualsCmd instantiates and returns the manuals list command.
func newListManualsCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list <chatbot-id>",
		Short: "List a chatbot's manuals",
		Long:  "List a chatbot's manuals",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			manuals, err := client.ListManuals(cmd.Context(), args[0])
			cobra.CheckErr(err)

			cli.Title("MANUALS")
			for _, manual := range manuals {
				cli.Field("manual_id", manual.ManualID)
				cli.Field("display_name", manual.DisplayName)
				cli.Field("filename", manual.OriginalFilename)
				cli.Field("status", string(manual.Status))
				cli.Separator()
			}
		},
	}
}

// newUploadManualCmd instantiates and returns the manuals upload command.
func newUploadManualCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Selection   *file.SelectionOpts
		DisplayName string
	}

	cmd := &cobra.Command{
		Use:   "upload <chatbot-id>",
		Short: "Upload manuals for a chatbot",
		Long:  "Upload PDF manuals for a chatbot; use --file repeatedly or point it at a directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			chatbotID := args[0]
			files, err := file.Parse(opts.Selection)
			cobra.CheckErr(err)
			if len(files) == 0 {
				cli.Warning("No files selected.")
				return
			}

			for _, f := range files {
				displayName := opts.DisplayName
				if displayName == "" || len(files) > 1 {
					displayName = displayNameFromPath(f.Path)
				}
				manual, err := client.UploadManual(cmd.Context(), chatbotID, displayName, f.Path, bytes.NewReader(f.Content))
				cobra.CheckErr(err)
				cli.BotOutput("Uploaded %s (%s), status %s.\n", manual.DisplayName, manual.ManualID, manual.Status)
			}
		},
	}

	opts.Selection = file.GetOpts(cmd)
	cmd.Flags().StringVarP(&opts.DisplayName, "display-name", "n", "", "Display name (single file only)")
	return cmd
}

// newDeleteManualCmd instantiates and returns the manuals delete command.
func newDeleteManualCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <manual-id>",
		Short: "Delete an uploaded manual",
		Long:  "Delete an uploaded manual",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Delete this manual?") {
				return
			}
			err := client.DeleteManual(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.BotOutput("Deleted manual %s.\n", args[0])
		},
	}
}

func displayNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
