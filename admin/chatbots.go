package admin

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
)

// NewChatbotsCmd instantiates and returns the chatbots command.
func NewChatbotsCmd(client *api.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatbots",
		Short: "Manage chatbots",
		Long:  "Manage chatbots",
	}
	cmd.AddCommand(newListChatbotsCmd(client))
	cmd.AddCommand(newGetChatbotCmd(client))
	cmd.AddCommand(newCreateChatbotCmd(client))
	cmd.AddCommand(newUpdateChatbotCmd(client))
	cmd.AddCommand(newDeleteChatbotCmd(client))
	return cmd
}

// newListChatbotsCmd instantiates and returns the chatbots list command.
func newListChatbotsCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all chatbots",
		Long:  "List all chatbots",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			chatbots, err := client.ListChatbots(cmd.Context())
			cobra.CheckErr(err)

			cli.Title("CHATBOTS")
			for _, chatbot := range chatbots {
				printChatbot(&chatbot)
				cli.Separator()
			}
		},
	}
}

// newGetChatbotCmd instantiates and returns the chatbots get command.
func newGetChatbotCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <chatbot-id>",
		Short: "Show a chatbot",
		Long:  "Show a chatbot",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			chatbot, err := client.GetChatbot(cmd.Context(), args[0])
			cobra.CheckErr(err)
			printChatbot(chatbot)
		},
	}
}

// newCreateChatbotCmd instantiates and returns the chatbots create command.
func newCreateChatbotCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Description string
		Tag         string
		Public      bool
	}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a chatbot",
		Long:  "Create a chatbot",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request := &api.CreateChatbotRequest{
				Name:        args[0],
				Description: opts.Description,
				IsPublic:    &opts.Public,
				Tag:         opts.Tag,
			}
			chatbot, err := client.CreateChatbot(cmd.Context(), request)
			cobra.CheckErr(err)
			printChatbot(chatbot)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Chatbot description")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Chatbot tag")
	cmd.Flags().BoolVar(&opts.Public, "public", false, "Make the chatbot visible to end users")
	return cmd
}

// newUpdateChatbotCmd instantiates and returns the chatbots update command.
func newUpdateChatbotCmd(client *api.Client) *cobra.Command {
	var opts struct {
		Name        string
		Description string
		Tag         string
		Public      bool
	}

	cmd := &cobra.Command{
		Use:   "update <chatbot-id>",
		Short: "Update a chatbot",
		Long:  "Update a chatbot; only the flags you pass are changed",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request := &api.UpdateChatbotRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &opts.Name
			}
			if cmd.Flags().Changed("description") {
				request.Description = &opts.Description
			}
			if cmd.Flags().Changed("tag") {
				request.Tag = &opts.Tag
			}
			if cmd.Flags().Changed("public") {
				request.IsPublic = &opts.Public
			}

			chatbot, err := client.UpdateChatbot(cmd.Context(), args[0], request)
			cobra.CheckErr(err)
			printChatbot(chatbot)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "New tag")
	cmd.Flags().BoolVar(&opts.Public, "public", false, "Visibility to end users")
	return cmd
}

// newDeleteChatbotCmd instantiates and returns the chatbots delete command.
func newDeleteChatbotCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <chatbot-id>",
		Short: "Delete a chatbot and its manuals",
		Long:  "Delete a chatbot and its manuals",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Delete this chatbot and all of its manuals?") {
				return
			}
			err := client.DeleteChatbot(cmd.Context(), args[0])
			cobra.CheckErr(err)
			cli.BotOutput("Deleted chatbot %s.\n", args[0])
		},
	}
}

func printChatbot(chatbot *api.Chatbot) {
	cli.Field("chatbot_id", chatbot.ChatbotID)
	cli.Field("name", chatbot.Name)
	if chatbot.Description != "" {
		cli.Field("description", chatbot.Description)
	}
	if chatbot.Tag != "" {
		cli.Field("tag", chatbot.Tag)
	}
	cli.Field("public", chatbot.IsPublic)
}
