package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/chat"
	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/configuration"
	"github.com/Sro01/Documate/store"
)

// NewChatCmd instantiates and returns the chat command.
func NewChatCmd(config *configuration.Config, s *store.Store, client *api.Client) *cobra.Command {
	var opts struct {
		SessionID string
		ChatbotID string
	}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with a chatbot",
		Long:  "Interactive chat with a chatbot, with sessions saved locally",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			repository := chat.NewRepository(s)
			controller := chat.NewController(repository, s, client)
			defer controller.Close()
			list := chat.NewSessionList(repository)
			defer list.Close()

			// Fetch chatbots; an unauthenticated or offline start still
			// lets the user read saved sessions.
			chatbots, err := client.ListChatbots(ctx)
			if err != nil {
				log.Warn("listing chatbots", "error", err)
			}

			model, err := New(ctx, controller, repository, list, chatbots)
			cobra.CheckErr(err)

			if opts.SessionID != "" {
				controller.Select(opts.SessionID)
			}
			model.targetChatbot(firstNonEmpty(opts.ChatbotID, config.Chat.DefaultChatbotID), s)

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = program.Run()
			cobra.CheckErr(err)
		},
	}

	cmd.Flags().StringVarP(&opts.SessionID, "session", "s", "", "Resume the session with this id")
	cmd.Flags().StringVarP(&opts.ChatbotID, "chatbot", "c", "", "Target this chatbot")
	return cmd
}

// targetChatbot points the model at chatbotID when it is available, falling
// back to the previously selected chatbot, then the first available one.
func (m *Model) targetChatbot(chatbotID string, s *store.Store) {
	if chatbotID == "" {
		if selected := s.LoadSelectedChatbot(); selected != nil {
			chatbotID = selected.ChatbotID
		}
	}
	for i, chatbot := range m.chatbots {
		if chatbot.ChatbotID == chatbotID {
			m.chatbotIndex = i
			return
		}
	}
	m.chatbotIndex = 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
