package chat

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/cli"
	"github.com/Sro01/Documate/store"
)

// ManagementCommands returns the session housekeeping subcommands, attached
// under the chat command by main.
func ManagementCommands(s *store.Store) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(s),
		newRenameCmd(s),
		newPinCmd(s),
		newDeleteCmd(s),
		newClearCmd(s),
	}
}

// newListCmd instantiates and returns the chats list command.
func newListCmd(s *store.Store) *cobra.Command {
	var opts struct {
		Verbose bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved chats, pinned first",
		Long:  "List saved chats, pinned first",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			repository := NewRepository(s)
			list := NewSessionList(repository)
			defer list.Close()

			cli.Title("DOCUMATE CHATS")
			sessions := list.Sessions()
			if len(sessions) == 0 {
				cli.Warning("No saved chats.")
				return
			}
			for _, session := range sessions {
				marker := " "
				if session.IsPinned {
					marker = "*"
				}
				cli.UserInput("%s %s (%s)\n", marker, session.Title, session.SessionID)
				if opts.Verbose {
					cli.Field("  chatbot", session.ChatbotID)
					cli.Field("  messages", len(session.Messages))
					cli.Field("  updated", session.UpdatedAt.Format("2006/01/02 15:04"))
					if preview := list.Preview(session); preview != "" {
						cli.BotOutput("  > %s\n", firstLine(preview))
					}
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show message counts and previews")
	return cmd
}

// newRenameCmd instantiates and returns the chats rename command.
func newRenameCmd(s *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <session-id> <title>",
		Short: "Rename a chat",
		Long:  "Rename a chat",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			repository := NewRepository(s)
			if updated := repository.RenameSession(args[0], args[1]); updated == nil {
				cli.Warning("No chat with id %s.", args[0])
				return
			}
			cli.BotOutput("Renamed chat %s.\n", args[0])
		},
	}
}

// newPinCmd instantiates and returns the chats pin command.
func newPinCmd(s *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "pin <session-id>",
		Short: "Toggle a chat's pinned status",
		Long:  "Toggle a chat's pinned status",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			repository := NewRepository(s)
			updated := repository.TogglePin(args[0])
			if updated == nil {
				cli.Warning("No chat with id %s.", args[0])
				return
			}
			if updated.IsPinned {
				cli.BotOutput("Pinned chat %s.\n", args[0])
			} else {
				cli.BotOutput("Unpinned chat %s.\n", args[0])
			}
		},
	}
}

// newDeleteCmd instantiates and returns the chats delete command.
func newDeleteCmd(s *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a chat",
		Long:  "Delete a chat",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Delete this chat?") {
				return
			}
			repository := NewRepository(s)
			if !repository.DeleteSession(args[0]) {
				cli.Warning("No chat with id %s.", args[0])
				return
			}
			cli.BotOutput("Deleted chat %s.\n", args[0])
		},
	}
}

// newClearCmd instantiates and returns the chats clear command.
func newClearCmd(s *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all chats",
		Long:  "Delete all chats",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Delete ALL saved chats?") {
				return
			}
			repository := NewRepository(s)
			repository.DeleteAllSessions()
			cli.BotOutput("Deleted all chats.\n")
		},
	}
}

func firstLine(s string) string {
	if index := strings.IndexByte(s, '\n'); index >= 0 {
		return s[:index]
	}
	return s
}
