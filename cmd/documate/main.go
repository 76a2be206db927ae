package main

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/admin"
	"github.com/Sro01/Documate/auth"
	"github.com/Sro01/Documate/chat"
	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/configuration"
	"github.com/Sro01/Documate/store"
	"github.com/Sro01/Documate/tui"
)

const configFilepath = "~/.config/documate/config.json"

var rootCmd = &cobra.Command{
	Use:     "documate",
	Short:   "A CLI for the DoQ-Mate chatbot platform",
	Version: "1.0",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	// Create store
	s, err := store.New(config.Chat.Directory)
	if err != nil {
		panic(err)
	}
	// Ensure store is closed when the program exits normally
	defer s.Close()

	client := api.New(config, s)

	chatCmd := tui.NewChatCmd(config, s, client)
	for _, subcommand := range chat.ManagementCommands(s) {
		chatCmd.AddCommand(subcommand)
	}
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(auth.NewCmd(client, s))
	rootCmd.AddCommand(admin.NewSignupCmd(client))
	rootCmd.AddCommand(admin.NewChatbotsCmd(client))
	rootCmd.AddCommand(admin.NewManualsCmd(client))
	rootCmd.AddCommand(admin.NewAdminsCmd(client))
	rootCmd.AddCommand(admin.NewStatsCmd(client))
	rootCmd.Execute()
}
