package admin

import (
	"github.com/spf13/cobra"

	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/cli"
)

// NewStatsCmd instantiates and returns the stats command.
func NewStatsCmd(client *api.Client) *cobra.Command {
	var opts struct {
		ChatbotID string
		Date      string
	}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		Long:  "Show usage statistics, platform-wide or narrowed by chatbot or date",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			switch {
			case opts.ChatbotID != "":
				stats, err := client.GetChatbotStats(ctx, opts.ChatbotID)
				cobra.CheckErr(err)
				cli.Title("STATS - %s", chatbotHeading(stats.ChatbotName, stats.ChatbotID))
				cli.Field("total_queries", stats.TotalQueries)
				cli.Field("unique_clients", stats.UniqueClients)
				printByDate(stats.ByDate)

			case opts.Date != "":
				stats, err := client.GetDateStats(ctx, opts.Date)
				cobra.CheckErr(err)
				cli.Title("STATS - %s", stats.Date)
				cli.Field("total_queries", stats.TotalQueries)
				cli.Field("unique_clients", stats.UniqueClients)
				printByChatbot(stats.ByChatbot)

			default:
				stats, err := client.GetOverviewStats(ctx)
				cobra.CheckErr(err)
				cli.Title("STATS - OVERVIEW")
				cli.Field("total_queries", stats.TotalQueries)
				cli.Field("unique_clients", stats.UniqueClients)
				printByChatbot(stats.ByChatbot)
				printByDate(stats.ByDate)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.ChatbotID, "chatbot", "c", "", "Narrow to one chatbot")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "Narrow to one date (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("chatbot", "date")
	return cmd
}

func printByChatbot(counts []api.ChatbotQueryCount) {
	if len(counts) == 0 {
		return
	}
	cli.Separator()
	for _, count := range counts {
		cli.Field(chatbotHeading(count.ChatbotName, count.ChatbotID), count.Queries)
	}
}

func printByDate(counts []api.DateQueryCount) {
	if len(counts) == 0 {
		return
	}
	cli.Separator()
	for _, count := range counts {
		cli.Field(count.Date, count.Queries)
	}
}

func chatbotHeading(name, chatbotID string) string {
	if name != "" {
		return name
	}
	return chatbotID
}
