package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// replyMsg signals that an exchange round trip finished.
type replyMsg struct {
	err error
}

// sendCmd runs a send-and-await round trip off the UI goroutine.
func (m *Model) sendCmd(content, chatbotID string) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.SendAndAwaitReply(m.ctx, content, chatbotID)
		if err != nil {
			log.Error("sending message", "error", err)
		}
		return replyMsg{err: err}
	}
}

// editCmd runs a message edit, regenerating the following reply when present.
func (m *Model) editCmd(index int, content string) tea.Cmd {
	return func() tea.Msg {
		err := m.controller.EditUserMessage(m.ctx, index, content)
		if err != nil {
			log.Error("editing message", "error", err)
		}
		return replyMsg{err: err}
	}
}

// parseEditCommand parses "/edit N new text" input. The index is 1-based over
// the user's own messages as displayed.
func parseEditCommand(input string) (index int, content string, ok bool) {
	rest, found := strings.CutPrefix(input, "/edit ")
	if !found {
		return 0, "", false
	}
	parts := strings.SplitN(strings.TrimSpace(rest), " ", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 1 {
		return 0, "", false
	}
	content = strings.TrimSpace(parts[1])
	if content == "" {
		return 0, "", false
	}
	return n, content, true
}
