package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sro01/Documate/internal/types"
)

// View renders the UI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.pickerOpen {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(textAreaStyle.Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderHeader() string {
	title := " DoQ-Mate "
	if chatbot := m.selectedChatbot(); chatbot != nil {
		title = fmt.Sprintf(" DoQ-Mate | %s ", chatbot.Name)
	}
	return titleStyle.Render(title)
}

// renderTranscript renders the active session's messages.
func (m *Model) renderTranscript() string {
	state := m.controller.Snapshot()
	if len(state.Messages) == 0 && !state.Loading {
		return helpStyle.Render("No messages yet. Type below to start a chat.")
	}

	blocks := make([]string, 0, len(state.Messages)+1)
	for i, message := range state.Messages {
		if i == state.EditingIndex {
			blocks = append(blocks, m.renderRegenerating())
			continue
		}
		blocks = append(blocks, m.renderMessage(message))
	}
	if state.Loading {
		blocks = append(blocks, m.renderThinking())
	}
	return strings.Join(blocks, "\n")
}

func (m *Model) renderMessage(message types.Message) string {
	switch message.Role {
	case types.RoleUser:
		block := userMessageStyle.Render(message.Content)
		label := userLabelStyle.Render("You")
		return lipgloss.JoinVertical(lipgloss.Right, label, block)
	case types.RoleAssistant:
		label := botLabelStyle.Render(botLabel(message))
		content := m.renderer.Render(message.Content)
		for _, image := range message.Images {
			line := fmt.Sprintf("[image: %s]", imageCaption(image))
			content += "\n" + imageStyle.Render(line)
		}
		block := botMessageStyle.Render(content)
		return lipgloss.JoinVertical(lipgloss.Left, label, block)
	default:
		return helpStyle.Render(message.Content)
	}
}

func (m *Model) renderThinking() string {
	return m.spinner.View() + helpStyle.Render(" thinking...")
}

func (m *Model) renderRegenerating() string {
	return m.spinner.View() + helpStyle.Render(" regenerating...")
}

// renderPicker renders the session picker overlay, pinned sessions first.
func (m *Model) renderPicker() string {
	sessions := m.list.Sessions()
	if len(sessions) == 0 {
		return pickerBoxStyle.Render(helpStyle.Render("No saved chats."))
	}

	maxTitle := m.width - 20
	if maxTitle < 20 {
		maxTitle = 20
	}

	lines := make([]string, 0, len(sessions))
	for i, session := range sessions {
		marker := "  "
		if session.IsPinned {
			marker = pickerPinStyle.Render("* ")
		}
		entry := truncate(session.Title, maxTitle)
		if preview := m.list.Preview(session); preview != "" {
			entry += helpStyle.Render("  " + truncate(preview, 30))
		}
		if i == m.pickerIndex {
			lines = append(lines, marker+pickerSelectedStyle.Render(entry))
		} else {
			lines = append(lines, marker+pickerEntryStyle.Render(entry))
		}
	}
	lines = append(lines, helpStyle.Render("enter open | ctrl+s pin | ctrl+d delete | esc close"))
	return pickerBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderHelp() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	return helpStyle.Render("enter send | ctrl+n new | ctrl+p chats | ctrl+b chatbot | alt+p/alt+n history | ctrl+c quit")
}

func botLabel(message types.Message) string {
	if message.ChatbotName != "" {
		return message.ChatbotName
	}
	return "Bot"
}

func imageCaption(image types.ChatImage) string {
	if image.Description != "" {
		return image.Description
	}
	return image.ID
}
