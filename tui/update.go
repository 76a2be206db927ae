package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sro01/Documate/internal/types"
)

// Update handles incoming events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+n":
			m.controller.Clear()
			m.pickerOpen = false
			m.err = nil
			m.refreshViewport()
			return m, nil

		case "ctrl+p":
			m.pickerOpen = !m.pickerOpen
			m.pickerIndex = 0
			return m, nil

		case "ctrl+b":
			m.cycleChatbot()
			return m, nil

		case "up":
			if m.pickerOpen {
				if m.pickerIndex > 0 {
					m.pickerIndex--
				}
				return m, nil
			}

		case "down":
			if m.pickerOpen {
				if m.pickerIndex < len(m.list.Sessions())-1 {
					m.pickerIndex++
				}
				return m, nil
			}

		case "ctrl+s":
			if m.pickerOpen {
				sessions := m.list.Sessions()
				if m.pickerIndex >= 0 && m.pickerIndex < len(sessions) {
					m.repository.TogglePin(sessions[m.pickerIndex].SessionID)
				}
				return m, nil
			}

		case "ctrl+d":
			if m.pickerOpen {
				sessions := m.list.Sessions()
				if m.pickerIndex >= 0 && m.pickerIndex < len(sessions) {
					m.repository.DeleteSession(sessions[m.pickerIndex].SessionID)
					if m.pickerIndex >= len(sessions)-1 && m.pickerIndex > 0 {
						m.pickerIndex--
					}
					m.refreshViewport()
				}
				return m, nil
			}

		case "alt+p":
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
			}
			return m, nil

		case "alt+n":
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
			}
			return m, nil

		case "esc":
			if m.pickerOpen {
				m.pickerOpen = false
				return m, nil
			}

		case "enter":
			if m.pickerOpen {
				m.selectPicked()
				return m, nil
			}
			if cmd := m.submit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

	case replyMsg:
		m.err = msg.err
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if state := m.controller.Snapshot(); state.Loading || state.EditingIndex >= 0 {
			m.refreshViewport()
		}
		return m, cmd
	}

	var taCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	cmds = append(cmds, taCmd)

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

// submit sends the textarea content, or dispatches an edit command.
func (m *Model) submit() tea.Cmd {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		return nil
	}

	state := m.controller.Snapshot()
	if state.Loading || state.EditingIndex >= 0 {
		return nil
	}

	m.history.Add(input)
	m.textarea.Reset()
	m.err = nil

	if index, content, ok := parseEditCommand(input); ok {
		absolute, found := m.userMessageIndex(state.Messages, index)
		if !found {
			return nil
		}
		return m.editCmd(absolute, content)
	}

	chatbotID := ""
	if chatbot := m.selectedChatbot(); chatbot != nil {
		chatbotID = chatbot.ChatbotID
	}
	cmd := m.sendCmd(input, chatbotID)
	m.refreshViewport()
	return cmd
}

// userMessageIndex maps a 1-based user message ordinal to its absolute index.
func (m *Model) userMessageIndex(messages []types.Message, ordinal int) (int, bool) {
	seen := 0
	for i, message := range messages {
		if message.Role != types.RoleUser {
			continue
		}
		seen++
		if seen == ordinal {
			return i, true
		}
	}
	return 0, false
}

// selectPicked activates the session highlighted in the picker.
func (m *Model) selectPicked() {
	sessions := m.list.Sessions()
	if m.pickerIndex < 0 || m.pickerIndex >= len(sessions) {
		m.pickerOpen = false
		return
	}
	m.controller.Select(sessions[m.pickerIndex].SessionID)
	m.pickerOpen = false
	m.err = nil
	m.refreshViewport()
}

// resize adjusts component dimensions to the terminal size.
func (m *Model) resize() {
	textareaHeight := minTextareaHeight
	viewportHeight := m.height - textareaHeight - inputBorderHeight - headerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	m.textarea.SetWidth(m.width - 2)
	m.textarea.SetHeight(textareaHeight)

	if !m.ready {
		m.viewport = newViewport(m.width, viewportHeight)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}

	contentWidth := m.width - 14
	if contentWidth < 20 {
		contentWidth = 20
	}
	if err := m.renderer.SetWidth(contentWidth); err != nil {
		log.Error("resizing markdown renderer", "error", err)
	}
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
