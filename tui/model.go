package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sro01/Documate/chat"
	"github.com/Sro01/Documate/internal/api"
	"github.com/Sro01/Documate/internal/debug"
	"github.com/Sro01/Documate/internal/history"
	"github.com/Sro01/Documate/internal/markdown"
)

var log = debug.GetLogger()

// Model is the Bubble Tea model for an interactive chat session.
type Model struct {
	ctx        context.Context
	controller *chat.Controller
	repository *chat.Repository
	list       *chat.SessionList

	// Chatbots available for targeting; chatbotIndex selects among them.
	chatbots     []api.Chatbot
	chatbotIndex int

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	// UI state
	width       int
	height      int
	ready       bool
	quitting    bool
	err         error
	pickerOpen  bool
	pickerIndex int

	// Input history
	history *history.History
}

// New creates a chat session model.
func New(
	ctx context.Context,
	controller *chat.Controller,
	repository *chat.Repository,
	list *chat.SessionList,
	chatbots []api.Chatbot,
) (*Model, error) {
	ta := textarea.New()
	ta.Placeholder = "Ask DoQ-Mate... (Enter to send, /edit N text to edit, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(defaultTextareaWidth)
	ta.SetHeight(minTextareaHeight)
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	renderer, err := markdown.NewRenderer(defaultTextareaWidth)
	if err != nil {
		return nil, err
	}

	return &Model{
		ctx:        ctx,
		controller: controller,
		repository: repository,
		list:       list,
		chatbots:   chatbots,
		textarea:   ta,
		spinner:    sp,
		renderer:   renderer,
		history:    history.NewHistory(),
	}, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// selectedChatbot returns the currently targeted chatbot.
func (m *Model) selectedChatbot() *api.Chatbot {
	if len(m.chatbots) == 0 {
		return nil
	}
	return &m.chatbots[m.chatbotIndex]
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// cycleChatbot targets the next available chatbot.
func (m *Model) cycleChatbot() {
	if len(m.chatbots) == 0 {
		return
	}
	m.chatbotIndex = (m.chatbotIndex + 1) % len(m.chatbots)
	chatbot := m.chatbots[m.chatbotIndex]
	m.controller.SelectChatbot(chatbot.ChatbotID, chatbot.Name)
}
