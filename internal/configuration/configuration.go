package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/Sro01/Documate/internal/file"
)

var defaultConfig = Config{
	APIHost:        "http://localhost:8000/api",
	RequestTimeout: 30,

	Chat: &ChatConfig{
		Directory: "~/.config/documate/chat",
	},
}

// Config holds configuration for the documate tool.
type Config struct {
	APIHost        string `json:"api_host"`
	RequestTimeout int    `json:"request_timeout"`

	Chat *ChatConfig `json:"chat"`
}

// ChatConfig holds configuration for documate chat.
type ChatConfig struct {
	// The directory where we store chat sessions.
	Directory string `json:"directory"`
	// The chatbot to target when none is selected explicitly.
	DefaultChatbotID string `json:"default_chatbot_id"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}

	// A hand-edited file may omit the chat section entirely.
	if config.Chat == nil {
		chatDefaults := *defaultConfig.Chat
		config.Chat = &chatDefaults
	}
	if config.Chat.Directory == "" {
		config.Chat.Directory = defaultConfig.Chat.Directory
	}

	expandedChatDirectory, err := file.ExpandPath(config.Chat.Directory)
	if err != nil {
		return nil, errors.Wrap(err, "expanding chat directory path")
	}
	config.Chat.Directory = expandedChatDirectory

	config.applyEnvironment()
	return config, nil
}

// applyEnvironment overrides config values from the environment.
// A .env file in the working directory is honored if present.
func (c *Config) applyEnvironment() {
	godotenv.Load()

	if host := os.Getenv("DOCUMATE_API_HOST"); host != "" {
		c.APIHost = host
	}
	if timeout := os.Getenv("DOCUMATE_REQUEST_TIMEOUT"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil {
			c.RequestTimeout = seconds
		}
	}
	if chatbotID := os.Getenv("DOCUMATE_DEFAULT_CHATBOT_ID"); chatbotID != "" {
		c.Chat.DefaultChatbotID = chatbotID
	}
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
