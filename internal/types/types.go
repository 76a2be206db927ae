package types

// Role of a chat message author.
type Role string

const (
	// RoleUser is a message typed by the end user.
	RoleUser Role = "user"
	// RoleAssistant is a reply produced by a chatbot.
	RoleAssistant Role = "assistant"
	// RoleAdmin is reserved for messages injected by administrators.
	// The chat controller never produces it.
	RoleAdmin Role = "admin"
)

// ChatImage is an inline image attached to an assistant reply.
type ChatImage struct {
	ID          string `json:"id"`
	MimeType    string `json:"mime_type"`
	Data        string `json:"data"` // base64
	Description string `json:"description,omitempty"`
}

// Message is one turn within a chat session.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// Set on assistant messages only.
	ChatbotName string      `json:"chatbot_name,omitempty"`
	Images      []ChatImage `json:"images,omitempty"`
}

// SupportingChunk references a manual fragment backing an answer.
type SupportingChunk struct {
	ChunkID string    `json:"chunk_id"`
	Score   float64   `json:"score"`
	Meta    ChunkMeta `json:"meta"`
}

// ChunkMeta locates a chunk within an uploaded manual.
type ChunkMeta struct {
	Filename string `json:"filename"`
	Page     int    `json:"page"`
	ManualID string `json:"manual_id"`
}

// UncertaintyLevel grades the confidence of an answer.
type UncertaintyLevel string

const (
	UncertaintyLow    UncertaintyLevel = "low"
	UncertaintyMedium UncertaintyLevel = "medium"
	UncertaintyHigh   UncertaintyLevel = "high"
)

// ChatRequest is the payload sent to the message exchange endpoint.
type ChatRequest struct {
	ChatbotID string    `json:"chatbot_id"`
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// ChatResponse is the payload returned by the message exchange endpoint.
type ChatResponse struct {
	ChatbotName      string            `json:"chatbot_name"`
	Answer           string            `json:"answer"`
	Images           []ChatImage       `json:"images,omitempty"`
	SupportingChunks []SupportingChunk `json:"supporting_chunks,omitempty"`
	Uncertainty      UncertaintyLevel  `json:"uncertainty,omitempty"`
	SuggestedTitle   string            `json:"suggested_title,omitempty"`
}
