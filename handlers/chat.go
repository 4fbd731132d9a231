package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"sanad/assistant"

	"github.com/gin-gonic/gin"
)

// The chat view talks to the completion endpoint with the user's own key
// (sent per request, never stored server-side) or the instance default.
// Swappable for tests.
var newCompletionClient = func(apiKey string) (assistant.CompletionClient, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	model := os.Getenv("CHAT_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return assistant.NewOpenAIClient(assistant.Settings{
		Model:   model,
		APIKey:  apiKey,
		BaseURL: os.Getenv("CHAT_BASE_URL"),
	})
}

type ChatMessageRequest struct {
	Intent   string              `json:"intent" binding:"required"`
	Language string              `json:"language"`
	Message  string              `json:"message"`
	Messages []assistant.Message `json:"messages"`
}

type ChatExtractRequest struct {
	Intent   string              `json:"intent" binding:"required"`
	Language string              `json:"language"`
	Messages []assistant.Message `json:"messages"`
}

func conversationFrom(intent assistant.Intent, language string, messages []assistant.Message) *assistant.Conversation {
	if language == "" {
		language = "en"
	}
	return &assistant.Conversation{
		Intent:   intent,
		Language: language,
		Messages: messages,
	}
}

// writeCompletionError maps the two known failure kinds onto statuses the
// client can act on: invalid credential forces a key re-prompt, quota is
// informational, everything else is a transient upstream failure.
func writeCompletionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrInvalidCredential):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid completion API key",
			"code":  "INVALID_API_KEY",
		})
	case errors.Is(err, assistant.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Completion quota exceeded",
			"code":  "QUOTA_EXCEEDED",
		})
	default:
		log.Printf("[Chat] completion error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Assistant is unavailable, please try again",
			"code":  "COMPLETION_FAILED",
		})
	}
}

// ChatMessage runs one conversational turn: the client sends the whole
// transcript plus the new message, gets back the sanitized assistant reply.
// With an empty message this is the opening turn for the chosen intent.
func ChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := assistant.ParseIntent(req.Intent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := newCompletionClient(c.GetHeader("X-Completion-Key"))
	if err != nil {
		writeCompletionError(c, err)
		return
	}

	conv := conversationFrom(intent, req.Language, req.Messages)

	var prompt string
	if req.Message == "" {
		prompt = assistant.BuildIntentPrompt(conv)
	} else {
		prompt = assistant.BuildChatPrompt(conv, req.Message)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		writeCompletionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": assistant.Sanitize(raw),
	})
}

// ChatExtract turns the transcript into a post draft. Only the two
// post-creating intents are allowed here. Extraction failure is not an
// error: the caller gets an empty draft (with the type set) plus a flag so
// the UI can tell the user to fill the fields manually.
func ChatExtract(c *gin.Context) {
	var req ChatExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := assistant.ParseIntent(req.Intent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !intent.CanCreatePost() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Posts can only be created from help intents"})
		return
	}

	client, err := newCompletionClient(c.GetHeader("X-Completion-Key"))
	if err != nil {
		writeCompletionError(c, err)
		return
	}

	conv := conversationFrom(intent, req.Language, req.Messages)
	prompt := assistant.BuildExtractionPrompt(conv)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		writeCompletionError(c, err)
		return
	}

	draft, extracted := assistant.ParseDraft(raw, intent)
	if !extracted {
		log.Printf("[ChatExtract] no parseable JSON in model reply")
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":     draft,
		"extracted": extracted,
	})
}

type SubmitDraftRequest struct {
	Draft assistant.Draft `json:"draft" binding:"required"`
}

// SubmitDraft validates the reviewed draft and creates the post. Images are
// always empty for chat-originated posts.
func SubmitDraft(c *gin.Context) {
	var req SubmitDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reuse the post-creation path; drafts never carry achievements.
	insertPost(c, CreatePostRequest{
		Title:       req.Draft.Title,
		Description: req.Draft.Description,
		Location:    req.Draft.Location,
		ContactInfo: req.Draft.ContactInfo,
		Type:        req.Draft.Type,
		Tags:        req.Draft.Tags,
		Images:      []string{},
	})
}
