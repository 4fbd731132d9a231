package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sanad/assistant"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

func withMockCompletion(t *testing.T, mock *assistant.MockClient) {
	t.Helper()
	orig := newCompletionClient
	newCompletionClient = func(string) (assistant.CompletionClient, error) {
		return mock, nil
	}
	t.Cleanup(func() { newCompletionClient = orig })
}

func chatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat/message", ChatMessage)
	r.POST("/chat/extract", ChatExtract)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatMessageOpeningTurn(t *testing.T) {
	mock := &assistant.MockClient{Responses: []string{"Assistant: How can I help you today?"}}
	withMockCompletion(t, mock)

	w := postJSON(chatRouter(), "/chat/message", `{"intent":"need_help","language":"en"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	reply := gjson.Get(w.Body.String(), "reply").String()
	if reply != "How can I help you today?" {
		t.Errorf("reply = %q, role prefix not stripped", reply)
	}
	if len(mock.Prompts) != 1 || !strings.Contains(mock.Prompts[0], "need help with something") {
		t.Errorf("opening turn did not use the intent prompt: %v", mock.Prompts)
	}
}

func TestChatMessageRegularTurnCarriesTranscript(t *testing.T) {
	mock := &assistant.MockClient{Responses: []string{"Got it, where are you located?"}}
	withMockCompletion(t, mock)

	body := `{
		"intent": "need_help",
		"language": "en",
		"message": "I need help moving furniture",
		"messages": [{"role":"assistant","content":"How can I help?"}]
	}`
	w := postJSON(chatRouter(), "/chat/message", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	prompt := mock.Prompts[0]
	if !strings.Contains(prompt, "Assistant: How can I help?") {
		t.Errorf("prompt missing prior transcript:\n%s", prompt)
	}
	if !strings.Contains(prompt, "I need help moving furniture") {
		t.Errorf("prompt missing new user message:\n%s", prompt)
	}
}

func TestChatMessageUnknownIntent(t *testing.T) {
	withMockCompletion(t, &assistant.MockClient{})
	w := postJSON(chatRouter(), "/chat/message", `{"intent":"shopping"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatMessageInvalidKeyMapsTo401(t *testing.T) {
	withMockCompletion(t, &assistant.MockClient{Err: assistant.ErrInvalidCredential})
	w := postJSON(chatRouter(), "/chat/message", `{"intent":"settings","message":"hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if code := gjson.Get(w.Body.String(), "code").String(); code != "INVALID_API_KEY" {
		t.Errorf("code = %q", code)
	}
}

func TestChatMessageQuotaMapsTo429(t *testing.T) {
	withMockCompletion(t, &assistant.MockClient{Err: assistant.ErrQuotaExceeded})
	w := postJSON(chatRouter(), "/chat/message", `{"intent":"settings","message":"hi"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if code := gjson.Get(w.Body.String(), "code").String(); code != "QUOTA_EXCEEDED" {
		t.Errorf("code = %q", code)
	}
}

func TestChatExtractRejectsNonPostIntents(t *testing.T) {
	withMockCompletion(t, &assistant.MockClient{})
	for _, intent := range []string{"search", "settings"} {
		w := postJSON(chatRouter(), "/chat/extract", `{"intent":"`+intent+`"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("intent %q: status = %d, want 400", intent, w.Code)
		}
	}
}

func TestChatExtractReturnsDraft(t *testing.T) {
	mock := &assistant.MockClient{Responses: []string{
		`Here you go: {"title":"Moving help","description":"Need 3 people","location":"Riyadh","contactInfo":"0555123456","tags":["moving"],"type":"achievement"}`,
	}}
	withMockCompletion(t, mock)

	body := `{"intent":"need_help","messages":[{"role":"user","content":"I need help moving"}]}`
	w := postJSON(chatRouter(), "/chat/extract", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	res := w.Body.String()
	if !gjson.Get(res, "extracted").Bool() {
		t.Fatalf("extracted = false: %s", res)
	}
	if got := gjson.Get(res, "draft.type").String(); got != "helpNeeded" {
		t.Errorf("draft type = %q, model's own type must not win", got)
	}
	if got := gjson.Get(res, "draft.location").String(); got != "Riyadh" {
		t.Errorf("draft location = %q", got)
	}
}

func TestChatExtractUnparseableReplyFallsBack(t *testing.T) {
	withMockCompletion(t, &assistant.MockClient{Responses: []string{"sorry, no data"}})

	w := postJSON(chatRouter(), "/chat/extract", `{"intent":"offer_help"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	res := w.Body.String()
	if gjson.Get(res, "extracted").Bool() {
		t.Error("extracted should be false for unparseable reply")
	}
	if got := gjson.Get(res, "draft.type").String(); got != "helpOffered" {
		t.Errorf("fallback draft type = %q", got)
	}
}
