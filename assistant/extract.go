package assistant

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// BuildExtractionPrompt asks the model for exactly one JSON object
// describing the post, in the transcript's own language, with empty-string
// and empty-array defaults for anything it cannot determine.
func BuildExtractionPrompt(conv *Conversation) string {
	action := "request help"
	noun := "request"
	if conv.Intent == IntentOfferHelp {
		action = "offer help"
		noun = "offer"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "System: Analyze the following conversation transcript from a community help-exchange app. The user's intent is to %s.\n", action)
	sb.WriteString("Extract the information needed to create a post.\n\n")
	fmt.Fprintf(&sb, "The conversation is in language: %s\n\n", conv.Language)
	sb.WriteString("Conversation Transcript:\n")
	sb.WriteString(conv.Transcript())
	sb.WriteString("\n\nBased ONLY on the conversation above, generate a JSON object with the following fields:\n")
	fmt.Fprintf(&sb, "- \"title\": A concise, relevant title summarizing the %s (infer this if not explicitly stated, max 80 chars).\n", noun)
	sb.WriteString("- \"description\": A VERY DETAILED and SPECIFIC description based on the user's statements. Include ALL relevant details.\n")
	sb.WriteString("- \"location\": The location mentioned by the user.\n")
	sb.WriteString("- \"contactInfo\": The contact information provided by the user.\n")
	sb.WriteString("- \"tags\": An array of 1-5 relevant keyword tags based on the description.\n")
	fmt.Fprintf(&sb, "- \"type\": %q\n\n", conv.Intent.PostType())
	fmt.Fprintf(&sb, "VERY IMPORTANT: The post MUST be written in the EXACT SAME LANGUAGE used in the conversation (%s). DO NOT translate to English.\n\n", conv.Language)
	sb.WriteString("If any of the required fields (description, location, contactInfo) cannot be determined from the conversation, set their value to an empty string (\"\"). If no tags can be determined, use an empty array ([]).\n\n")
	sb.WriteString("Return ONLY the JSON object. Do not include any explanatory text before or after the JSON.")
	return sb.String()
}

// ParseDraft locates the first JSON-object-shaped substring in the model's
// reply and reads the draft fields from it. It never fails: when nothing
// parseable is found, the empty draft comes back instead, and the caller
// surfaces a notification so the user can fill the fields manually. The type
// field is always overwritten from the intent regardless of what the model
// claimed.
func ParseDraft(raw string, intent Intent) (Draft, bool) {
	obj, ok := firstJSONObject(raw)
	if !ok || !gjson.Valid(obj) {
		return EmptyDraft(intent), false
	}

	parsed := gjson.Parse(obj)
	if !parsed.IsObject() {
		return EmptyDraft(intent), false
	}

	draft := Draft{
		Title:       parsed.Get("title").String(),
		Description: parsed.Get("description").String(),
		Location:    parsed.Get("location").String(),
		ContactInfo: parsed.Get("contactInfo").String(),
		Tags:        []string{},
		Type:        intent.PostType(),
	}
	for _, tag := range parsed.Get("tags").Array() {
		if t := strings.TrimSpace(tag.String()); t != "" {
			draft.Tags = append(draft.Tags, t)
		}
	}
	return draft, true
}

// firstJSONObject returns the substring from the first '{' through its
// matching '}', respecting strings and escapes.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
