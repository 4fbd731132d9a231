package assistant

import (
	"fmt"
	"strings"
)

// Prompt construction is pure string assembly: one instruction block per
// turn, branching copy by intent. Every prompt forbids role-prefix echoes and
// mandates replying in the user's language at a formal register.

const needHelpGuidance = `You're helping someone describe what help they need.

IMPORTANT: Be brief and direct. Avoid asking too many detailed questions.

If their description is clear enough, acknowledge it and move on.
Only ask for further details if absolutely necessary.

The essential information to gather eventually is:
- What type of help they need
- The location where help is needed
- How they can be contacted

Once this information is provided, remind the user they can review and create their post.`

const offerHelpGuidance = `You're helping someone describe what help they can offer. Be brief and direct.

Gather only these essential pieces of information, without asking too many questions:
- A description of the help they can provide
- The location where they can offer help
- How they can be contacted

Once this information is provided, remind the user they can review and create their post.`

const searchGuidance = `You're helping someone search for posts WITHIN THIS APP. Be direct and avoid asking multiple follow-up questions.

DO NOT perform web searches or provide general information outside the app.
Remind them they can use the main feed tab for more detailed filtering options.`

const settingsGuidance = `Be concise and helpful regarding app settings and functions.`

func guidanceFor(intent Intent) string {
	switch intent {
	case IntentNeedHelp:
		return needHelpGuidance
	case IntentOfferHelp:
		return offerHelpGuidance
	case IntentSearch:
		return searchGuidance
	default:
		return settingsGuidance
	}
}

func languageRules(language, sample string) string {
	return fmt.Sprintf(`IMPORTANT: Your response should be DIRECT and should NOT include prefixes like "assistant:" or "user:" or repeat any part of the conversation history.

VERY IMPORTANT: The user's language is %q. Their last message was: %q.
You MUST respond in the same language as the user's last message (e.g., Arabic, English, Spanish, etc.).
Use a standard, formal version of that language - do NOT attempt to mimic slang, dialect, or informal speech patterns.`, language, sample)
}

// BuildIntentPrompt produces the opening prompt, before any free-form user
// message exists. The transcript may be empty; the welcome string stands in
// as the language sample in that case.
func BuildIntentPrompt(conv *Conversation) string {
	var goal string
	switch conv.Intent {
	case IntentNeedHelp:
		goal = "need help with something"
	case IntentOfferHelp:
		goal = "want to offer help to others"
	case IntentSearch:
		goal = "want to search for something"
	default:
		goal = "have a question"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a helpful assistant in a community help-exchange app. The user has indicated they %s.\n\n", goal)
	sb.WriteString(languageRules(conv.Language, conv.LanguageSample()))
	sb.WriteString("\n\n")
	sb.WriteString(guidanceFor(conv.Intent))
	sb.WriteString("\n\nUse a friendly but concise tone. No need to introduce yourself - just ask a simple question.")
	return sb.String()
}

// BuildChatPrompt produces the prompt for a regular turn: instructions plus
// the full transcript including the new user message.
func BuildChatPrompt(conv *Conversation, userMessage string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant in a community help-exchange app.\n\n")
	sb.WriteString(languageRules(conv.Language, userMessage))
	sb.WriteString("\n\n")
	sb.WriteString(guidanceFor(conv.Intent))
	sb.WriteString("\n\nConversation history:\n")
	sb.WriteString(conv.Transcript())
	fmt.Fprintf(&sb, "\n\nUser: %s\n\nAssistant:", userMessage)
	return sb.String()
}
