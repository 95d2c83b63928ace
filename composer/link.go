package composer

import "strings"

const (
	linkCallToAction = "\n\nHere's the chat link if you want to dive deeper"
	linkShortHint    = "\n\nChat link below ⬇️"
)

// SharedChatURL rewrites a private chat URL into its shareable form so the
// link works for readers without a session. URLs already in shared form (or
// not chat URLs at all) pass through unchanged.
func SharedChatURL(chatURL string) string {
	if !strings.Contains(chatURL, "/chat/") || strings.Contains(chatURL, "/shared/chats/") {
		return chatURL
	}
	idx := strings.LastIndex(chatURL, "/chat/")
	base := chatURL[:idx]
	id := chatURL[idx+len("/chat/"):]
	return base + "/chat/shared/chats/" + id
}

// AppendLinkLine adds a call-to-action phrase for the chat link if it fits
// the budget, falling back to a shorter hint. The URL itself is appended by
// the publisher outside the text budget: the platform renders it as a link
// card that does not count against the character limit.
func AppendLinkLine(content string, maxLength int) string {
	if runeLen(content)+runeLen(linkCallToAction) <= maxLength {
		return content + linkCallToAction
	}
	if runeLen(content)+runeLen(linkShortHint) <= maxLength {
		return content + linkShortHint
	}
	return content
}
