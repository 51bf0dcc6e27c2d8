package services

import (
	"net/url"
	"strings"
)

const tweetIntentURL = "https://twitter.com/intent/tweet"

// ShareIntentURL builds the web "compose post" link for text. No credentials
// are involved. Blank text yields "".
func ShareIntentURL(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return tweetIntentURL + "?text=" + encoded
}
