// Package discordfmt renders Discord message markup: mentions and the
// client-side <t:...> timestamp tokens.
package discordfmt

import (
	"fmt"
	"time"
)

// Mention renders a user mention token.
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// RelativeTimestamp renders a timestamp the Discord client shows as
// "in 5 days" / "2 hours ago".
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
