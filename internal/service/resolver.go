// internal/service/resolver.go
package service

import "strings"

// Sender is the identity of the user who posted a message.
type Sender struct {
	ID          string
	Username    string
	DisplayName string
	Tag         string
}

// MemberDirectory looks a claimant name up in the guild roster. Used by the
// history scan, where the sender of an old message is not enough to resolve
// a named claimant.
type MemberDirectory interface {
	// Find returns the user id for a claimant name, or ok=false when no
	// member matches.
	Find(name string) (id string, ok bool)
}

// MatchMember is the single name-matching rule used everywhere: the trimmed,
// lower-cased claimant text is compared against the display name, then the
// username, then as a prefix of the tag. First match wins.
func MatchMember(name, displayName, username, tag string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if name == strings.ToLower(displayName) {
		return true
	}
	if name == strings.ToLower(username) {
		return true
	}
	return strings.HasPrefix(strings.ToLower(tag), name)
}

// ResolveClaimant maps a request to the claimant's user id for the submit
// path. An embedded mention token is authoritative; otherwise the claimant
// text is matched against the sender only, so free text can never file PTO
// on somebody else's behalf. A resolved id that is not the sender (or no
// resolution at all) is ErrNotSelf.
func ResolveClaimant(content, claimant string, sender Sender) (string, error) {
	if id, ok := ExtractMention(content); ok {
		if id != sender.ID {
			return "", ErrNotSelf
		}
		return id, nil
	}

	if MatchMember(claimant, sender.DisplayName, sender.Username, sender.Tag) {
		return sender.ID, nil
	}
	return "", ErrNotSelf
}
