package sayf

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Room identifies the chat room a command was issued in. It scopes name
// resolution to the people present there.
type Room struct {
	ID   int
	Host string
}

// String returns "host#id", or just the id when no host is set.
func (r Room) String() string {
	if r.Host == "" {
		return strconv.Itoa(r.ID)
	}
	return r.Host + "#" + strconv.Itoa(r.ID)
}

// NameResolver looks up the pingable display name for free text.
// ok is false when nobody matches; that is not an error.
type NameResolver interface {
	ResolvePingableName(ctx context.Context, room Room, text string) (name string, ok bool, err error)
}

// ResolverFunc adapts a function to NameResolver.
type ResolverFunc func(ctx context.Context, room Room, text string) (string, bool, error)

// ResolvePingableName calls f.
func (f ResolverFunc) ResolvePingableName(ctx context.Context, room Room, text string) (string, bool, error) {
	return f(ctx, room, text)
}

// nopResolver never finds anyone.
type nopResolver struct{}

func (nopResolver) ResolvePingableName(context.Context, Room, string) (string, bool, error) {
	return "", false, nil
}

// Member is a person present in a room.
type Member struct {
	UserID   int
	Name     string
	LastSeen time.Time
}

// PingableName returns the member's name as it is written in a mention.
func (m Member) PingableName() string {
	return strings.ReplaceAll(m.Name, " ", "")
}

// MatchPingableName picks the member a mention of text refers to.
//
// Spaces are ignored and names compare case-folded. An exact match wins;
// otherwise the most recently seen member whose name starts with text is
// chosen. Among exact matches the most recently seen member wins as well.
func MatchPingableName(members []Member, text string) (Member, bool) {
	fold := cases.Fold()
	candidate := fold.String(strings.ReplaceAll(strings.TrimSpace(text), " ", ""))
	if candidate == "" {
		return Member{}, false
	}

	var exact, prefix Member
	var haveExact, havePrefix bool
	for _, m := range members {
		name := fold.String(m.PingableName())
		switch {
		case name == candidate:
			if !haveExact || m.LastSeen.After(exact.LastSeen) {
				exact, haveExact = m, true
			}
		case strings.HasPrefix(name, candidate):
			if !havePrefix || m.LastSeen.After(prefix.LastSeen) {
				prefix, havePrefix = m, true
			}
		}
	}

	if haveExact {
		return exact, true
	}
	return prefix, havePrefix
}
