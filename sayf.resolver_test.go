package sayf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoom_String(t *testing.T) {
	assert.Equal(t, "11540", Room{ID: 11540}.String())
	assert.Equal(t, "stackoverflow.com#11540", Room{ID: 11540, Host: "stackoverflow.com"}.String())
}

func TestMember_PingableName(t *testing.T) {
	assert.Equal(t, "CarolSmith", Member{Name: "Carol Smith"}.PingableName())
	assert.Equal(t, "bob", Member{Name: "bob"}.PingableName())
}

func TestMatchPingableName(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	members := []Member{
		{UserID: 1, Name: "Carol Smith", LastSeen: base},
		{UserID: 2, Name: "Carolyn", LastSeen: base.Add(time.Hour)},
		{UserID: 3, Name: "Dave", LastSeen: base},
		{UserID: 4, Name: "dave", LastSeen: base.Add(time.Minute)},
		{UserID: 5, Name: "Straße", LastSeen: base},
	}

	tests := []struct {
		name     string
		text     string
		expected int
		found    bool
	}{
		{name: "exact beats prefix", text: "carolsmith", expected: 1, found: true},
		{name: "spaces ignored", text: "Carol Smith", expected: 1, found: true},
		{name: "prefix picks most recent", text: "car", expected: 2, found: true},
		{name: "exact tie picks most recent", text: "DAVE", expected: 4, found: true},
		{name: "case folding", text: "STRASSE", expected: 5, found: true},
		{name: "no match", text: "eve", found: false},
		{name: "blank", text: "   ", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchPingableName(members, tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, m.UserID)
			}
		})
	}
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(ctx context.Context, room Room, text string) (string, bool, error) {
		return text + "!", true, nil
	})
	name, ok, err := r.ResolvePingableName(context.Background(), testRoom, "x")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x!", name)
}
