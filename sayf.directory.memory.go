package sayf

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryDirectory keeps room rosters in memory.
// It is safe for concurrent use.
type MemoryDirectory struct {
	mu     sync.RWMutex
	rooms  map[Room]map[int]Member // room -> user id -> member
	closed bool
}

// MemoryDirectoryDriver opens empty MemoryDirectory instances.
type MemoryDirectoryDriver struct{}

func init() {
	RegisterDirectoryDriver(DirectoryDriverMemory, &MemoryDirectoryDriver{})
}

// Open creates a new MemoryDirectory. The dsn is ignored.
func (d *MemoryDirectoryDriver) Open(dsn string) (Directory, error) {
	return NewMemoryDirectory(), nil
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		rooms: make(map[Room]map[int]Member),
	}
}

// AddMember adds m to room, replacing any member with the same user id.
// A zero LastSeen is set to the current time.
func (d *MemoryDirectory) AddMember(room Room, m Member) error {
	if m.Name == "" {
		return NewDirectoryError(ErrMsgInvalidMemberRow, nil)
	}
	if m.LastSeen.IsZero() {
		m.LastSeen = time.Now()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return NewDirectoryClosedError()
	}
	members, ok := d.rooms[room]
	if !ok {
		members = make(map[int]Member)
		d.rooms[room] = members
	}
	members[m.UserID] = m
	return nil
}

// RemoveMember removes a user from room. It reports whether the user was present.
func (d *MemoryDirectory) RemoveMember(room Room, userID int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	members, ok := d.rooms[room]
	if !ok {
		return false
	}
	if _, ok := members[userID]; !ok {
		return false
	}
	delete(members, userID)
	return true
}

// Members returns the members of room ordered by user id.
func (d *MemoryDirectory) Members(room Room) []Member {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Member, 0, len(d.rooms[room]))
	for _, m := range d.rooms[room] {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// ResolvePingableName implements NameResolver.
func (d *MemoryDirectory) ResolvePingableName(ctx context.Context, room Room, text string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return "", false, NewDirectoryClosedError()
	}
	d.mu.RUnlock()

	m, ok := MatchPingableName(d.Members(room), text)
	if !ok {
		return "", false, nil
	}
	return m.PingableName(), true, nil
}

// Close releases the directory. Further lookups fail.
func (d *MemoryDirectory) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.rooms = make(map[Room]map[int]Member)
	return nil
}
