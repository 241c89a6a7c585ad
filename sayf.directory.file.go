package sayf

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Roster is the YAML form of a set of room rosters.
//
//	rooms:
//	  - id: 11540
//	    host: stackoverflow.com
//	    members:
//	      - user_id: 1
//	        name: Carol Smith
//	        last_seen: 2024-05-01T10:00:00Z
type Roster struct {
	Rooms []RosterRoom `yaml:"rooms"`
}

// RosterRoom lists the members of one room.
type RosterRoom struct {
	ID      int            `yaml:"id"`
	Host    string         `yaml:"host,omitempty"`
	Members []RosterMember `yaml:"members"`
}

// RosterMember is one person in a RosterRoom.
type RosterMember struct {
	UserID   int       `yaml:"user_id"`
	Name     string    `yaml:"name"`
	LastSeen time.Time `yaml:"last_seen,omitempty"`
}

// FileDirectoryDriver loads a YAML roster file into a MemoryDirectory.
type FileDirectoryDriver struct{}

func init() {
	RegisterDirectoryDriver(DirectoryDriverFile, &FileDirectoryDriver{})
}

// Open reads the roster at path dsn.
func (d *FileDirectoryDriver) Open(dsn string) (Directory, error) {
	return LoadRoster(dsn)
}

// LoadRoster reads a YAML roster file into a new MemoryDirectory.
func LoadRoster(path string) (*MemoryDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError(ErrMsgRosterRead, path, err)
	}
	dir, err := ParseRoster(data)
	if err != nil {
		return nil, NewConfigError(ErrMsgRosterRead, path, err)
	}
	return dir, nil
}

// ParseRoster decodes a YAML roster into a new MemoryDirectory.
func ParseRoster(data []byte) (*MemoryDirectory, error) {
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, NewConfigError(ErrMsgConfigParse, "", err)
	}
	return roster.Directory()
}

// Directory builds a MemoryDirectory holding every room in r.
func (r Roster) Directory() (*MemoryDirectory, error) {
	dir := NewMemoryDirectory()
	for _, room := range r.Rooms {
		key := Room{ID: room.ID, Host: room.Host}
		for _, m := range room.Members {
			member := Member{UserID: m.UserID, Name: m.Name, LastSeen: m.LastSeen}
			if err := dir.AddMember(key, member); err != nil {
				return nil, err
			}
		}
	}
	return dir, nil
}
