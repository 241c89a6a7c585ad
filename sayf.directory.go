package sayf

import (
	"sort"
	"sync"
)

// Directory is a NameResolver backed by a room roster that must be closed
// when no longer needed.
type Directory interface {
	NameResolver
	Close() error
}

// DirectoryDriver is a factory for directories.
// Drivers register themselves during init().
type DirectoryDriver interface {
	// Open creates a directory. The dsn format is driver specific.
	Open(dsn string) (Directory, error)
}

var (
	directoryDriversMu sync.RWMutex
	directoryDrivers   = make(map[string]DirectoryDriver)
)

// RegisterDirectoryDriver registers a directory driver by name.
// It panics if driver is nil or the name is taken.
func RegisterDirectoryDriver(name string, driver DirectoryDriver) {
	directoryDriversMu.Lock()
	defer directoryDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgDriverNil)
	}
	if _, exists := directoryDrivers[name]; exists {
		panic(ErrMsgDriverExists + ": " + name)
	}
	directoryDrivers[name] = driver
}

// OpenDirectory opens a directory using the named driver.
//
// Example:
//
//	dir, err := sayf.OpenDirectory("memory", "")
//	dir, err := sayf.OpenDirectory("file", "/etc/sayf/roster.yaml")
//	dir, err := sayf.OpenDirectory("postgres", "postgres://bot@db/chat?sslmode=disable")
func OpenDirectory(driverName, dsn string) (Directory, error) {
	directoryDriversMu.RLock()
	driver, ok := directoryDrivers[driverName]
	directoryDriversMu.RUnlock()

	if !ok {
		return nil, NewDriverNotFoundError(driverName)
	}
	return driver.Open(dsn)
}

// ListDirectoryDrivers returns the names of all registered drivers in sorted order.
func ListDirectoryDrivers() []string {
	directoryDriversMu.RLock()
	defer directoryDriversMu.RUnlock()

	names := make([]string, 0, len(directoryDrivers))
	for name := range directoryDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
