// Package sayf formats chat bot messages with printf-style templates and
// turns %p arguments into mentions of people in the room.
//
// A template and its arguments arrive as command parameters, separated by
// standalone slashes:
//
//	!!sayf %p, your %s is ready / carol / build #%d / 42
//
// # Basic Usage
//
// Create a composer with a name resolver and compose:
//
//	dir := sayf.NewMemoryDirectory()
//	dir.AddMember(room, sayf.Member{UserID: 7, Name: "Carol Smith"})
//
//	c := sayf.MustNew(sayf.WithResolver(dir))
//	out, err := c.Compose(ctx, room, []string{"%p, hi", "carol"})
//	// out: "@CarolSmith, hi"
//
// # Format Specifiers
//
// Specifiers follow the PHP sprintf grammar:
//
//	%[argnum$][sign][pad][-][width][.precision]verb
//
// pad is a space, 0, or ' followed by any character. Supported verbs are
// b c d e E f F g G o s u x X and %. The extra verb p is rewritten to s and
// its argument resolved to "@name" when someone in the room matches.
//
// Widths and precisions above the truncation limit (500 by default) are
// rejected before any name lookup happens.
//
// # Mentions
//
// An argument that already starts with '@' is never looked up; it is
// neutralized with a word joiner so it reads the same but does not ping.
// Mentions written directly into the template are neutralized the same way.
//
// # Name Directories
//
// Resolvers are usually backed by a Directory opened through the driver
// registry and wrapped in a CachedResolver:
//
//	dir, err := sayf.OpenDirectory("postgres", dsn)
//	resolver := sayf.NewCachedResolver(dir, sayf.DefaultCacheConfig())
//
// Built-in drivers are memory, file (YAML roster) and postgres.
package sayf
