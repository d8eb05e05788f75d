package httpimport

import (
	"regexp"
	"strings"
	"sync"
)

// remotePattern matches absolute HTTP and HTTPS module specifiers. The same
// expression is handed to esbuild as the OnResolve filter, so the resolver
// only ever sees specifiers the session will accept.
const remotePattern = `^https?://`

var remoteRe = regexp.MustCompile(remotePattern)

// Record captures everything the load phase needs about one remote
// specifier: the full URL and whether it arrived over a secure scheme.
type Record struct {
	IsHTTPS bool
	URL     string
}

// Session is the resolution table for one build invocation. It maps short
// identifiers to the remote specifiers they stand for. Resolution is pure
// bookkeeping; no network traffic happens until the identifier is loaded.
//
// Two different URLs sharing the same final path segment (before any
// extension) derive the same short identifier. The session's policy for that
// collision is last write wins: the later resolution overwrites the earlier
// record, and a load between the two fetches whichever URL is in the table
// at that moment.
type Session struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewSession creates an empty resolution table. One session belongs to one
// build invocation; nothing persists across builds.
func NewSession() *Session {
	return &Session{records: make(map[string]Record)}
}

// Resolve tests a module specifier against the remote pattern. On a match it
// derives the short identifier, records the specifier under it, and returns
// the identifier. Non-matching specifiers return ok=false so resolution
// falls through to the default resolver.
func (s *Session) Resolve(specifier string) (string, bool) {
	if !remoteRe.MatchString(specifier) {
		return "", false
	}

	id := shortID(specifier)
	s.mu.Lock()
	s.records[id] = Record{
		IsHTTPS: strings.HasPrefix(specifier, "https://"),
		URL:     specifier,
	}
	s.mu.Unlock()
	return id, true
}

// Lookup returns the record for an identifier previously returned by
// Resolve. Identifiers this session does not own return ok=false so the
// host falls back to its default loader.
func (s *Session) Lookup(id string) (Record, bool) {
	s.mu.Lock()
	rec, ok := s.records[id]
	s.mu.Unlock()
	return rec, ok
}

// shortID derives the virtual module id from a URL: the text after the final
// '/', truncated at the first '.' so any extension is stripped.
func shortID(url string) string {
	id := url[strings.LastIndex(url, "/")+1:]
	id, _, _ = strings.Cut(id, ".")
	return id
}
