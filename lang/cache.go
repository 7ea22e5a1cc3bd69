package lang

import (
	"io"
	"log/slog"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// programCache memoizes parsed roots keyed by the xxh3 hash of the source
// text. Trees are immutable after Parse, so a cached root is safe to share
// across goroutines and repeated evaluations.
var programCache sync.Map // uint64 -> Node

// ParseCached parses src, reusing the memoized tree when the same source
// has been parsed before. Token capture is not available through the cache;
// use Parse with WithTokens for that.
func ParseCached(src string) (Node, error) {
	key := xxh3.HashString(src)

	if cached, ok := programCache.Load(key); ok {
		logger().Debug("program cache hit", slog.Uint64("key", key))

		return cached.(Node), nil
	}

	root, err := Parse(src)
	if err != nil {
		return nil, err
	}

	actual, _ := programCache.LoadOrStore(key, root)

	return actual.(Node), nil
}

// ResetCache discards all memoized programs.
func ResetCache() {
	programCache.Range(func(key, _ any) bool {
		programCache.Delete(key)

		return true
	})
}

// ParseReader reads all of r through an async read-ahead buffer and parses
// the content as a single expression. Used by callers that evaluate
// expression files or stdin.
func ParseReader(r io.Reader, opts ...Option) (Node, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, NewParseError("read input").Wrap(err)
	}

	return Parse(string(data), opts...)
}
