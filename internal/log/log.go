// Package log provides audit logging for cachedir checks.
// Logs are stored in ~/.cachedir/log/cachedir-log.db and record every CLI
// command and MCP tool invocation.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("check:is-tagged", "check").
//		Author(cmd.Author()).
//		Path(dir).
//		Result(r.Outcome.String()).
//		Write(err)
//
//	log.Event("core:config", "set").
//		Detail("key", key).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "check:is-tagged",
// "check:state", "mcp:is_tagged".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "check:is-tagged", "mcp:is_tagged"
	Author string // who performed the action
	Action string // verb: check, inspect, read, set, etc.
	Path   string // input: directory as given

	// Output fields - populated after the operation completes
	ResolvedPath string // output: absolute directory path (if different from input)
	Result       string // output: tagged, not-tagged, present, wrong-header...

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether an answer was obtained
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "check:is-tagged")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:is_tagged")
//
// The action describes what operation was performed:
//   - "check", "inspect", "read", "list", "get", "set", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the directory this operation checked, as the caller gave it.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	if abs, err := filepath.Abs(path); err == nil && abs != path {
		b.entry.ResolvedPath = abs
	}
	return b
}

// Result sets the answer the operation produced.
//
// Leave unset when the operation failed; the error is recorded by Write.
func (b *Builder) Result(result string) *Builder {
	b.entry.Result = result
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// config keys, guide topics, error kinds, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful. A directory that is not
// tagged is still a success: the check produced an answer.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	if wd, err := os.Getwd(); err == nil {
		global.project = hash(wd)
	}
	return nil
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
