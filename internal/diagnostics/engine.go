package diagnostics

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/cxlang/cxc/internal/sourcecache"
	"github.com/cxlang/cxc/internal/token"
)

// Engine is the process-wide diagnostic sink. One Engine is shared by
// the lexer, preprocessor, parser, and emitter for a single
// compilation run. SessionID is a UUID generated once per Engine; it
// is not copied into Records or their Serialized form, which carry
// only a per-record ID.
type Engine struct {
	mu         sync.Mutex
	store      *TemplateStore
	cache      *sourcecache.Cache
	color      ColorMode
	SessionID  string
	records    []*Record
	hasErrored bool
	fatal      bool
}

// NewEngine builds an Engine backed by a freshly seeded TemplateStore
// and the given source cache (used for context-window rendering).
func NewEngine(cache *sourcecache.Cache, color ColorMode) (*Engine, error) {
	store, err := NewTemplateStore()
	if err != nil {
		return nil, err
	}
	return &Engine{
		store:     store,
		cache:     cache,
		color:     color,
		SessionID: uuid.NewString(),
	}, nil
}

// Close releases the engine's template store.
func (e *Engine) Close() error {
	return e.store.Close()
}

// OverrideTemplate lets a host program replace a code's wording or
// default severity at startup, e.g. to load a localized catalog.
func (e *Engine) OverrideTemplate(code Code, sev Severity, message, fix string) error {
	return e.store.Put(code, sev, message, fix)
}

// Report records a diagnostic for code anchored at tok, formatting
// args into the template's message and fix. It returns the built
// Record so the caller can attach a QuickFix or Hint before Render.
func (e *Engine) Report(code Code, tok token.Token, args ...any) *Record {
	sev, message, fix, ok := e.store.Lookup(code)
	if !ok {
		sev, message, fix = Fatal, "unknown diagnostic code %q", ""
		args = []any{string(code)}
	}
	rec := newRecord(uuid.NewString(), code, sev, message, fix, tok, args...)
	e.record(rec)
	return rec
}

// ReportAt is like Report but anchors to an explicit file/line/column
// rather than a token, for diagnostics raised before any token exists
// (e.g. a source file that fails to open).
func (e *Engine) ReportAt(code Code, file string, line, column int, args ...any) *Record {
	rec := e.Report(code, token.New(token.Unknown, "", token.Location{File: file, Line: line, Column: column}), args...)
	return rec
}

func (e *Engine) record(rec *Record) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fatal {
		// A Fatal diagnostic suppresses every later one.
		return
	}
	e.records = append(e.records, rec)
	if rec.Severity >= Error {
		e.hasErrored = true
	}
	if rec.Severity == Fatal {
		e.fatal = true
	}
}

// HasErrored reports whether any Error or Fatal diagnostic has been
// recorded.
func (e *Engine) HasErrored() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasErrored
}

// IsFatal reports whether a Fatal diagnostic was recorded, meaning the
// stage that raised it should stop rather than attempt recovery.
func (e *Engine) IsFatal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fatal
}

// Records returns a snapshot of every diagnostic recorded so far,
// ordered by file then line then column.
func (e *Engine) Records() []*Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Record, len(e.records))
	copy(out, e.records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// WriteAll renders every recorded diagnostic to w in order.
func (e *Engine) WriteAll(w io.Writer) error {
	mode := DetectColorMode(e.color, 2) // stderr fd
	color := mode == ColorAlways
	for _, rec := range e.Records() {
		if _, err := fmt.Fprint(w, Render(rec, e.cache, color)); err != nil {
			return err
		}
	}
	return nil
}

// Serialize projects every recorded diagnostic into its wire form,
// stamping each with the color mode the engine resolved to for this
// process (spec §6's color_mode field).
func (e *Engine) Serialize() []Serialized {
	mode := DetectColorMode(e.color, 2).String() // stderr fd
	recs := e.Records()
	out := make([]Serialized, len(recs))
	for i, r := range recs {
		out[i] = r.Serialize(mode)
	}
	return out
}
