package diagnostics_test

import (
	"testing"

	"github.com/cxlang/cxc/internal/diagnostics"
)

func TestNewTemplateStoreSeedsKnownCode(t *testing.T) {
	store, err := diagnostics.NewTemplateStore()
	if err != nil {
		t.Fatalf("NewTemplateStore: %v", err)
	}
	defer store.Close()

	sev, msg, _, ok := store.Lookup(diagnostics.CodeUnknownByte)
	if !ok {
		t.Fatalf("expected %s to be seeded", diagnostics.CodeUnknownByte)
	}
	if sev != diagnostics.Error {
		t.Fatalf("severity = %v, want Error", sev)
	}
	if msg == "" {
		t.Fatalf("message should not be empty")
	}
}

func TestTemplateStorePutOverwrites(t *testing.T) {
	store, err := diagnostics.NewTemplateStore()
	if err != nil {
		t.Fatalf("NewTemplateStore: %v", err)
	}
	defer store.Close()

	if err := store.Put(diagnostics.CodeUnknownByte, diagnostics.Warn, "replaced", "fix it"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	sev, msg, fix, ok := store.Lookup(diagnostics.CodeUnknownByte)
	if !ok || sev != diagnostics.Warn || msg != "replaced" || fix != "fix it" {
		t.Fatalf("Lookup after Put = (%v, %q, %q, %v), want (Warn, \"replaced\", \"fix it\", true)", sev, msg, fix, ok)
	}
}

func TestTemplateStoreLookupUnknownCode(t *testing.T) {
	store, err := diagnostics.NewTemplateStore()
	if err != nil {
		t.Fatalf("NewTemplateStore: %v", err)
	}
	defer store.Close()

	if _, _, _, ok := store.Lookup(diagnostics.Code("Z999")); ok {
		t.Fatalf("unknown code should report not-found")
	}
}
