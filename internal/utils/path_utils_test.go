package utils

import (
	"testing"
)

func TestExtractModuleName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"simple.hlx", "simple"},
		{"path/to/module.hlx", "module"},
		{"module", "module"},
		{"/absolute/path/to/mod.hlx", "mod"},
		{".hlx", ""}, // Edge case: just extension
		{"name.with.dots.hlx", "name.with.dots"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := ExtractModuleName(tt.path)
			if got != tt.expected {
				t.Errorf("ExtractModuleName(%q) = %q; want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGetModuleDir(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"path/to/file.hlx", "path/to"},
		{"file.hlx", "."},
		{"/abs/file.hlx", "/abs"},
		{"path/to/dir", "path/to/dir"},
		{"/abs/dir", "/abs/dir"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := GetModuleDir(tt.path)
			if got != tt.expected {
				t.Errorf("GetModuleDir(%q) = %q; want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestResolveImportPath(t *testing.T) {
	tests := []struct {
		baseDir    string
		importPath string
		expected   string
	}{
		{"pkg", "./sibling.hlx", "pkg/sibling.hlx"},
		{".", "./sibling.hlx", "./sibling.hlx"},
		{"pkg", "other::pkg", "other::pkg"},
	}

	for _, tt := range tests {
		t.Run(tt.importPath, func(t *testing.T) {
			got := ResolveImportPath(tt.baseDir, tt.importPath)
			if got != tt.expected {
				t.Errorf("ResolveImportPath(%q, %q) = %q; want %q", tt.baseDir, tt.importPath, got, tt.expected)
			}
		})
	}
}
