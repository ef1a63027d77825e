package jpath

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName []string
		wantIdx  []IndexKind
		hasError bool
	}{
		{
			name:     "simple name",
			input:    "Test",
			wantName: []string{"Test"},
			wantIdx:  []IndexKind{IndexNone},
		},
		{
			name:     "two chunks",
			input:    "Test.Path",
			wantName: []string{"Test", "Path"},
			wantIdx:  []IndexKind{IndexNone, IndexNone},
		},
		{
			name:     "leading index",
			input:    "Long[1].Test.Path",
			wantName: []string{"Long", "Test", "Path"},
			wantIdx:  []IndexKind{IndexAt, IndexNone, IndexNone},
		},
		{
			name:     "middle index",
			input:    "Long.Test[2].Path",
			wantName: []string{"Long", "Test", "Path"},
			wantIdx:  []IndexKind{IndexNone, IndexAt, IndexNone},
		},
		{
			name:     "trailing star",
			input:    "Long.Test.Path[*]",
			wantName: []string{"Long", "Test", "Path"},
			wantIdx:  []IndexKind{IndexNone, IndexNone, IndexAll},
		},
		{
			name:     "trailing last",
			input:    "Long.Test.Path[#]",
			wantName: []string{"Long", "Test", "Path"},
			wantIdx:  []IndexKind{IndexNone, IndexNone, IndexLast},
		},
		{
			name:     "invalid chunk",
			input:    "Long[bad]",
			hasError: true,
		},
		{
			name:     "empty chunk",
			input:    "Long..Path",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.hasError {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantName) {
				t.Fatalf("expected %d chunks, got %d", len(tt.wantName), len(got))
			}
			for i, c := range got {
				if c.Name != tt.wantName[i] {
					t.Errorf("chunk %d: expected name %q, got %q", i, tt.wantName[i], c.Name)
				}
				if c.Index != tt.wantIdx[i] {
					t.Errorf("chunk %d: expected index kind %v, got %v", i, tt.wantIdx[i], c.Index)
				}
			}
		})
	}
}

func TestParseIndexValues(t *testing.T) {
	chunks, err := Parse("Long[1].Test[3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunks[0].Value != 0 {
		t.Errorf("expected 1-based index 1 to become 0-based 0, got %d", chunks[0].Value)
	}
	if chunks[1].Value != 2 {
		t.Errorf("expected 1-based index 3 to become 0-based 2, got %d", chunks[1].Value)
	}
}

func TestParseBreadcrumbs(t *testing.T) {
	chunks, err := Parse("Long.Test.Path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Long", "Long.Test", "Long.Test.Path"}
	for i, c := range chunks {
		if c.Path != want[i] {
			t.Errorf("chunk %d: expected breadcrumb %q, got %q", i, want[i], c.Path)
		}
	}
}

func TestCache(t *testing.T) {
	CacheClear()
	if CacheSize() != 0 {
		t.Fatalf("expected empty cache, got size %d", CacheSize())
	}

	if _, err := ParseCached("Test.Path"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CacheSize() != 1 {
		t.Fatalf("expected cache size 1, got %d", CacheSize())
	}

	if _, err := ParseCached("Test.Path"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if CacheSize() != 1 {
		t.Fatalf("expected cache size still 1 after repeat parse, got %d", CacheSize())
	}

	CacheClear()
	if CacheSize() != 0 {
		t.Fatalf("expected empty cache after clear, got size %d", CacheSize())
	}
}
