package assetpack_test

import (
	"errors"
	"reflect"
	"testing"

	assetpack "github.com/alnah/go-assetpack"
)

// ---------------------------------------------------------------------------
// TestSym / TestIsSymbol - Token helpers
// ---------------------------------------------------------------------------

func TestSym(t *testing.T) {
	t.Parallel()

	if got := assetpack.Sym("defaults"); got != ":defaults" {
		t.Errorf("Sym(defaults) = %q, want %q", got, ":defaults")
	}
	if assetpack.Sym("all") != assetpack.All {
		t.Errorf("Sym(all) = %q, want All", assetpack.Sym("all"))
	}
}

func TestIsSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  bool
	}{
		{":defaults", true},
		{assetpack.All, true},
		{":", false},
		{"defaults", false},
		{"vendor/jquery", false},
		{"http://cdn.example.com/x.js", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			if got := assetpack.IsSymbol(tt.token); got != tt.want {
				t.Errorf("IsSymbol(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExpansionTable_Expand - Symbolic and literal tokens
// ---------------------------------------------------------------------------

func TestExpansionTable_Expand(t *testing.T) {
	t.Parallel()

	table := assetpack.ExpansionTable{
		"defaults": {"prototype", "effects"},
		"nested":   {"a", ":defaults"},
		"empty":    {},
	}

	tests := []struct {
		name    string
		tokens  []string
		want    []string
		wantErr error
	}{
		{
			name:   "literals pass through in order",
			tokens: []string{"b", "a", "vendor/c"},
			want:   []string{"b", "a", "vendor/c"},
		},
		{
			name:   "symbol replaced in place",
			tokens: []string{"first", ":defaults", "last"},
			want:   []string{"first", "prototype", "effects", "last"},
		},
		{
			name:   "expansion is single level",
			tokens: []string{":nested"},
			want:   []string{"a", ":defaults"},
		},
		{
			name:   "empty mapping contributes nothing",
			tokens: []string{"x", ":empty", "y"},
			want:   []string{"x", "y"},
		},
		{
			name:   "empty input",
			tokens: nil,
			want:   []string{},
		},
		{
			name:    "unknown symbol",
			tokens:  []string{"x", ":missing"},
			wantErr: assetpack.ErrUnknownExpansion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := table.Expand(tt.tokens)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expand() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expand() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpansionTable_Expand_UnknownNamesToken(t *testing.T) {
	t.Parallel()

	_, err := assetpack.ExpansionTable{}.Expand([]string{":missing"})
	if err == nil || !errors.Is(err, assetpack.ErrUnknownExpansion) {
		t.Fatalf("Expand() error = %v, want ErrUnknownExpansion", err)
	}
	if want := `no expansion found for ":missing"`; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

// Expanding literal-only output again yields the same list.
func TestExpansionTable_Expand_Idempotent(t *testing.T) {
	t.Parallel()

	table := assetpack.ExpansionTable{"defaults": {"prototype", "effects", "application"}}

	once, err := table.Expand([]string{":defaults", "extra"})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	twice, err := table.Expand(once)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expand(Expand(x)) = %v, want %v", twice, once)
	}
}
