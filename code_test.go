package digipin

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) Code {
	t.Helper()
	c, err := ParseCode(s)
	if err != nil {
		t.Fatalf("ParseCode(%q): %v", s, err)
	}
	return c
}

func codeStrings(codes []Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}

func sortedCodeStrings(codes []Code) []string {
	out := codeStrings(codes)
	sort.Strings(out)
	return out
}

func TestParseCodeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidCodeLength},
		{"39J49LL8T42", ErrInvalidCodeLength},
		{"39A", ErrInvalidCodeCharacter},
		{"1", ErrInvalidCodeCharacter},
		{"39J4 ", ErrInvalidCodeCharacter},
		{"O9J4", ErrInvalidCodeCharacter},
	}
	for _, tt := range tests {
		if _, err := ParseCode(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseCode(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParseCodeRoundTrips(t *testing.T) {
	for _, s := range []string{"3", "39J4", "39J49LL8T4", "fcjk", "2t"} {
		c := mustParse(t, s)
		want := s
		for i := range want {
			if want[i] >= 'a' && want[i] <= 'z' {
				want = want[:i] + string(want[i]-'a'+'A') + want[i+1:]
			}
		}
		if c.String() != want {
			t.Errorf("ParseCode(%q).String() = %q, want %q", s, c, want)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in     string
		strict bool
		want   bool
	}{
		{"39J49LL8T4", false, true},
		{"39J49LL8T4", true, true},
		{"39J4", false, true},
		{"39J4", true, false},
		{"39j49ll8t4", true, true},
		{"INVALID123", false, false},
		{"", false, false},
		{"39J49LL8T4X", true, false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.in, tt.strict); got != tt.want {
			t.Errorf("IsValid(%q, strict=%v) = %v, want %v", tt.in, tt.strict, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	c := mustParse(t, "39J49LL8T4")
	p, err := c.Parent(4)
	if err != nil {
		t.Fatalf("Parent(4): %v", err)
	}
	if p.String() != "39J4" {
		t.Errorf("Parent(4) = %q, want %q", p, "39J4")
	}
	if p, err = c.Parent(10); err != nil || p != c {
		t.Errorf("Parent(10) = %q, %v, want the code itself", p, err)
	}
	if _, err = c.Parent(0); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("Parent(0) error = %v, want ErrInvalidPrecision", err)
	}
	if _, err = mustParse(t, "39J4").Parent(5); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("Parent deeper than code error = %v, want ErrInvalidPrecision", err)
	}
}

func TestIsWithinMatchesPrefix(t *testing.T) {
	tests := []struct {
		child, parent string
		want          bool
	}{
		{"39J49LL8T4", "39J4", true},
		{"39J49LL8T4", "3", true},
		{"39J49LL8T4", "39J49LL8T4", true},
		{"39J4", "39J49LL8T4", false},
		{"39J49LL8T4", "39J5", false},
		{"39J49LL8T4", "C", false},
	}
	for _, tt := range tests {
		child := mustParse(t, tt.child)
		parent := mustParse(t, tt.parent)
		if got := child.IsWithin(parent); got != tt.want {
			t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.child, tt.parent, got, tt.want)
		}
	}
}

func TestIsWithinGeometry(t *testing.T) {
	// Prefix containment must agree with geometric nesting: the child's
	// cell lies entirely within the parent's.
	child := mustParse(t, "39J49LL8T4")
	parent := mustParse(t, "39J4")
	cb, pb := child.Bounds(), parent.Bounds()
	if cb.MinLat < pb.MinLat || cb.MaxLat > pb.MaxLat || cb.MinLng < pb.MinLng || cb.MaxLng > pb.MaxLng {
		t.Errorf("cell %v of child %q not nested in cell %v of parent %q", cb, child, pb, parent)
	}
}

func TestDescendants(t *testing.T) {
	c := mustParse(t, "39")

	var got []string
	for d := range c.Descendants(3) {
		got = append(got, d.String())
	}
	want := []string{
		"392", "393", "394", "395", "396", "397", "398", "399",
		"39C", "39F", "39J", "39K", "39L", "39M", "39P", "39T",
	}
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Descendants(3) mismatch (-want +got):\n%s", diff)
	}

	// Two levels deeper: 16² codes, every one inside c.
	count := 0
	for d := range c.Descendants(4) {
		if !d.IsWithin(c) {
			t.Fatalf("descendant %q not within %q", d, c)
		}
		count++
	}
	if count != 256 {
		t.Errorf("Descendants(4) yielded %d codes, want 256", count)
	}

	// Same precision yields just the code; lower yields nothing.
	var same []Code
	for d := range c.Descendants(2) {
		same = append(same, d)
	}
	if len(same) != 1 || same[0] != c {
		t.Errorf("Descendants(2) = %v, want just %q", codeStrings(same), c)
	}
	for range c.Descendants(1) {
		t.Fatal("Descendants below the code's precision must be empty")
	}
}

func TestDescendantsRestartable(t *testing.T) {
	c := mustParse(t, "39J4")
	seq := c.Descendants(5)

	first := func() []string {
		var out []string
		for d := range seq {
			out = append(out, d.String())
			if len(out) == 3 {
				break
			}
		}
		return out
	}
	a, b := first(), first()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("restarted sequence differs (-first +second):\n%s", diff)
	}
}
