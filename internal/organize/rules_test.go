package organize

import "testing"

func TestClassifyKnownExtension(t *testing.T) {
	rules := DefaultRules()
	if got := rules.Classify("/tmp/report.pdf"); got != "Documents" {
		t.Fatalf("got %q want %q", got, "Documents")
	}
	if got := rules.Classify("/tmp/photo.jpg"); got != "Images" {
		t.Fatalf("got %q want %q", got, "Images")
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	rules := DefaultRules()
	upper := rules.Classify("/tmp/photo.JPG")
	lower := rules.Classify("/tmp/photo.jpg")
	if upper != lower {
		t.Fatalf("case mismatch: %q vs %q", upper, lower)
	}
}

func TestClassifyUnknownFallsBack(t *testing.T) {
	rules := DefaultRules()
	if got := rules.Classify("/tmp/data.unknownext"); got != rules.Fallback {
		t.Fatalf("got %q want fallback %q", got, rules.Fallback)
	}
	if got := rules.Classify("/tmp/no-extension"); got != rules.Fallback {
		t.Fatalf("got %q want fallback %q", got, rules.Fallback)
	}
}

func TestClassifyUsesFinalSegmentOnly(t *testing.T) {
	rules := DefaultRules()
	if got := rules.Classify("/tmp/backup.tar.gz"); got != "Archives" {
		t.Fatalf("got %q want %q", got, "Archives")
	}
}

func TestCategoriesIncludeFallback(t *testing.T) {
	rules := Rules{ByExtension: map[string]string{".a": "A", ".b": "B"}, Fallback: "Rest"}
	set := rules.Categories()
	for _, name := range []string{"A", "B", "Rest"} {
		if _, ok := set[name]; !ok {
			t.Fatalf("category set missing %q", name)
		}
	}
	if len(set) != 3 {
		t.Fatalf("category set size: got %d want 3", len(set))
	}
}
