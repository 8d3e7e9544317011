package dataset

import "testing"

func TestSourceKinds(t *testing.T) {
	if src := SourceFromFile("data/animals.json"); src.Kind() != SourceKindFile {
		t.Fatalf("expected file kind, got %q", src.Kind())
	}
	if src := SourceFromFS("animals.json"); src.Kind() != SourceKindFS || src.Location() != "animals.json" {
		t.Fatalf("unexpected fs source: %q %q", src.Kind(), src.Location())
	}
	if src := SourceFromURL("https://api.api-ninjas.com/v1/animals"); src.Kind() != SourceKindURL {
		t.Fatalf("expected url kind, got %q", src.Kind())
	}
}

func TestSourceFromURLPanicsOnInvalidInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid URL")
		}
	}()
	SourceFromURL("not a url")
}
