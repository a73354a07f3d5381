package ontology

import "testing"

var testNamespace = NewNamespace("https://w3id.org/heritage/ontology", "heritage")

func TestNewNamespaceTrimsSeparators(t *testing.T) {
	ns := NewNamespace("https://w3id.org/heritage/ontology/#", "heritage")
	if ns.Base() != "https://w3id.org/heritage/ontology" {
		t.Fatalf("unexpected base %q", ns.Base())
	}
	if ns.Vocabulary() != "https://w3id.org/heritage/ontology#" {
		t.Fatalf("unexpected vocabulary %q", ns.Vocabulary())
	}
}

func TestPredicate(t *testing.T) {
	if got := testNamespace.Predicate("label"); got != "https://w3id.org/heritage/ontology#label" {
		t.Errorf("unexpected predicate %q", got)
	}
	dc := "http://purl.org/dc/terms/title"
	if got := testNamespace.Predicate(dc); got != dc {
		t.Errorf("absolute key rewritten to %q", got)
	}
	if got := testNamespace.URIPredicate(); got != "https://w3id.org/heritage/ontology#uri" {
		t.Errorf("unexpected uri predicate %q", got)
	}
}

func TestCanonicalEntityURI(t *testing.T) {
	got := testNamespace.CanonicalEntityURI("artwork", "7")
	if got != "https://w3id.org/heritage/ontology/id/artwork/7" {
		t.Fatalf("unexpected canonical uri %q", got)
	}
	got = testNamespace.CanonicalEntityURI("institution", "de/berlin/hamburger bahnhof")
	if got != "https://w3id.org/heritage/ontology/id/institution/de/berlin/hamburger%20bahnhof" {
		t.Fatalf("unexpected canonical uri %q", got)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	cases := []struct{ typ, id string }{
		{"artwork", "7"},
		{"museum", "42"},
		{"exhibition", "2019/documenta"},
		{"actor", "Müller, Anna"},
		{"institution", "a?b#c%d"},
		{"Artist", "x/y/z"},
	}
	for _, tc := range cases {
		uri := testNamespace.CanonicalEntityURI(tc.typ, tc.id)
		ref, ok := testNamespace.ParseEntityURI(uri)
		if !ok {
			t.Errorf("ParseEntityURI(%q) failed", uri)
			continue
		}
		want := EntityRef{Type: NormalizeDetailType(tc.typ), ID: tc.id}
		if ref != want {
			t.Errorf("round trip of %+v gave %+v", want, ref)
		}
	}
}

func TestParseEntityURIFragmentStyle(t *testing.T) {
	ref, ok := testNamespace.ParseEntityURI("http://legacy.example.org/ontology#museum/12/a")
	if !ok {
		t.Fatal("expected fragment id to parse")
	}
	if ref.Type != "institution" || ref.ID != "12/a" {
		t.Fatalf("unexpected ref %+v", ref)
	}
}

func TestParseEntityURIRejects(t *testing.T) {
	inputs := []string{
		"https://w3id.org/heritage/ontology/id/artwork",
		"https://w3id.org/heritage/ontology/id/artwork//",
		"https://elsewhere.org/id/artwork/7",
		"urn:x#artwork",
		"urn:x#",
		"https://w3id.org/heritage/ontology/id/artwork/%zz",
		"",
	}
	for _, input := range inputs {
		if ref, ok := testNamespace.ParseEntityURI(input); ok {
			t.Errorf("ParseEntityURI(%q) = %+v, expected failure", input, ref)
		}
	}
}

func TestDetailHrefKeepsIDOpaque(t *testing.T) {
	got := DetailHref("museum", "de/berlin")
	if got != "/detail/institution/de%2Fberlin" {
		t.Fatalf("unexpected detail href %q", got)
	}
}

func TestResourceHrefSplitsID(t *testing.T) {
	got := ResourceHref("exhibition", "2019/documenta 14")
	if got != "/resource/exhibition/2019/documenta%2014" {
		t.Fatalf("unexpected resource href %q", got)
	}
}
