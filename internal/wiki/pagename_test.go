package wiki

import "testing"

func TestPageName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"../README.md", "Home"},
		{"./README.md", "Home"},
		{"README.md", "Home"},
		{"./readme.md", "Home"}, // case-insensitive special case
		{"./CHANGELOG.md", "CHANGELOG"},
		{"./changelog.md", "CHANGELOG"}, // stays all-caps, never "Changelog"
		{"./docs/overview/roadmap.md", "Overview-Roadmap"},
		{"./docs/features/inspector.md", "Features-Inspector"},
		{"../overview/getting-started.md", "Overview-Getting-Started"},
		{"./docs/features/inspector/attributes/show-if.md", "Features-Inspector-Attributes-Show-If"},
		{"../../docs/guides/setup.md", "Guides-Setup"}, // multiple ../ prefixes
		{"./Docs/overview/roadmap.md", "Overview-Roadmap"}, // docs/ strip is case-insensitive
		{"./docs/api.md", "Api"},
		{"guides/advanced.md", "Guides-Advanced"}, // no relative prefix at all
		{"./docs/overview/", "Overview"},          // trailing slash, no stray hyphen
		{"./docs/weird--name.md", "Weird-Name"},   // empty hyphen tokens dropped
	}
	for i, c := range cases {
		got := PageName(c.in)
		if got.String() != c.want {
			t.Errorf("case %d: PageName(%q) = %q, want %q", i, c.in, got.String(), c.want)
		}
	}
}

func TestPageNameAnchors(t *testing.T) {
	cases := []struct {
		in, page, anchor string
	}{
		{"./docs/overview/roadmap.md#future", "Overview-Roadmap", "#future"},
		{"../README.md#install", "Home", "#install"},
		{"./CHANGELOG.md#v1-2-0", "CHANGELOG", "#v1-2-0"},
		{"./docs/api.md#weird anchor!", "Api", "#weird anchor!"}, // anchor is verbatim
	}
	for i, c := range cases {
		got := PageName(c.in)
		if got.Page != c.page || got.Anchor != c.anchor {
			t.Errorf("case %d: PageName(%q) = {%q %q}, want {%q %q}", i, c.in, got.Page, got.Anchor, c.page, c.anchor)
		}
	}
}

func TestPageRefString(t *testing.T) {
	ref := PageRef{Page: "Overview-Roadmap", Anchor: "#future"}
	if ref.String() != "Overview-Roadmap#future" {
		t.Errorf("got %q", ref.String())
	}
	if (PageRef{Page: "Home"}).String() != "Home" {
		t.Errorf("anchorless ref should render as bare page name")
	}
}
