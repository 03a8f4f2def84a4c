package config

// defaultSections reproduces the conventional wiki layout: an Overview block
// folded into Getting Started, one section per feature area, then Guides and
// Performance. Home and CHANGELOG entries are added by the sidebar generator
// itself, not by section matching.
func defaultSections() []Section {
	return []Section{
		{Title: "Inspector Features", Prefix: "Features-Inspector-"},
		{Title: "Effects System", Prefix: "Features-Effects-"},
		{Title: "Relational Components", Prefix: "Features-Relational-Components-"},
		{Title: "Serialization", Prefix: "Features-Serialization-"},
		{Title: "Spatial Trees", Prefix: "Features-Spatial-"},
		{Title: "Logging", Prefix: "Features-Logging-"},
		{Title: "Utilities", Prefix: "Features-Utilities-"},
		{Title: "Editor Tools", Prefix: "Features-Editor-Tools-"},
		{Title: "Guides", Prefix: "Guides-"},
		{Title: "Performance", Prefix: "Performance-"},
	}
}

// defaultSubcategories lists the display-name prefixes stripped after the
// top-level category prefix when building human-readable link labels.
func defaultSubcategories() []string {
	return []string{
		"Inspector-",
		"Effects-",
		"Relational-Components-",
		"Serialization-",
		"Spatial-",
		"Logging-",
		"Utilities-",
		"Editor-Tools-",
	}
}

// TopLevelCategories are the prefixes recognized (and stripped) first when
// deriving a display name from a wiki page name.
func TopLevelCategories() []string {
	return []string{"Features-", "Overview-", "Performance-", "Guides-", "Project-"}
}
