// Package categories loads the category table that maps category names to
// file extensions.
//
// # Ordering
//
// A table is an ordered list. When an extension appears in more than one
// category the first category in definition order wins. The order is taken
// from the document itself: mapping order for JSON and YAML, array order for
// TOML. The catch-all category is always present exactly once; when the
// definition omits it, it is appended last with no extensions.
//
// # Formats
//
// JSON and YAML:
//
//	{"Images": [".jpg", ".png"], "Docs": [".txt", ".pdf"]}
//
// TOML:
//
//	[[category]]
//	name = "Images"
//	extensions = [".jpg", ".png"]
package categories
