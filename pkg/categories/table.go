package categories

import (
	"path/filepath"
	"strings"
)

// DefaultCatchAll is the name of the category receiving unmatched files
const DefaultCatchAll = "Others"

// Category is a named bucket and the extensions it claims
type Category struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// Table is an ordered, normalized category table
type Table struct {
	categories []Category
	catchAll   string
	byExt      map[string]int
	byName     map[string]int
}

// NewTable normalizes cats and guarantees the catch-all category. An empty
// catchAll selects DefaultCatchAll. Later duplicates of a category name are
// merged into the first occurrence.
func NewTable(cats []Category, catchAll string) *Table {
	if catchAll == "" {
		catchAll = DefaultCatchAll
	}

	t := &Table{
		catchAll: catchAll,
		byExt:    make(map[string]int),
		byName:   make(map[string]int),
	}

	for _, c := range cats {
		idx, seen := t.byName[c.Name]
		if !seen {
			idx = len(t.categories)
			t.byName[c.Name] = idx
			t.categories = append(t.categories, Category{Name: c.Name, Extensions: []string{}})
		}
		for _, raw := range c.Extensions {
			t.addExtension(idx, raw)
		}
	}

	if _, ok := t.byName[catchAll]; !ok {
		t.byName[catchAll] = len(t.categories)
		t.categories = append(t.categories, Category{Name: catchAll, Extensions: []string{}})
	}

	return t
}

func (t *Table) addExtension(idx int, raw string) {
	ext := NormalizeExtension(raw)
	if ext == "" {
		return
	}
	cat := &t.categories[idx]
	for _, existing := range cat.Extensions {
		if existing == ext {
			return
		}
	}
	cat.Extensions = append(cat.Extensions, ext)
	if _, claimed := t.byExt[ext]; !claimed {
		t.byExt[ext] = idx
	}
}

// Classify returns the first category claiming ext, or the catch-all.
// ext is compared after normalization, so "JPG" and ".jpg" are equivalent.
func (t *Table) Classify(ext string) string {
	if idx, ok := t.byExt[NormalizeExtension(ext)]; ok {
		return t.categories[idx].Name
	}
	return t.catchAll
}

// ClassifyFile classifies a file by the extension of its name
func (t *Table) ClassifyFile(name string) string {
	return t.Classify(ExtensionOf(name))
}

// CatchAll is the name of the catch-all category
func (t *Table) CatchAll() string {
	return t.catchAll
}

// Has reports whether name is a category in the table (case-sensitive)
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Len is the number of categories, catch-all included
func (t *Table) Len() int {
	return len(t.categories)
}

// Names lists category names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Categories returns a copy of the table in order
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Extensions: append([]string(nil), c.Extensions...)}
	}
	return out
}

// NormalizeExtension lower-cases ext and ensures a single leading dot.
// Blank input stays blank.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ExtensionOf returns the case-folded extension of a file name, including the
// dot. Names without a dot yield "".
func ExtensionOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
