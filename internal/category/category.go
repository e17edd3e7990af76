package category

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Misc is the fallback category for files whose extension matches nothing in
// the table.
const Misc = "misc"

// MiscDisplayName is the label used for the fallback bucket in reports.
const MiscDisplayName = "Miscellaneous"

// Category pairs a name with the extension set it claims. Extensions include
// the leading dot and are stored lowercase.
type Category struct {
	Name       string
	Extensions []string
}

// Table is an ordered, immutable set of categories. Enumeration order is the
// declaration order, which makes first-match classification deterministic.
type Table struct {
	categories []Category
	lookup     map[string]string
	display    map[string]string
}

// Default returns the built-in category table. The set is fixed at build
// time; it determines the destination layout and the report ordering.
func Default() *Table {
	return New([]Category{
		{Name: "documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt"}},
		{Name: "images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"}},
		{Name: "audio", Extensions: []string{".mp3", ".wav", ".flac", ".m4a"}},
		{Name: "videos", Extensions: []string{".mp4", ".avi", ".mkv", ".mov"}},
		{Name: "archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
		{Name: "code", Extensions: []string{".py", ".js", ".html", ".css", ".java", ".cpp"}},
	})
}

// New builds a table from the provided categories. First match wins when
// extension sets overlap; the built-in table keeps them disjoint.
func New(categories []Category) *Table {
	titler := cases.Title(language.English)
	table := &Table{
		categories: make([]Category, 0, len(categories)),
		lookup:     make(map[string]string),
		display:    make(map[string]string, len(categories)+1),
	}
	for _, cat := range categories {
		normalized := Category{Name: cat.Name, Extensions: make([]string, 0, len(cat.Extensions))}
		for _, ext := range cat.Extensions {
			lowered := strings.ToLower(strings.TrimSpace(ext))
			if lowered == "" {
				continue
			}
			normalized.Extensions = append(normalized.Extensions, lowered)
			if _, claimed := table.lookup[lowered]; !claimed {
				table.lookup[lowered] = cat.Name
			}
		}
		table.categories = append(table.categories, normalized)
		table.display[cat.Name] = titler.String(cat.Name)
	}
	table.display[Misc] = MiscDisplayName
	return table
}

// Classify maps an extension (leading dot included) to its category name.
// Matching is case-insensitive; anything unmatched, including the empty
// string, classifies as Misc. Total over all inputs.
func (t *Table) Classify(extension string) string {
	if name, ok := t.lookup[strings.ToLower(extension)]; ok {
		return name
	}
	return Misc
}

// Names returns the category names in table order, excluding Misc.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories))
	for _, cat := range t.categories {
		names = append(names, cat.Name)
	}
	return names
}

// FolderNames returns every destination folder name in table order with Misc
// appended last.
func (t *Table) FolderNames() []string {
	return append(t.Names(), Misc)
}

// Categories returns a copy of the ordered category definitions.
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// DisplayName returns the human-facing label for a category name.
func (t *Table) DisplayName(name string) string {
	if label, ok := t.display[name]; ok {
		return label
	}
	return name
}
