package category

import (
	"strings"
)

const resourceExt = ".csv"

type Category struct {
	ID          string
	Name        string
	Level       string
	Description string
	// Color is a hex foreground used for the category title.
	Color string
}

var categories = []Category{
	{ID: "oxford_a1", Name: "A1", Level: "Beginner", Description: "Start learning", Color: "#10b981"},
	{ID: "oxford_a2", Name: "A2", Level: "Elementary", Description: "A solid foundation", Color: "#3b82f6"},
	{ID: "oxford_b1", Name: "B1", Level: "Intermediate", Description: "Step into the middle level", Color: "#a855f7"},
	{ID: "oxford_b2", Name: "B2", Level: "Upper-Intermediate", Description: "Communicate with confidence", Color: "#f97316"},
	{ID: "oxford_c1", Name: "C1", Level: "Advanced", Description: "Use the language fluently", Color: "#ef4444"},
	{ID: "oxford_c2", Name: "C2", Level: "Proficiency", Description: "Near-native mastery", Color: "#6366f1"},
	{ID: "toeic", Name: "TOEIC", Level: "Business English", Description: "Prepare for the workplace exam", Color: "#475569"},
}

// All returns the known categories in display order.
func All() []Category {
	all := make([]Category, len(categories))
	copy(all, categories)
	return all
}

func IDs() []string {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids
}

func Lookup(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Title is the heading shown for a category. Decks found at a source but
// missing from the table fall back to their id.
func Title(id string) string {
	c, ok := Lookup(id)
	if !ok {
		return id
	}
	if c.ID == "toeic" {
		return "TOEIC Vocabulary"
	}
	return c.Name + " - " + c.Level
}

func ResourcePath(id string) string {
	return id + resourceExt
}

// IDFromResource reverses ResourcePath. ok is false for names that are not
// resources.
func IDFromResource(name string) (string, bool) {
	if !strings.HasSuffix(name, resourceExt) {
		return "", false
	}
	id := name[:len(name)-len(resourceExt)]
	if id == "" {
		return "", false
	}
	return id, true
}
