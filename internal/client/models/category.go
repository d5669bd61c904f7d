package models

import "github.com/google/uuid"

// Category groups contacts by their type label. Categories live entirely in
// the local store; identifiers are stable for the local installation only.
// Names are not required to be unique.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCategory returns a Category with a fresh local identifier.
func NewCategory(name string) Category {
	return Category{ID: uuid.NewString(), Name: name}
}

// DefaultCategories is the fixed ordered list seeded into an empty local
// store on first access.
func DefaultCategories() []Category {
	names := []string{"หน่วยงานราชการ", "สื่อมวลชน", "สถาบันการศึกษา", "เอกชน", "Uncategorized"}
	out := make([]Category, 0, len(names))
	for _, n := range names {
		out = append(out, NewCategory(n))
	}
	return out
}
