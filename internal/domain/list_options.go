package domain

import "strings"

// SortDescending is the only sort token that reverses the default id order.
const SortDescending = "desc"

// ListOptions holds the list query parameters.
// Important is tri-state: nil means the caller did not ask for a filter.
type ListOptions struct {
	Sort      string
	Important *bool
	Search    string
}

// HasSort reports whether a non-blank sort token was given.
func (o ListOptions) HasSort() bool {
	return strings.TrimSpace(o.Sort) != ""
}

// HasSearch reports whether a search text was given. Whitespace counts as text.
func (o ListOptions) HasSearch() bool {
	return o.Search != ""
}

// IsBrowseAll reports the pass-through case: no sort and no search.
// The importance filter is ignored in that case.
func (o ListOptions) IsBrowseAll() bool {
	return !o.HasSort() && !o.HasSearch()
}

// ImportantOnly maps the tri-state filter onto a concrete boolean; nil means false.
func (o ListOptions) ImportantOnly() bool {
	return o.Important != nil && *o.Important
}

// Descending reports whether the sort token asks for descending id order.
func (o ListOptions) Descending() bool {
	return strings.EqualFold(o.Sort, SortDescending)
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
