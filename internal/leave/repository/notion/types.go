package notion

// ---- Request/Response types scoped to this package ----

// Parent points a new page at its database.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePageRequest is the body for POST /pages.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is a typed database property. Exactly one field is set.
type PropertyValue struct {
	Title    []RichText   `json:"title,omitempty"`
	RichText []RichText   `json:"rich_text,omitempty"`
	Date     *DateValue   `json:"date,omitempty"`
	Select   *SelectValue `json:"select,omitempty"`
}

// RichText is one text run. Responses fill PlainText; requests use Text.
type RichText struct {
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// TextContent is the content of a text run.
type TextContent struct {
	Content string `json:"content"`
}

// DateValue is a date property. Start is YYYY-MM-DD for all-day dates.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// SelectValue is a single-select option.
type SelectValue struct {
	Name string `json:"name"`
}

// Page is a Notion page (database row).
type Page struct {
	ID         string                   `json:"id"`
	URL        string                   `json:"url"`
	Archived   bool                     `json:"archived"`
	Properties map[string]PropertyValue `json:"properties"`
}

// Filter is a node of the query filter tree: either a compound And or a
// single property condition.
type Filter struct {
	And      []Filter         `json:"and,omitempty"`
	Property string           `json:"property,omitempty"`
	RichText *TextCondition   `json:"rich_text,omitempty"`
	Date     *DateCondition   `json:"date,omitempty"`
	Select   *SelectCondition `json:"select,omitempty"`
}

// TextCondition filters rich_text and title properties.
type TextCondition struct {
	Equals string `json:"equals"`
}

// DateCondition filters date properties.
type DateCondition struct {
	Equals     string `json:"equals,omitempty"`
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
}

// SelectCondition filters select properties.
type SelectCondition struct {
	Equals string `json:"equals"`
}

// Sort orders query results.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryRequest is the body for POST /databases/{id}/query.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}
