package schema

// ContentSectionTable represents the 'content.section' table
type ContentSectionTable struct {
	Table          string
	ID             string
	Page           string
	Title          string
	Content        string
	Media          string
	SortOrder      string
	IsActive       string
	AdditionalData string
	CreatedAt      string
	UpdatedAt      string
}

// ContentSection is the schema definition for content.section
var ContentSection = ContentSectionTable{
	Table:          "content.section",
	ID:             "id",
	Page:           "page",
	Title:          "title",
	Content:        "content",
	Media:          "media",
	SortOrder:      "sortorder",
	IsActive:       "isactive",
	AdditionalData: "additionaldata",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t ContentSectionTable) Columns() []string {
	return []string{
		t.ID, t.Page, t.Title, t.Content, t.Media, t.SortOrder, t.IsActive,
		t.AdditionalData, t.CreatedAt, t.UpdatedAt,
	}
}
