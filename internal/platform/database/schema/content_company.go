package schema

// ContentCompanyTable represents the 'content.company' table
type ContentCompanyTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Logo        string
	Slug        string
	CreatedAt   string
	UpdatedAt   string
}

// ContentCompany is the schema definition for content.company
var ContentCompany = ContentCompanyTable{
	Table:       "content.company",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Logo:        "logo",
	Slug:        "slug",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentCompanyTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Logo, t.Slug, t.CreatedAt, t.UpdatedAt}
}
