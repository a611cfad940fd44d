package schema

// ContentCategoryTable represents the 'content.category' table
type ContentCategoryTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	ParentID  string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// ContentCategory is the schema definition for content.category
var ContentCategory = ContentCategoryTable{
	Table:     "content.category",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	ParentID:  "parentid",
	IsActive:  "isactive",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentCategoryTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.ParentID, t.IsActive, t.CreatedAt, t.UpdatedAt}
}

// ContentCategoryCompanyTable represents the 'content.categorycompany' junction table
type ContentCategoryCompanyTable struct {
	Table      string
	CategoryID string
	CompanyID  string
}

// ContentCategoryCompany is the schema definition for content.categorycompany
var ContentCategoryCompany = ContentCategoryCompanyTable{
	Table:      "content.categorycompany",
	CategoryID: "categoryid",
	CompanyID:  "companyid",
}
