package schema

// ContentProductTable represents the 'content.product' table
type ContentProductTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	Description string
	MainImage   string
	ImageList   string
	DetailPDF   string
	CategoryID  string
	CompanyID   string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
}

// ContentProduct is the schema definition for content.product
var ContentProduct = ContentProductTable{
	Table:       "content.product",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	MainImage:   "mainimage",
	ImageList:   "imagelist",
	DetailPDF:   "detailpdf",
	CategoryID:  "categoryid",
	CompanyID:   "companyid",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ContentProductTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.Description, t.MainImage, t.ImageList, t.DetailPDF,
		t.CategoryID, t.CompanyID, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
