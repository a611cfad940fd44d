package schema

// ContentSliderTable represents the 'content.slider' table
type ContentSliderTable struct {
	Table     string
	ID        string
	Title     string
	Subtitle  string
	ImageURL  string
	SortOrder string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// ContentSlider is the schema definition for content.slider
var ContentSlider = ContentSliderTable{
	Table:     "content.slider",
	ID:        "id",
	Title:     "title",
	Subtitle:  "subtitle",
	ImageURL:  "imageurl",
	SortOrder: "sortorder",
	IsActive:  "isactive",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentSliderTable) Columns() []string {
	return []string{t.ID, t.Title, t.Subtitle, t.ImageURL, t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt}
}
