package schema

// ContentGalleryCategoryTable represents the 'content.gallerycategory' table
type ContentGalleryCategoryTable struct {
	Table     string
	ID        string
	Title     string
	Slug      string
	MainImage string
	IsActive  string
	CreatedAt string
	UpdatedAt string
}

// ContentGalleryCategory is the schema definition for content.gallerycategory
var ContentGalleryCategory = ContentGalleryCategoryTable{
	Table:     "content.gallerycategory",
	ID:        "id",
	Title:     "title",
	Slug:      "slug",
	MainImage: "mainimage",
	IsActive:  "isactive",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ContentGalleryCategoryTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.MainImage, t.IsActive, t.CreatedAt, t.UpdatedAt}
}

// ContentGalleryItemTable represents the 'content.galleryitem' table
type ContentGalleryItemTable struct {
	Table             string
	ID                string
	Title             string
	Description       string
	MainImage         string
	ImageList         string
	GalleryCategoryID string
	IsActive          string
	CreatedAt         string
	UpdatedAt         string
}

// ContentGalleryItem is the schema definition for content.galleryitem
var ContentGalleryItem = ContentGalleryItemTable{
	Table:             "content.galleryitem",
	ID:                "id",
	Title:             "title",
	Description:       "description",
	MainImage:         "mainimage",
	ImageList:         "imagelist",
	GalleryCategoryID: "gallerycategoryid",
	IsActive:          "isactive",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

// Columns returns all standard column names
func (t ContentGalleryItemTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.MainImage, t.ImageList, t.GalleryCategoryID,
		t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}
