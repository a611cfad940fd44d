package schema

// ContentContactTable represents the 'content.contact' table
type ContentContactTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IsRead    string
	CreatedAt string
}

// ContentContact is the schema definition for content.contact
var ContentContact = ContentContactTable{
	Table:     "content.contact",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Subject:   "subject",
	Message:   "message",
	IsRead:    "isread",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t ContentContactTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Phone, t.Subject, t.Message, t.IsRead, t.CreatedAt}
}
