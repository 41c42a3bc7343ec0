package service

// NewItem is the add_item payload before validation.
type NewItem struct {
	Title  string
	Tags   []string
	Images []string // at least 3; extras are ignored
	Link   string
}

// CatalogQuery selects a catalog page. Zero Page or Limit means "use default".
type CatalogQuery struct {
	Page  int
	Limit int
	Tag   string // exact, case-sensitive; "" means no filter
}

// CatalogEntry is a catalog item as presented to clients.
type CatalogEntry struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Images []string `json:"images"`
	Link   string   `json:"link"`
}

// CatalogPage is the listing response.
type CatalogPage struct {
	Items      []CatalogEntry `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
	AllTags    []string       `json:"allTags"`
}

// AuthResult is returned on successful authentication.
type AuthResult struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"session_token"`
}
