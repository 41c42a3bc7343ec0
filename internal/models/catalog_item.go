package models

// ImagesPerItem is the number of image URLs every catalog item carries.
const ImagesPerItem = 3

// CatalogItem is a displayable catalog entry as stored.
type CatalogItem struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Tags         []string `json:"tags"`
	ImageURL1    string   `json:"-"`
	ImageURL2    string   `json:"-"`
	ImageURL3    string   `json:"-"`
	ExternalLink string   `json:"link"`
	Position     int64    `json:"-"`
}

// Images returns the three image URLs in display order.
func (i CatalogItem) Images() []string {
	return []string{i.ImageURL1, i.ImageURL2, i.ImageURL3}
}

// NewCatalogItem is the validated input for inserting an item.
// Position is assigned by the store.
type NewCatalogItem struct {
	Title        string
	Tags         []string
	ImageURLs    [ImagesPerItem]string
	ExternalLink string
}
