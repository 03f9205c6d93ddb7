package types

// SiteContent is one editable block of the public site, addressed by
// (section, key), e.g. ("homepage", "homepage_hero_video"). Uploaded
// assets are referenced by pointer fields; replacing an asset writes a
// new file and repoints the record.
type SiteContent struct {
	ID        string `json:"id"`
	Section   string `json:"section"`
	Key       string `json:"key"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

type ContentUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CSVImport records one weekly sales-data import.
type CSVImport struct {
	ImportID      string `json:"import_id"`
	Filename      string `json:"filename"`
	WeekOf        string `json:"week_of"`
	ProcessedRows int    `json:"processed_items"`
	AnalyzedRows  int    `json:"analyzed_items"`
	CreatedAt     string `json:"created_at"`
}

// SalesRecord is one row of an imported weekly sales CSV.
type SalesRecord struct {
	ImportID string  `json:"import_id"`
	ItemName string  `json:"item_name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
