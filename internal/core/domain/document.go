package domain

// Document is a single catalog record. Records are immutable after append;
// only a whole-list sort reorders them. Path points at the transient local
// spool file and is stale once the upload completes.
type Document struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Path       string `json:"path"`
	StorageKey string `json:"storage_key"`
	Size       int64  `json:"size"`
	UploadTime string `json:"upload_time"`
}

// SearchMatch pairs a matched record with its highlighted content. The base
// record keeps its shape; the derived field lives here instead of being
// patched onto the record.
type SearchMatch struct {
	Document    Document `json:"document"`
	Highlighted string   `json:"highlighted"`
}

// ClassifiedDocument pairs a record with its predicted category.
type ClassifiedDocument struct {
	Document Document `json:"document"`
	Category string   `json:"category"`
}
