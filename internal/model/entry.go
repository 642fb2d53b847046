package model

// CatalogEntry is one translatable unit of a catalog
type CatalogEntry struct {
	Context    string `json:"context,omitempty"`    // msgctxt, if any
	Original   string `json:"original"`             // msgid
	Translated string `json:"translated,omitempty"` // msgstr
}

// IsTranslated reports whether the entry carries a non-empty translation
func (e CatalogEntry) IsTranslated() bool {
	return e.Translated != ""
}

// Side tells which half of an entry a candidate string came from
type Side string

const (
	SideSource      Side = "source"      // Original text (msgid)
	SideTranslation Side = "translation" // Translated text (msgstr)
)

// Candidate is a single string queued for checking
type Candidate struct {
	Text  string `json:"text"`
	Side  Side   `json:"side"`
	Index int    `json:"index"` // Entry position in catalog order (0-based)
}
