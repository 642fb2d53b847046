// Package catalog loads gettext .po catalogs and yields the strings to check.
package catalog

import (
	"fmt"
	"iter"

	"github.com/chai2010/gettext-go/po"
	"github.com/ppiankov/pocheck/internal/model"
)

// Catalog is a parsed translation catalog in file order
type Catalog struct {
	Path    string
	Entries []model.CatalogEntry
}

// Selection chooses which side of each entry is checked
type Selection struct {
	Source      bool
	Translation bool
}

// Load reads and parses the .po file at path
func Load(path string) (*Catalog, error) {
	file, err := po.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load catalog %s: %v", model.ErrInputFormat, path, err)
	}

	c := fromFile(file)
	c.Path = path
	return c, nil
}

// Parse parses .po data held in memory
func Parse(data []byte) (*Catalog, error) {
	file, err := po.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %v", model.ErrInputFormat, err)
	}
	return fromFile(file), nil
}

func fromFile(file *po.File) *Catalog {
	entries := make([]model.CatalogEntry, 0, len(file.Messages))
	for _, msg := range file.Messages {
		// The header entry has an empty msgid and is not translatable
		if msg.MsgId == "" {
			continue
		}
		// Plural entries keep their forms in MsgStrPlural and leave MsgStr
		// empty, so only their msgid is checked
		entries = append(entries, model.CatalogEntry{
			Context:    msg.MsgContext,
			Original:   msg.MsgId,
			Translated: msg.MsgStr,
		})
	}
	return &Catalog{Entries: entries}
}

// Candidates yields the strings to check in catalog order. For each entry the
// original text comes first when sel.Source is set, then the translated text
// when sel.Translation is set and the translation is not empty.
func (c *Catalog) Candidates(sel Selection) iter.Seq[model.Candidate] {
	return Candidates(c.Entries, sel)
}

// Candidates is the iterator behind (*Catalog).Candidates, usable on any entry slice
func Candidates(entries []model.CatalogEntry, sel Selection) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		for i, entry := range entries {
			if sel.Source {
				if !yield(model.Candidate{Text: entry.Original, Side: model.SideSource, Index: i}) {
					return
				}
			}
			if sel.Translation && entry.IsTranslated() {
				if !yield(model.Candidate{Text: entry.Translated, Side: model.SideTranslation, Index: i}) {
					return
				}
			}
		}
	}
}
