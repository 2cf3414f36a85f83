// Package catalog holds the fixed reference list of approved medicines.
package catalog

import (
	"strings"
)

type Medicine struct {
	ID           string
	Name         string
	GenericName  string
	Manufacturer string
	Composition  string
	Dosage       string
	ApprovalDate string
	RegulatoryID string
	Stock        int
}

func (m Medicine) InStock() bool {
	return m.Stock > 0
}

type Catalog struct {
	entries []Medicine
}

func New(entries []Medicine) *Catalog {
	cp := make([]Medicine, len(entries))
	copy(cp, entries)
	return &Catalog{entries: cp}
}

func NewDefault() *Catalog {
	return New(ApprovedMedicines)
}

func (c *Catalog) Entries() []Medicine {
	cp := make([]Medicine, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Lookup returns the first entry, in catalog order, whose name contains query
// case-insensitively. Later matches are never considered.
func (c *Catalog) Lookup(query string) (Medicine, bool) {
	q := strings.ToLower(query)
	for _, m := range c.entries {
		if strings.Contains(strings.ToLower(m.Name), q) {
			return m, true
		}
	}
	return Medicine{}, false
}

// Search filters the catalog for the browse view by name, generic name,
// manufacturer or regulatory id.
func (c *Catalog) Search(query string) []Medicine {
	q := strings.ToLower(query)
	result := make([]Medicine, 0, len(c.entries))
	for _, m := range c.entries {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.GenericName), q) ||
			strings.Contains(strings.ToLower(m.Manufacturer), q) ||
			strings.Contains(strings.ToLower(m.RegulatoryID), q) {
			result = append(result, m)
		}
	}
	return result
}
