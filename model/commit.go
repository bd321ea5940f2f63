// Package model contains abstract data models.
package model

// Commit is one parsed line of git log output. Fields that didn't match the
// line grammar are left empty.
type Commit struct {
	Date    string `json:"date,omitempty"`
	Refs    string `json:"refs,omitempty"`
	Scope   string `json:"scope,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// Scoped reports whether the commit carries both a scope prefix and subject
// text, ie whether it can contribute a changelog entry.
func (c *Commit) Scoped() bool {
	return c.Scope != "" && c.Subject != ""
}
