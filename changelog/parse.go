// Package changelog contains the core line parsing, version grouping, and
// markdown rendering logic.
package changelog

import (
	"regexp"

	"github.com/jeffrom/chlog/model"
)

// lineRE matches one line of "git log --pretty=%cs %d %s" output. The double
// space after the date is what git emits for the empty %d placeholder on
// undecorated commits.
var lineRE = regexp.MustCompile(`(?P<date>\d{4}-\d{2}-\d{2})  (\((?P<refs>.*)\) )?((?P<scope>\w+): )?(?P<subject>.*)`)

// tagRE extracts a release version from inside a refs decoration.
var tagRE = regexp.MustCompile(`tag: (?P<version>[v0-9.]+)`)

// ParseLine matches one raw log line against the line grammar. Fields that
// didn't match are left empty on the result. Lines that don't match at all
// (blanks, trailing split artifacts) return false.
func ParseLine(line string) (*model.Commit, bool) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	c := &model.Commit{}
	for i, name := range lineRE.SubexpNames() {
		switch name {
		case "date":
			c.Date = m[i]
		case "refs":
			c.Refs = m[i]
		case "scope":
			c.Scope = m[i]
		case "subject":
			c.Subject = m[i]
		}
	}
	return c, true
}

// ReleaseTag extracts a version tag from a refs decoration. Decorations
// without one (branch heads, non-release tags) return false; that just means
// no version boundary here.
func ReleaseTag(refs string) (string, bool) {
	m := tagRE.FindStringSubmatch(refs)
	if m == nil {
		return "", false
	}
	return m[tagRE.SubexpIndex("version")], true
}
