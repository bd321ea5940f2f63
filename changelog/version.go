package changelog

import (
	"github.com/blang/semver/v4"
)

// UnreleasedLabel is the sentinel version label for commits after the most
// recent release tag. It renders as "Unreleased" but appears verbatim in
// comparison links.
const UnreleasedLabel = "unreleased"

// sections maps recognized scope keywords to their visible section titles,
// in rendering order.
var sections = []struct {
	scope string
	title string
}{
	{"feat", "Added"},
	{"refactor", "Changed"},
	{"fix", "Fixed"},
}

// SectionTitle returns the visible changelog section for a scope keyword.
func SectionTitle(scope string) (string, bool) {
	for _, sec := range sections {
		if sec.scope == scope {
			return sec.title, true
		}
	}
	return "", false
}

// Release is one sealed changelog bucket: a released version, or the
// unreleased head. Once sealed its contents never change.
type Release struct {
	Version string
	Date    string
	entries map[string][]string
}

// Entries returns the accumulated messages for a scope, oldest first.
func (r *Release) Entries(scope string) []string { return r.entries[scope] }

// Empty reports whether the release holds no entries under any recognized
// scope. Empty releases are invisible in output.
func (r *Release) Empty() bool {
	for _, sec := range sections {
		if len(r.entries[sec.scope]) > 0 {
			return false
		}
	}
	return true
}

// builder accumulates entries for the bucket currently being filled. Sealing
// hands its state to an immutable Release and resets it.
type builder struct {
	date    string
	entries map[string][]string
}

func newBuilder() *builder {
	return &builder{entries: make(map[string][]string)}
}

func (b *builder) add(scope, message string) {
	b.entries[scope] = append(b.entries[scope], message)
}

func (b *builder) empty() bool {
	for _, sec := range sections {
		if len(b.entries[sec.scope]) > 0 {
			return false
		}
	}
	return true
}

// seal closes the accumulating bucket under a version label. The first
// release is seeded with a synthetic entry when it would otherwise be empty,
// so it always has visible content.
func (b *builder) seal(version string) *Release {
	if b.empty() && isFirstRelease(version) {
		b.add("feat", "initial release")
	}
	rel := &Release{Version: version, Date: b.date, entries: b.entries}
	b.entries = make(map[string][]string)
	return rel
}

// isFirstRelease reports whether a tag names the conventional first release,
// covering both the "v1.0.0" and "1.0.0" spellings.
func isFirstRelease(tag string) bool {
	v, err := semver.ParseTolerant(tag)
	if err != nil {
		return false
	}
	return v.Major == 1 && v.Minor == 0 && v.Patch == 0 && len(v.Pre) == 0
}
