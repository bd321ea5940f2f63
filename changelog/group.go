package changelog

// Group partitions log lines into per-version releases. Lines arrive newest
// first, as git log emits them, and are walked in reverse so buckets fill in
// chronological order. Each version tag seals the bucket being filled;
// whatever remains at the end is sealed unconditionally under
// UnreleasedLabel, even when empty, so the sequence is always well formed.
func Group(lines []string) []*Release {
	var releases []*Release
	b := newBuilder()
	for i := len(lines) - 1; i >= 0; i-- {
		c, ok := ParseLine(lines[i])
		if !ok {
			continue
		}
		// the last date recorded before sealing wins
		if c.Date != "" {
			b.date = c.Date
		}
		if c.Scoped() {
			b.add(c.Scope, c.Subject)
		}
		if c.Refs != "" {
			if tag, ok := ReleaseTag(c.Refs); ok {
				releases = append(releases, b.seal(tag))
			}
		}
	}
	return append(releases, b.seal(UnreleasedLabel))
}
