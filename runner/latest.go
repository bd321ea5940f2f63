package runner

import (
	"context"
	"errors"

	"github.com/blang/semver/v4"

	"github.com/jeffrom/chlog/changelog"
)

var ErrNoTags = errors.New("runner: no release tags found")

// LatestRelease returns the newest released version label in semver order.
// Labels that don't parse as versions are skipped, the same way invalid
// tags are skipped when scanning history.
func (r *Runner) LatestRelease(ctx context.Context) (string, error) {
	lines, err := r.vcs.ReadLog(ctx)
	if err != nil {
		return "", err
	}

	var latest string
	var latestVer semver.Version
	for _, rel := range changelog.Group(lines) {
		if rel.Version == changelog.UnreleasedLabel {
			continue
		}
		v, err := semver.ParseTolerant(rel.Version)
		if err != nil {
			continue
		}
		if latest == "" || v.GT(latestVer) {
			latest, latestVer = rel.Version, v
		}
	}
	if latest == "" {
		return "", ErrNoTags
	}
	return latest, nil
}
