// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"
	"strings"

	"github.com/jeffrom/chlog/config"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

// logFormat renders "<committer date> <decorations> <subject>" per commit.
// The empty %d placeholder on undecorated commits leaves two spaces between
// date and subject, which the line grammar relies on.
const logFormat = "--pretty=%cs %d %s"

func (g *Git) ReadLog(ctx context.Context) ([]string, error) {
	b, err := g.call(ctx, []string{"log", logFormat})
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), "\n"), nil
}

func (g *Git) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	if upstream == "" {
		upstream = "origin"
	}
	b, err := g.call(ctx, []string{"remote", "get-url", upstream})
	if err != nil {
		return "", err
	}
	url := strings.TrimSpace(string(b))
	return strings.TrimSuffix(url, ".git"), nil
}
