// Package vcs abstracts version control systems. Currently just git.
package vcs

import "context"

// Interface covers the two reads the changelog consumes: history lines and
// the remote URL links are built from.
type Interface interface {
	// ReadLog returns one line per commit, newest first, in the form
	// "<date> <decorations> <subject>".
	ReadLog(ctx context.Context) ([]string, error)
	// ReadRemoteURL returns the upstream repository URL with its trailing
	// ".git" suffix and surrounding whitespace stripped.
	ReadRemoteURL(ctx context.Context, upstream string) (string, error)
}
