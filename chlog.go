// Package chlog derives CHANGELOG.md from git history by grouping
// conventional-commit subjects under the release tags that contain them.
//
// Related packages: config, changelog, runner, model, vcs, vcs/gitcli
package chlog

import "github.com/jeffrom/chlog/config"

// Config holds most of the configuration variables for chlog. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/jeffrom/chlog/config Config" for more information.
type Config = config.Config
