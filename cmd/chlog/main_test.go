package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jeffrom/chlog/vcs/gitcli"
)

type testOperation struct {
	Commit string
	Tag    string
}

type chlogTestCase struct {
	name      string
	remoteURL string
	ops       []testOperation
	expect    func(url, date string) string
}

func TestChlog(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	tcs := []chlogTestCase{
		{
			name:      "basic",
			remoteURL: "https://example.com/org/repo.git",
			ops: []testOperation{
				{Commit: "initial commit"},
				{Commit: "feat: add login button"},
				{Tag: "v1.0.0"},
				{Commit: "fix: handle empty subjects"},
				{Tag: "v1.1.0"},
				{Commit: "feat: add export"},
			},
			expect: func(url, date string) string {
				return fmt.Sprintf(`# Changelog

## [Unreleased](%[1]s/compare/v1.1.0...unreleased) - %[2]s

### Added

* Add export

## [v1.1.0](%[1]s/compare/v1.0.0...v1.1.0) - %[2]s

### Fixed

* Handle empty subjects

## [v1.0.0](%[1]s/releases/tag/v1.0.0) - %[2]s

### Added

* Add login button
`, url, date)
			},
		},
		{
			name:      "seeded-first-release",
			remoteURL: "https://example.com/org/repo.git",
			ops: []testOperation{
				{Commit: "initial commit"},
				{Tag: "v1.0.0"},
			},
			expect: func(url, date string) string {
				return fmt.Sprintf(`# Changelog

## [v1.0.0](%[1]s/releases/tag/v1.0.0) - %[2]s

### Added

* Initial release
`, url, date)
			},
		},
	}

	currDir, err := os.Getwd()
	die(err)

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			defer os.Chdir(currDir)
			tmpDir, err := ioutil.TempDir("", fmt.Sprintf("chlog-%s", tc.name))
			die(err)
			defer func() {
				if t.Failed() {
					t.Logf("Test failed. Leaving temp dir: %s", tmpDir)
					return
				}
				t.Logf("Removing temp dir: %s", tmpDir)
				os.RemoveAll(tmpDir)
			}()

			die(os.Chdir(tmpDir))

			call(ctx, t, "git", "init")
			call(ctx, t, "git", "config", "--local", "user.email", "chlog-test@example.com")
			call(ctx, t, "git", "config", "--local", "user.name", "chlog-test")
			call(ctx, t, "git", "remote", "add", "origin", tc.remoteURL)

			runOps(ctx, t, tc.ops)
			callChlog(t)

			b, err := ioutil.ReadFile(filepath.Join(tmpDir, "CHANGELOG.md"))
			die(err)

			url := strings.TrimSuffix(tc.remoteURL, ".git")
			date := time.Now().Format("2006-01-02")
			expect := tc.expect(url, date)
			if string(b) != expect {
				t.Fatalf("changelog didn't match.\n\nexpected:\n\n%s\n\ngot:\n\n%s", expect, string(b))
			}
		})
	}
}

func runOps(ctx context.Context, t *testing.T, ops []testOperation) {
	t.Helper()
	for _, op := range ops {
		if op.Commit != "" {
			call(ctx, t, "git", "commit", "--allow-empty", "-am", op.Commit)
		}
		if op.Tag != "" {
			call(ctx, t, "git", "tag", "-a", op.Tag, "-m", op.Tag)
		}
	}
}

func call(ctx context.Context, t *testing.T, arg string, args ...string) {
	t.Helper()
	t.Logf("+ %s %s", arg, gitcli.ArgsString(args))
	cmd := exec.CommandContext(ctx, arg, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if arg == "git" {
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=chlog-test",
			"GIT_AUTHOR_EMAIL=chlog-test@example.com",
			"GIT_COMMITTER_NAME=chlog-test",
			"GIT_COMMITTER_EMAIL=chlog-test@example.com",
		)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
}

func callChlog(t *testing.T, args ...string) {
	t.Helper()
	t.Logf("chlog(%s)", gitcli.ArgsString(args))
	if err := run(append([]string{"chlog"}, args...)); err != nil {
		t.Fatal(err)
	}
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}
