// Package runner manages command-line execution
package runner

import (
	"context"
	"io/ioutil"

	"github.com/jeffrom/chlog/changelog"
	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/vcs"
)

// OutputPath is where the rendered document is written, relative to the
// working directory. Prior contents are overwritten.
const OutputPath = "CHANGELOG.md"

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}
}

// Run reads history and the remote URL, renders the changelog, and writes
// it to OutputPath. With Dryrun set the document goes to stdout instead.
// Both collaborator reads happen before any output, so a failing git
// invocation aborts the run with nothing written.
func (r *Runner) Run(ctx context.Context) error {
	url, err := r.vcs.ReadRemoteURL(ctx, r.cfg.Upstream)
	if err != nil {
		return err
	}
	lines, err := r.vcs.ReadLog(ctx)
	if err != nil {
		return err
	}

	releases := changelog.Group(lines)
	r.cfg.Debugf("%d log lines, %d releases", len(lines), len(releases))
	doc := changelog.Render(releases, url) + "\n"

	if r.cfg.Dryrun {
		r.cfg.Term.Printf("%s", doc)
		return nil
	}
	if err := ioutil.WriteFile(OutputPath, []byte(doc), 0644); err != nil {
		return err
	}
	r.cfg.Printf("wrote %s", OutputPath)
	return nil
}
