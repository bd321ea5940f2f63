package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/runner"
	"github.com/jeffrom/chlog/vcs/gitcli"
)

// Version is overridden by go build -X
var Version string

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var readStats bool
	var printConfig bool
	var printLatest bool
	flags := pflag.NewFlagSet("chlog", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVarP(&cfg.Dryrun, "dry-run", "n", false, "print the changelog instead of writing it")
	flags.BoolVarP(&readStats, "stats", "S", false, "print commit scope stats and exit")
	flags.BoolVar(&printLatest, "latest", false, "print latest released version and exit")
	flags.StringVar(&cfg.Upstream, "upstream", "origin", "read the repository url from `remote`")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print effective configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	chlogYAML, err := readChlogYAML(cfgFile)
	if err != nil {
		return err
	}
	if chlogYAML != nil {
		if err := mergo.Merge(&cfg, chlogYAML, mergo.WithOverride); err != nil {
			return err
		}
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}
	// done setting up config

	git := gitcli.New(cfg, "")
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if readStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	if printLatest {
		latest, err := rnr.LatestRelease(ctx)
		if err != nil {
			return err
		}
		istty := isatty.IsTerminal(os.Stdout.Fd())
		if cfg.Quiet || !istty {
			fmt.Fprintf(cfg.Term.Stdout, "%s", latest)
		} else {
			fmt.Fprintln(cfg.Term.Stdout, latest)
		}
		return nil
	}

	return rnr.Run(ctx)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s

Generate CHANGELOG.md from conventional commits and release tags.

FLAGS
%s

EXAMPLES

# write CHANGELOG.md for the repository in the current directory
$ chlog

# preview without writing the file
$ chlog -n

# print the latest released version
$ chlog --latest

# summarize commit scopes
$ chlog -S
`, os.Args[0], flags.FlagUsages())
}

func readChlogYAML(p string) (*config.Config, error) {
	if p != "" {
		b, err := ioutil.ReadFile(p)
		if err != nil {
			return nil, err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		candPath := filepath.Join(wd, "chlog.yaml")
		b, err := ioutil.ReadFile(candPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				wd, _ = filepath.Split(filepath.Clean(wd))
				if wd == "/" {
					break
				}
				continue
			}
			return nil, err
		}

		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return nil, nil
}
