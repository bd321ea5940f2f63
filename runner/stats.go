package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/chlog/changelog"
)

type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

var titleCaser = cases.Title(language.Und)

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits\n\n", s.Commits))

	buckets := s.sortedBuckets()
	for _, name := range buckets {
		counts := s.Counts[name]
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", titleCaser.String(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats counts parsed commits by scope keyword and by the changelog section
// they would land in. Scopes outside the recognized set count toward the
// "skipped" section.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
	lines, err := r.vcs.ReadLog(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Counts: make(map[string][]*statCount),
	}
	for _, line := range lines {
		c, ok := changelog.ParseLine(line)
		if !ok {
			continue
		}
		stats.Commits++
		stats.Add("scope", c.Scope, 1)

		section := "skipped"
		if c.Scope != "" {
			if title, ok := changelog.SectionTitle(c.Scope); ok {
				section = title
			}
		}
		stats.Add("section", section, 1)
	}
	return stats, nil
}
