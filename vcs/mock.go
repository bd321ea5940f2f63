package vcs

import (
	"context"
	"strings"
)

type Mock struct {
	log []string
	url string
}

func NewMock() *Mock {
	return &Mock{url: "https://example.com/org/repo"}
}

func (m *Mock) SetLog(lines ...string) *Mock {
	m.log = lines
	return m
}

func (m *Mock) SetRemoteURL(url string) *Mock {
	m.url = url
	return m
}

func (m *Mock) ReadLog(ctx context.Context) ([]string, error) {
	return m.log, nil
}

func (m *Mock) ReadRemoteURL(ctx context.Context, upstream string) (string, error) {
	return strings.TrimSuffix(strings.TrimSpace(m.url), ".git"), nil
}
