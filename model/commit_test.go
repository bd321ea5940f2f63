package model

import "testing"

func TestCommitScoped(t *testing.T) {
	cmt := &Commit{Scope: "feat", Subject: "add login button"}
	if !cmt.Scoped() {
		t.Fatal("expected commit to be scoped")
	}

	cmt = &Commit{Subject: "merge branch 'main'"}
	if cmt.Scoped() {
		t.Fatal("expected commit not to be scoped")
	}
}
