// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/clopts/pkg/clopts"
)

func TestName(t *testing.T) {
	tests := []struct {
		prefix, option, want string
	}{
		{"", "count", "COUNT"},
		{"", "dry-run", "DRY_RUN"},
		{"app_", "log-level", "APP_LOG_LEVEL"},
	}
	for _, tt := range tests {
		if got := Name(tt.prefix, tt.option); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.prefix, tt.option, got, tt.want)
		}
	}
}

func testResult(t *testing.T) *clopts.Result {
	t.Helper()
	name := clopts.MustOption("name", clopts.String)
	token := clopts.MustOption("token", clopts.String)
	reg := clopts.New(
		name,
		token,
		clopts.MustOption("dry-run", clopts.Bool, clopts.WithDefault(false)),
		clopts.MustOption("ports", clopts.IntList, clopts.WithDefault([]int{80, 443})),
	)
	reg.Summary = false
	reg.Output = io.Discard
	if err := reg.AddDependency(name, token); err != nil {
		t.Fatal(err)
	}
	res, err := reg.Parse([]string{"name=Ann Lee"})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "", testResult(t)); err != nil {
		t.Fatal(err)
	}
	want := "NAME='Ann Lee'\nTOKEN=''\nDRY_RUN=false\nPORTS=80,443\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.env")
	if err := os.WriteFile(path, []byte("STALE=1\nSTALE=2\nSTALE=3\nSTALE=4\nSTALE=5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, "x_", testResult(t)); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "X_NAME='Ann Lee'\nX_TOKEN=''\nX_DRY_RUN=false\nX_PORTS=80,443\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}
