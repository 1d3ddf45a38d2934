// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.astrophena.name/pig/cli"
	"go.astrophena.name/pig/cli/clitest"
	"go.astrophena.name/pig/piglatin"
	"go.astrophena.name/pig/request"
	"go.astrophena.name/pig/testutil"
	"go.astrophena.name/pig/web"
)

const (
	helloPig  = "Ietquay igspay eathay appleshay.\nEthay ICKQUAY ownbray oxfay!\n"
	secondPig = "Arenhay'tay ouyay oneday etyay?\n"
)

func TestPig(t *testing.T) {
	clitest.Run(t, func(t *testing.T) *app { return new(app) }, map[string]clitest.Case[*app]{
		"stdin": {
			Stdin:      strings.NewReader("Hello world!\n"),
			WantStdout: "Ellohay orldway!\n",
		},
		"no trailing newline is added": {
			Stdin:      strings.NewReader("Early-Adopters are ecstatic?"),
			WantStdout: "Earlyhay-Adoptershay arehay ecstatichay?",
		},
		"stream": {
			Args:       []string{"-stream"},
			Stdin:      strings.NewReader("Hello world!\nquaint query\n"),
			WantStdout: "Ellohay orldway!\naintquay eryquay\n",
		},
		"empty input": {
			WantNothingPrinted: true,
		},
		"files in order": {
			Args:       []string{"testdata/hello.txt", "testdata/second.txt"},
			WantStdout: helloPig + secondPig,
		},
		"dash is stdin": {
			Args:       []string{"testdata/second.txt", "-"},
			Stdin:      strings.NewReader("pig"),
			WantStdout: secondPig + "igpay",
		},
		"stream files without cache": {
			Args:       []string{"-stream", "-cache", "-1", "testdata/hello.txt"},
			WantStdout: helloPig,
		},
		"missing file": {
			Args:    []string{"testdata/missing.txt"},
			WantErr: fs.ErrNotExist,
		},
		"debug logging": {
			Args:         []string{"-v", "testdata/second.txt"},
			WantStdout:   secondPig,
			WantInStderr: "translated input",
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
	})
}

func TestRemote(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/translate", web.HandleJSON(func(r *http.Request, req translateRequest) (translateResponse, error) {
		if req.Text == "" {
			return translateResponse{}, fmt.Errorf("%w: nothing to translate", web.ErrBadRequest)
		}
		return translateResponse{Translation: piglatin.Translate(req.Text)}, nil
	}))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	clitest.Run(t, func(t *testing.T) *app { return new(app) }, map[string]clitest.Case[*app]{
		"translates remotely": {
			Args:       []string{"-remote", srv.URL + "/", "testdata/hello.txt"},
			WantStdout: helloPig,
		},
		"server error": {
			Args:        []string{"-remote", srv.URL},
			WantErrType: &request.StatusError{},
		},
		"stream is not supported": {
			Args:    []string{"-remote", srv.URL, "-stream"},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestStreamMatchesWholeInput(t *testing.T) {
	const input = "The\tquick, brown fox\n\njumps over\r\nthe lazy dog's Übermut.\n"
	for _, stream := range []bool{false, true} {
		var out strings.Builder
		env := &cli.Env{
			Args:   []string{},
			Getenv: func(string) string { return "" },
			Stdin:  strings.NewReader(input),
			Stdout: &out,
			Stderr: &strings.Builder{},
		}
		a := &app{stream: stream}
		if err := a.Run(cli.WithEnv(t.Context(), env)); err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, out.String(), "Ethay\tickquay, ownbray oxfay\n\numpsjay overhay\r\nethay azylay ogday'say Ermutübay.\n")
	}
}
