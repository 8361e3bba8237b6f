// Copyright 2026 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cuelang.org/yamlcore/construct"
	"cuelang.org/yamlcore/encoding/yaml"
	"cuelang.org/yamlcore/native"
	"cuelang.org/yamlcore/node"
)

func newConstructCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "construct [file...]",
		Short: "construct and print every document of YAML files",
		Long: `construct parses each file and constructs every document in it
with the core schema, printing one line per document.

With no files, or with "-", standard input is read. Files are
processed concurrently but printed in the order given.

By default documents are printed in a compact flow form where strings
are quoted and floats always carry a decimal point. With --json they
are printed as JSON instead; mapping keys must then be scalars and may
not repeat. --exact keeps numbers of any size and precision.
`,
		RunE: mkRunE(c, runConstruct),
	}
	cmd.Flags().Bool(string(flagJSON), false, "print documents as JSON")
	cmd.Flags().Bool(string(flagExact), false, "with --json, print numbers exactly as written")
	return cmd
}

// input is one file to construct and, once processed, its output.
type input struct {
	name string
	data []byte

	lines []string
	err   error
}

func runConstruct(cmd *Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	parser, err := cmd.cfg.parser()
	if err != nil {
		return err
	}
	asJSON := flagJSON.Bool(cmd)
	exact := flagExact.Bool(cmd)
	if exact && !asJSON {
		return fmt.Errorf("--%s requires --%s", flagExact, flagJSON)
	}

	inputs := make([]*input, len(args))
	for i, name := range args {
		in := &input{name: name}
		// Standard input is read up front; it cannot be shared between
		// goroutines.
		if name == "-" {
			in.name = "<stdin>"
			in.data, in.err = io.ReadAll(cmd.InOrStdin())
		}
		inputs[i] = in
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		if in.err != nil {
			continue
		}
		g.Go(func() error {
			if args[i] != "-" {
				in.data, in.err = os.ReadFile(in.name)
				if in.err != nil {
					return nil
				}
			}
			in.lines, in.err = constructFile(cmd, parser, in, asJSON, exact)
			return nil
		})
	}
	_ = g.Wait() // failures are recorded per input

	w := cmd.OutOrStdout()
	for _, in := range inputs {
		for _, line := range in.lines {
			fmt.Fprintln(w, line)
		}
		if in.err != nil {
			return in.err
		}
	}
	return nil
}

// constructFile returns one line per document of in, stopping at the
// first document that fails.
func constructFile(cmd *Command, parser yaml.Parser, in *input, asJSON, exact bool) ([]string, error) {
	var lines []string
	d := yaml.NewDecoder(in.name, in.data, yaml.WithParser(parser))
	for i := 0; ; i++ {
		start := time.Now()
		doc, err := d.Decode()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		var line string
		if asJSON {
			line, err = constructJSON(doc.Root(), exact)
		} else {
			line, err = constructValue(doc.Root())
		}
		if err != nil {
			return lines, err
		}
		cmd.logger.Debug("constructed document",
			"file", in.name,
			"doc", i,
			"parser", parser,
			"elapsed", time.Since(start),
		)
		lines = append(lines, line)
	}
}

func constructValue(n node.Node) (string, error) {
	v, err := construct.Value(n)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func constructJSON(n node.Node, exact bool) (string, error) {
	v, err := construct.Construct[any](native.Builder{Exact: exact}, n)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(jsonValue(v))
	if err != nil {
		return "", fmt.Errorf("%s: %w", n.Pos(), err)
	}
	return string(b), nil
}

// jsonValue replaces exact decimals with JSON numbers of the same text.
func jsonValue(v any) any {
	switch v := v.(type) {
	case *apd.Decimal:
		return json.Number(v.String())
	case []any:
		for i, x := range v {
			v[i] = jsonValue(x)
		}
	case map[string]any:
		for k, x := range v {
			v[k] = jsonValue(x)
		}
	}
	return v
}
