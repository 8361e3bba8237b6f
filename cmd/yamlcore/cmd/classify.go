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

	"github.com/spf13/cobra"

	"cuelang.org/yamlcore/node"
	"cuelang.org/yamlcore/resolve"
)

func newClassifyCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [--style style] text...",
		Short: "show how scalar text is typed by the core schema",
		Long: `classify prints, for each argument, the rule of the core schema
that the text matches when written as a scalar of the given style:
one of decimal, octal, hex, float, +inf, -inf, nan, null, true, false
or text.

Only plain scalars are typed; every other style is text.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: mkRunE(c, runClassify),
	}
	cmd.Flags().String(string(flagStyle), node.PlainStyle.String(), "scalar style: plain, single, double, literal or folded")
	return cmd
}

func runClassify(cmd *Command, args []string) error {
	style, err := node.ParseStyle(flagStyle.String(cmd))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, text := range args {
		class := resolve.Classify(text, style)
		cmd.logger.Debug("classified", "text", text, "style", style, "class", class)
		fmt.Fprintf(w, "%s\t%s\n", text, class)
	}
	return nil
}
