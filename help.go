// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/avlsort/sorting"
)

func getHelpMessage() string {
	algorithms := strings.Join(sorting.NewRegistry().Names(), ", ")

	message := fmt.Sprintf(`

 **avlsort %s**

A self-balancing AVL tree and a handful of classic sorting algorithms, driven from the shell.

Built with Go %s

# 1. Commands
* **tree** - insert values into an AVL tree, optionally delete some, print the in-order traversal
* **sort** - sort integers with a chosen algorithm (%s)
* **repl** - interactive session over a single tree
* **bench** - time every algorithm on random inputs and verify the output
* **settings** - show the effective configuration

# 2. Input
Values are integers separated by spaces or commas. With *--file*, lines starting with '#' are ignored; use '-' to read from stdin.

Flags go before the values. A leading negative value must follow '--', as in *avlsort sort -- -3 5*.

# 3. Configuration
Settings live in ~/%s (override with *--config*).

# Please be aware
* Copy to clipboard (*--copy*) on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), algorithms, configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
