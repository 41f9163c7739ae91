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

	markdown "github.com/MichaelMure/go-term-markdown"
)

// keyBindingsMarkdown is shared by `arbor usage` and the TUI help panel.
const keyBindingsMarkdown = `
# Key bindings
* **Enter** - insert the typed key
* **Ctrl+S** - search, highlighting the path from the root
* **Ctrl+D** - delete, highlighting the node before removing it
* **Ctrl+O** - show the ordered list (press **c** to copy it)
* **Ctrl+T** - show or hide the rebalancing steps
* **Ctrl+R** - clear the tree
* **F1** - toggle this help
* **Esc / Ctrl+C** - close a panel, or quit
`

func getUsageMarkdown() string {
	return fmt.Sprintf(`

 **Arbor %s**

Watch an AVL tree balance itself as you insert, search and delete keys.

Built with Go %s

# 1. Commands
* **arbor run** - interactive tree (default)
* **arbor sort 5 3 8** - print the keys in order
* **arbor show 10 20 30 --delete 20 --search 30** - draw the tree
* **arbor script ops.txt** - run insert/delete/search commands from a file
* **arbor stress --count 20000** - random workload with invariant checks
* **arbor settings** - show or create ~/.arbor.yaml
%s
# 2. Keys
* **number** mode (default) accepts integers
* **string** mode compares keys lexicographically
* Inserting an existing key does nothing, deleting a missing key does nothing

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), keyBindingsMarkdown)
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
