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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

// splitScriptLine splits one script line into words. Quotes keep string
// keys with spaces together.
func splitScriptLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %v", line, err)
	}
	return args, nil
}

// RunScript executes a script against ws, one command per line, and writes
// the outcome of each command to out. Blank lines and lines starting with
// '#' are skipped. It stops at the first bad line.
//
//	insert 5 3 8     add keys
//	delete 3         remove keys
//	search 4         look a key up
//	inorder          print the ordered list
//	print            draw the tree
//	stats | check | reset
func RunScript(ws Workspace, r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args, err := splitScriptLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			continue
		}

		if err := runScriptCommand(ws, strings.ToLower(args[0]), args[1:], out); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func runScriptCommand(ws Workspace, name string, keys []string, out io.Writer) error {
	var action func(string) (Outcome, error)
	switch name {
	case "insert", "add":
		action = ws.Insert
	case "delete", "del", "remove":
		action = ws.Delete
	case "search", "find":
		action = ws.Search
	case "inorder", "list", "sort":
		fmt.Fprintln(out, ws.OrderedList())
		return nil
	case "print", "show":
		ws.Print(out, true)
		return nil
	case "stats":
		st := ws.Stats()
		fmt.Fprintf(out, "count=%d height=%d root=%s min=%s max=%s\n", st.Count, st.Height, st.Root, st.Min, st.Max)
		return nil
	case "check":
		if err := ws.Check(); err != nil {
			return err
		}
		fmt.Fprintln(out, "ok")
		return nil
	case "reset", "clear":
		ws.Reset()
		fmt.Fprintln(out, "Tree cleared")
		return nil
	default:
		return fmt.Errorf("unknown command %q", name)
	}

	if len(keys) == 0 {
		return fmt.Errorf("%s needs at least one key", name)
	}
	for _, key := range keys {
		outcome, err := action(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, outcome.Message())
	}
	return nil
}
