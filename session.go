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
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// ErrInvalidKey is returned for input that cannot become a key. It never
// reaches the tree.
var ErrInvalidKey = errors.New("invalid key")

const (
	seenFilterCapacity = 10000
	seenFilterFPRate   = 0.01
)

// Outcome describes what a single user action did to the tree.
type Outcome struct {
	Action     string
	Key        string
	Changed    bool     // a node was added or removed
	Found      bool     // search hit
	SeenBefore bool     // key was inserted earlier in this session
	Path       []string // keys visited, root first
	Steps      []string
}

// Message is the one-line status shown after an action.
func (o Outcome) Message() string {
	switch o.Action {
	case "insert":
		if o.Changed {
			return fmt.Sprintf("Inserted %s", o.Key)
		}
		return fmt.Sprintf("%s is already in the tree", o.Key)
	case "delete":
		if o.Changed {
			return fmt.Sprintf("Deleted %s", o.Key)
		}
		if o.SeenBefore {
			return fmt.Sprintf("%s not found (it may have been deleted earlier)", o.Key)
		}
		return fmt.Sprintf("%s not found", o.Key)
	case "search":
		if o.Found {
			return fmt.Sprintf("Found %s after visiting %d node(s)", o.Key, len(o.Path))
		}
		if o.SeenBefore {
			return fmt.Sprintf("%s not found (it may have been deleted earlier)", o.Key)
		}
		return fmt.Sprintf("%s not found in the tree", o.Key)
	}
	return o.Action
}

// Stats summarises the current tree.
type Stats struct {
	Count  int
	Height int
	Root   string
	Min    string
	Max    string
}

// Workspace is what the CLI and the TUI drive. It takes raw user input so
// callers never deal with the key type.
type Workspace interface {
	Mode() string
	Insert(raw string) (Outcome, error)
	Delete(raw string) (Outcome, error)
	Search(raw string) (Outcome, error)
	Ordered() []string
	OrderedList() string
	Render(h Highlight) string
	Print(w io.Writer, detail bool)
	Stats() Stats
	Check() error
	Reset()
	Version() uint64
}

// Session owns one tree for the lifetime of a command or TUI run.
type Session[K cmp.Ordered] struct {
	mode        string
	tree        *avl.Tree[K]
	parse       func(string) (K, error)
	format      func(K) string
	seen        *bloom.BloomFilter
	steps       []avl.Step[K]
	version     uint64
	frames      *cache.Cache
	showBalance bool
}

// NewWorkspace creates a session for the given key mode. frames may be nil
// to render without caching.
func NewWorkspace(mode string, frames *cache.Cache, showBalance bool) (Workspace, error) {
	switch mode {
	case KeyModeNumber:
		return newSession(mode, parseNumberKey, strconv.Itoa, frames, showBalance), nil
	case KeyModeString:
		return newSession(mode, parseStringKey, func(s string) string { return s }, frames, showBalance), nil
	}
	return nil, fmt.Errorf("unknown key mode %q (want %q or %q)", mode, KeyModeNumber, KeyModeString)
}

func newSession[K cmp.Ordered](mode string, parse func(string) (K, error), format func(K) string, frames *cache.Cache, showBalance bool) *Session[K] {
	s := &Session[K]{
		mode:        mode,
		tree:        avl.NewOrdered[K](),
		parse:       parse,
		format:      format,
		seen:        bloom.NewWithEstimates(seenFilterCapacity, seenFilterFPRate),
		frames:      frames,
		showBalance: showBalance,
	}
	s.tree.SetTracer(func(step avl.Step[K]) {
		s.steps = append(s.steps, step)
	})
	return s
}

func parseNumberKey(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidKey, raw)
	}
	return v, nil
}

func parseStringKey(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	return v, nil
}

func (s *Session[K]) Mode() string {
	return s.mode
}

func (s *Session[K]) Version() uint64 {
	return s.version
}

// begin parses raw and clears the step log for the next operation.
func (s *Session[K]) begin(raw string) (K, error) {
	key, err := s.parse(raw)
	if err != nil {
		return key, err
	}
	s.steps = s.steps[:0]
	return key, nil
}

func (s *Session[K]) Insert(raw string) (Outcome, error) {
	key, err := s.begin(raw)
	if err != nil {
		return Outcome{}, err
	}
	_, inserted := s.tree.Insert(key)
	label := s.format(key)
	if inserted {
		s.seen.AddString(label)
		s.version++
	}
	return Outcome{Action: "insert", Key: label, Changed: inserted, Steps: s.stepLog()}, nil
}

func (s *Session[K]) Delete(raw string) (Outcome, error) {
	key, err := s.begin(raw)
	if err != nil {
		return Outcome{}, err
	}
	label := s.format(key)
	removed := s.tree.Delete(key)
	if removed {
		s.version++
	}
	return Outcome{
		Action:     "delete",
		Key:        label,
		Changed:    removed,
		SeenBefore: !removed && s.seen.TestString(label),
		Steps:      s.stepLog(),
	}, nil
}

func (s *Session[K]) Search(raw string) (Outcome, error) {
	key, err := s.begin(raw)
	if err != nil {
		return Outcome{}, err
	}
	label := s.format(key)
	path, found := s.tree.SearchPath(key)

	keys := make([]string, 0, len(path))
	for _, n := range path {
		keys = append(keys, s.format(n.Key()))
	}
	return Outcome{
		Action:     "search",
		Key:        label,
		Found:      found != nil,
		SeenBefore: found == nil && s.seen.TestString(label),
		Path:       keys,
		Steps:      s.stepLog(),
	}, nil
}

func (s *Session[K]) stepLog() []string {
	out := make([]string, 0, len(s.steps))
	for _, step := range s.steps {
		out = append(out, step.String())
	}
	return out
}

func (s *Session[K]) Ordered() []string {
	out := make([]string, 0, s.tree.Len())
	s.tree.InOrder(func(n *avl.Node[K]) {
		out = append(out, s.format(n.Key()))
	})
	return out
}

// OrderedList formats the in-order keys the way the popup shows them.
func (s *Session[K]) OrderedList() string {
	return "Ordered list: [" + strings.Join(s.Ordered(), ", ") + "]"
}

func (s *Session[K]) Render(h Highlight) string {
	if s.frames == nil {
		return renderTree(s.tree.Root(), s.format, h, GetPalette(), s.showBalance)
	}
	key := fmt.Sprintf("%s|%d|%t|%s", s.mode, s.version, s.showBalance, h.cacheKey())
	if frame, ok := GetFrame(s.frames, key); ok {
		return frame
	}
	frame := renderTree(s.tree.Root(), s.format, h, GetPalette(), s.showBalance)
	CacheFrame(s.frames, key, frame)
	return frame
}

func (s *Session[K]) Print(w io.Writer, detail bool) {
	s.tree.Print(w, detail)
}

func (s *Session[K]) Stats() Stats {
	st := Stats{Count: s.tree.Len(), Height: s.tree.Height()}
	if root := s.tree.Root(); root != nil {
		st.Root = s.format(root.Key())
	}
	if k, ok := s.tree.Min(); ok {
		st.Min = s.format(k)
	}
	if k, ok := s.tree.Max(); ok {
		st.Max = s.format(k)
	}
	return st
}

func (s *Session[K]) Check() error {
	return s.tree.Check()
}

// Reset empties the tree. The seen filter is kept since it covers the
// whole session.
func (s *Session[K]) Reset() {
	s.tree.Clear()
	s.steps = s.steps[:0]
	s.version++
}
