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
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/avl"
)

// Highlight marks nodes for the renderer. Path and Match hold formatted
// keys. With Delete set they are drawn in the delete color.
type Highlight struct {
	Path   []string
	Match  string
	Delete bool
}

func (h Highlight) cacheKey() string {
	return fmt.Sprintf("%s|%s|%t", strings.Join(h.Path, ","), h.Match, h.Delete)
}

func (h Highlight) onPath(label string) bool {
	for _, p := range h.Path {
		if p == label {
			return true
		}
	}
	return false
}

// cellGap is the number of blank columns between neighbouring nodes
const cellGap = 1

type placedNode struct {
	key     string
	label   string
	depth   int
	col     int // first column of the label
	center  int
	leftAt  int // center of the left child, -1 when absent
	rightAt int
}

// layoutTree gives each node its own columns in in-order position, so a
// node is always right of its whole left subtree and left of its right one.
func layoutTree[K any](root *avl.Node[K], format func(K) string, showBalance bool) ([]*placedNode, int) {
	var nodes []*placedNode
	cursor := 0
	maxDepth := -1

	var place func(n *avl.Node[K], depth int) int
	place = func(n *avl.Node[K], depth int) int {
		if n == nil {
			return -1
		}
		leftAt := place(n.Left(), depth+1)

		key := format(n.Key())
		label := " " + key + " "
		if showBalance {
			label = fmt.Sprintf(" %s %+d ", key, n.Balance())
		}
		width := lipgloss.Width(label)
		p := &placedNode{
			key:    key,
			label:  label,
			depth:  depth,
			col:    cursor,
			center: cursor + width/2,
			leftAt: leftAt,
		}
		nodes = append(nodes, p)
		cursor += width + cellGap
		if depth > maxDepth {
			maxDepth = depth
		}

		p.rightAt = place(n.Right(), depth+1)
		return p.center
	}
	place(root, 0)

	return nodes, maxDepth
}

// renderTree draws the tree top-down, one row of nodes per level with a row
// of edges between levels. Nodes are colored by depth.
func renderTree[K any](root *avl.Node[K], format func(K) string, h Highlight, palette *Palette, showBalance bool) string {
	if root == nil {
		return lipgloss.NewStyle().Foreground(palette.TextMuted).Render("(empty tree)")
	}

	nodes, maxDepth := layoutTree(root, format, showBalance)
	levels := make([][]*placedNode, maxDepth+1)
	for _, n := range nodes {
		levels[n.depth] = append(levels[n.depth], n)
	}

	edgeStyle := lipgloss.NewStyle().Foreground(palette.Edge)
	var out strings.Builder
	for depth, level := range levels {
		out.WriteString(renderLevel(level, depth, h, palette))
		out.WriteString("\n")
		if depth < maxDepth {
			out.WriteString(edgeStyle.Render(renderEdges(level)))
			out.WriteString("\n")
		}
	}
	return strings.TrimRight(out.String(), "\n")
}

func nodeStyle(n *placedNode, depth int, h Highlight, palette *Palette) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(palette.NodeText).
		Background(palette.LevelColor(depth)).
		Bold(true)

	switch {
	case h.Delete && (n.key == h.Match || h.onPath(n.key)):
		return style.Background(palette.Target)
	case n.key == h.Match:
		return style.Background(palette.Found).Underline(true)
	case h.onPath(n.key):
		return style.Background(palette.Path)
	}
	return style
}

func renderLevel(level []*placedNode, depth int, h Highlight, palette *Palette) string {
	var sb strings.Builder
	col := 0
	for _, n := range level {
		sb.WriteString(strings.Repeat(" ", n.col-col))
		sb.WriteString(nodeStyle(n, depth, h, palette).Render(n.label))
		col = n.col + lipgloss.Width(n.label)
	}
	return sb.String()
}

type edgeMark struct {
	col int
	r   rune
}

// renderEdges puts a '/' or '\' halfway between each node and its children.
func renderEdges(level []*placedNode) string {
	var marks []edgeMark
	for _, n := range level {
		if n.leftAt >= 0 {
			marks = append(marks, edgeMark{col: (n.leftAt + n.center) / 2, r: '/'})
		}
		if n.rightAt >= 0 {
			marks = append(marks, edgeMark{col: (n.center + n.rightAt + 1) / 2, r: '\\'})
		}
	}
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].col < marks[j].col })

	var sb strings.Builder
	col := 0
	for _, m := range marks {
		if m.col < col {
			m.col = col
		}
		sb.WriteString(strings.Repeat(" ", m.col-col))
		sb.WriteRune(m.r)
		col = m.col + 1
	}
	return sb.String()
}
