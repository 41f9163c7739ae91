// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Copyright 2025 Naren Yellavula
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes a sideways ASCII drawing of the tree to w: the right
// subtree above, the left below. When detail is set each node also shows
// its height and balance factor. It returns the height of the drawing.
func (t *Tree[K]) Print(w io.Writer, detail bool) int {
	return printTree(w, t.root, "", rootBranch, detail)
}

func printTree[K any](w io.Writer, node *Node[K], prefix string, br branch, detail bool) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, rightBranch, detail)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detail {
		fmt.Fprintf(w, "%v h=%d %+d\n", node.key, node.height, balance(node))
	} else {
		fmt.Fprintf(w, "%v\n", node.key)
	}
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, leftBranch, detail)
	}
	return 1 + max(rd, ld)
}
