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

package avl

// Node is a single key in the tree. Its fields are read-only for callers;
// renderers read them through the accessor methods.
type Node[K any] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

func newLeaf[K any](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the cached height: 1 for a leaf.
func (n *Node[K]) Height() int {
	return height(n)
}

// Left returns the left child or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Balance returns height(left) - height(right). It is computed on every
// call and is 0 for a nil node.
func (n *Node[K]) Balance() int {
	return balance(n)
}

// IsLeaf is true when the node has no children.
func (n *Node[K]) IsLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}
