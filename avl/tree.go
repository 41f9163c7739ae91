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

import "cmp"

// Tree holds the root of an AVL tree along with the comparator used to
// order its keys.
type Tree[K any] struct {
	root    *Node[K]
	count   int
	compare Comparator[K]
	tracer  Tracer[K]
}

// New creates an empty tree ordered by compare.
func New[K any](compare Comparator[K]) *Tree[K] {
	return &Tree[K]{compare: compare}
}

// NewOrdered creates an empty tree over a natively ordered key type.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New(Ordered[K])
}

// Root returns the root node, nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len is the number of keys currently stored.
func (t *Tree[K]) Len() int {
	return t.count
}

// IsEmpty is true when the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Clear drops every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
}

// SetTracer installs fn to receive a Step for each structural event of
// subsequent operations. Pass nil to stop tracing.
func (t *Tree[K]) SetTracer(fn Tracer[K]) {
	t.tracer = fn
}
