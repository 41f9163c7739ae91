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

// Insert adds key to the tree and rebalances the path back to the root.
// It returns the node that holds key and whether a new node was created.
// Inserting a key that is already present changes nothing.
func (t *Tree[K]) Insert(key K) (*Node[K], bool) {
	var holder *Node[K]
	inserted := false
	t.root = t.insertRecursive(t.root, key, &holder, &inserted)
	if inserted {
		t.count++
	}
	return holder, inserted
}

func (t *Tree[K]) insertRecursive(node *Node[K], key K, holder **Node[K], inserted *bool) *Node[K] {
	if node == nil {
		leaf := newLeaf(key)
		*holder = leaf
		*inserted = true
		t.trace(Step[K]{Kind: StepAttach, Key: key})
		return leaf
	}

	t.trace(Step[K]{Kind: StepVisit, Key: node.key})

	c := t.compare(key, node.key)
	switch {
	case c < 0:
		node.left = t.insertRecursive(node.left, key, holder, inserted)
	case c > 0:
		node.right = t.insertRecursive(node.right, key, holder, inserted)
	default:
		*holder = node
		t.trace(Step[K]{Kind: StepDuplicate, Key: key})
		return node
	}

	if !*inserted {
		return node
	}

	updateHeight(node)

	bf := balance(node)
	switch {
	case bf > 1 && t.compare(key, node.left.key) < 0:
		return t.rotateRight(node)
	case bf < -1 && t.compare(key, node.right.key) > 0:
		return t.rotateLeft(node)
	case bf > 1 && t.compare(key, node.left.key) > 0:
		// Left-Right case
		node.left = t.rotateLeft(node.left)
		return t.rotateRight(node)
	case bf < -1 && t.compare(key, node.right.key) < 0:
		// Right-Left case
		node.right = t.rotateRight(node.right)
		return t.rotateLeft(node)
	}

	return node
}
