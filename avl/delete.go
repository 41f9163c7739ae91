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

// Delete removes key from the tree and rebalances every ancestor on the
// way back up. It reports whether the key was present; deleting a missing
// key leaves the tree untouched.
func (t *Tree[K]) Delete(key K) bool {
	removed := false
	t.root = t.deleteRecursive(t.root, key, &removed)
	if removed {
		t.count--
	}
	return removed
}

func (t *Tree[K]) deleteRecursive(node *Node[K], key K, removed *bool) *Node[K] {
	if node == nil {
		t.trace(Step[K]{Kind: StepNotFound, Key: key})
		return nil
	}

	t.trace(Step[K]{Kind: StepVisit, Key: node.key})

	c := t.compare(key, node.key)
	switch {
	case c < 0:
		node.left = t.deleteRecursive(node.left, key, removed)
	case c > 0:
		node.right = t.deleteRecursive(node.right, key, removed)
	default:
		// Zero or one child: splice the child (or nothing) into this slot.
		if node.left == nil || node.right == nil {
			*removed = true
			t.trace(Step[K]{Kind: StepRemove, Key: node.key})
			if node.left != nil {
				return node.left
			}
			return node.right
		}

		// Two children: take over the in-order successor's key, then
		// remove the successor, which has no left child.
		successor := findMin(node.right)
		t.trace(Step[K]{Kind: StepCopySuccessor, Key: node.key, Pivot: successor.key})
		node.key = successor.key
		node.right = t.deleteRecursive(node.right, successor.key, removed)
	}

	if !*removed {
		return node
	}

	updateHeight(node)
	return t.rebalance(node)
}

func findMin[K any](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func findMax[K any](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}

// rebalance picks the rotation from the children's balance factors, since
// after a deletion there is no inserted key to compare against.
func (t *Tree[K]) rebalance(node *Node[K]) *Node[K] {
	bf := balance(node)

	// Left-heavy
	if bf > 1 {
		if balance(node.left) >= 0 {
			return t.rotateRight(node)
		}
		node.left = t.rotateLeft(node.left)
		return t.rotateRight(node)
	}

	// Right-heavy
	if bf < -1 {
		if balance(node.right) <= 0 {
			return t.rotateLeft(node)
		}
		node.right = t.rotateRight(node.right)
		return t.rotateLeft(node)
	}

	return node
}
