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

// Search returns the node holding key, or nil when the key is absent.
func (t *Tree[K]) Search(key K) *Node[K] {
	return searchNode(t.root, key, t.compare)
}

func searchNode[K any](node *Node[K], key K, compare Comparator[K]) *Node[K] {
	for node != nil {
		c := compare(key, node.key)
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

// SearchPath descends towards key and returns every node it passed
// through, root first. The last element of path is the match when found
// is non-nil.
func (t *Tree[K]) SearchPath(key K) (path []*Node[K], found *Node[K]) {
	node := t.root
	for node != nil {
		path = append(path, node)
		t.trace(Step[K]{Kind: StepVisit, Key: node.key})

		c := t.compare(key, node.key)
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return path, node
		}
	}
	t.trace(Step[K]{Kind: StepNotFound, Key: key})
	return path, nil
}

// Min returns the smallest key. ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return findMin(t.root).key, true
}

// Max returns the largest key. ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return findMax(t.root).key, true
}
