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

// InOrder calls visit for every node in ascending key order. A nil visit
// does nothing. visit must not mutate the tree.
func (t *Tree[K]) InOrder(visit func(*Node[K])) {
	if visit == nil {
		return
	}
	inOrder(t.root, visit)
}

func inOrder[K any](node *Node[K], visit func(*Node[K])) {
	if node == nil {
		return
	}
	inOrder(node.left, visit)
	visit(node)
	inOrder(node.right, visit)
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.InOrder(func(n *Node[K]) {
		keys = append(keys, n.key)
	})
	return keys
}

// Level returns the nodes at the given depth from left to right; depth 0
// is the root.
func (t *Tree[K]) Level(depth int) []*Node[K] {
	return nodesAtDepth(t.root, depth)
}

func nodesAtDepth[K any](node *Node[K], depth int) []*Node[K] {
	if node == nil || depth < 0 {
		return nil
	}
	if depth == 0 {
		return []*Node[K]{node}
	}
	return append(nodesAtDepth(node.left, depth-1), nodesAtDepth(node.right, depth-1)...)
}
