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

import (
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("avl: key out of order")
	ErrBalance = errors.New("avl: node out of balance")
	ErrHeight  = errors.New("avl: stale cached height")
	ErrCount   = errors.New("avl: node count mismatch")
)

// Check walks the whole tree and returns an error wrapping one of the
// sentinel errors above for the first broken invariant it finds. A tree
// that is only ever changed through Insert and Delete always passes.
func (t *Tree[K]) Check() error {
	n, _, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrCount, n, t.count)
	}
	return nil
}

// check returns the node count and the true height of the subtree. lo and
// hi are the exclusive key bounds inherited from the ancestors.
func (t *Tree[K]) check(node *Node[K], lo, hi *K) (int, int, error) {
	if node == nil {
		return 0, 0, nil
	}
	if lo != nil && t.compare(node.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, node.key, *lo)
	}
	if hi != nil && t.compare(node.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, node.key, *hi)
	}

	ln, lh, err := t.check(node.left, lo, &node.key)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := t.check(node.right, &node.key, hi)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, 0, fmt.Errorf("%w: %v caches %d, actual %d", ErrHeight, node.key, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("%w: %v has balance factor %+d", ErrBalance, node.key, bf)
	}
	return ln + rn + 1, h, nil
}
