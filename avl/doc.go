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

// Package avl implements a self-balancing binary search tree (AVL tree)
// over unique keys.
//
// Every mutation recurses down to the affected position and, on the way
// back up, recomputes the cached height of each ancestor and rotates it
// when its balance factor leaves the range [-1, 1]. Each recursive call
// returns the (possibly rotated) subtree root and the caller reattaches it
// to the child slot it came from, so no parent pointers are kept.
//
// Inserting a key that is already present is a no-op. Deleting or searching
// for a missing key is a defined negative result, not an error.
//
// A tree is not safe for concurrent use. Read-only calls (Search, InOrder,
// Keys) may run between mutations but never at the same time as one.
package avl
