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

import "fmt"

// StepKind identifies a structural event inside an operation.
type StepKind int

const (
	StepVisit StepKind = iota
	StepAttach
	StepDuplicate
	StepNotFound
	StepRemove
	StepCopySuccessor
	StepRotateLeft
	StepRotateRight
)

var stepNames = [...]string{
	StepVisit:         "visit",
	StepAttach:        "attach",
	StepDuplicate:     "duplicate",
	StepNotFound:      "not-found",
	StepRemove:        "remove",
	StepCopySuccessor: "copy-successor",
	StepRotateLeft:    "rotate-left",
	StepRotateRight:   "rotate-right",
}

func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepNames) {
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
	return stepNames[k]
}

// Step is emitted at the recursion boundaries of Insert, Delete and
// Search. Key is the key of the node the step happens at. Pivot is only
// set for rotations (the child lifted into Key's place) and for
// StepCopySuccessor (the successor key copied into the node).
type Step[K any] struct {
	Kind  StepKind
	Key   K
	Pivot K
}

func (s Step[K]) String() string {
	switch s.Kind {
	case StepRotateLeft, StepRotateRight:
		return fmt.Sprintf("%s at %v (pivot %v)", s.Kind, s.Key, s.Pivot)
	case StepCopySuccessor:
		return fmt.Sprintf("%s %v -> %v", s.Kind, s.Pivot, s.Key)
	}
	return fmt.Sprintf("%s %v", s.Kind, s.Key)
}

// Tracer receives steps in the order they happen.
type Tracer[K any] func(Step[K])

func (t *Tree[K]) trace(s Step[K]) {
	if t.tracer != nil {
		t.tracer(s)
	}
}
