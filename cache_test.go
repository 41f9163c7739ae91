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

package main

import (
	"testing"
	"time"
)

func TestCacheFrameAndGetFrame(t *testing.T) {
	c := NewRenderCache(time.Minute)
	key := "number|1|false|||false"
	frame := "  20\n /  \\\n10  30"

	if got, ok := GetFrame(c, key); ok || got != "" {
		t.Errorf("GetFrame(%q) = %q, %t; want empty miss", key, got, ok)
	}

	CacheFrame(c, key, frame)

	if got, ok := GetFrame(c, key); !ok || got != frame {
		t.Errorf("GetFrame(%q) = %q, %t; want %q", key, got, ok, frame)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := NewRenderCache(100 * time.Millisecond)
	key := "expiring"

	CacheFrame(c, key, "frame")
	if _, ok := GetFrame(c, key); !ok {
		t.Fatalf("frame missing right after caching")
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := GetFrame(c, key); ok {
		t.Errorf("After expiration, GetFrame(%q) = %q; want miss", key, got)
	}
}

func TestSessionRenderUsesCache(t *testing.T) {
	c := NewRenderCache(time.Minute)
	ws, _ := NewWorkspace(KeyModeNumber, c, false)
	ws.Insert("1")

	first := ws.Render(Highlight{})
	if c.ItemCount() != 1 {
		t.Fatalf("ItemCount() = %d; want 1", c.ItemCount())
	}
	if second := ws.Render(Highlight{}); second != first {
		t.Errorf("cached frame differs from the rendered one")
	}

	ws.Insert("2")
	ws.Render(Highlight{})
	if c.ItemCount() != 2 {
		t.Errorf("ItemCount() = %d after a mutation; want 2", c.ItemCount())
	}
}
