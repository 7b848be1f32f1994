// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the Go distribution's LICENSE file.

package order

import "testing"

func items(l *List) []interface{} {
	var out []interface{}
	l.Do(func(n *Node) bool {
		out = append(out, n.Item)
		return true
	})
	return out
}

func equalItems(t *testing.T, l *List, want []interface{}) {
	t.Helper()
	got := items(l)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestList_PushBackAndRemove(t *testing.T) {
	l := New()
	equalItems(t, l, nil)

	a := l.PushBack("a")
	equalItems(t, l, []interface{}{"a"})

	l.PushBack("b")
	l.PushBack("c")
	equalItems(t, l, []interface{}{"a", "b", "c"})

	l.Remove(a)
	equalItems(t, l, []interface{}{"b", "c"})
}

func TestList_MoveToBack(t *testing.T) {
	l := New()
	a := l.PushBack("a")
	l.PushBack("b")
	c := l.PushBack("c")

	l.MoveToBack(a)
	equalItems(t, l, []interface{}{"b", "c", "a"})

	// already at back: no-op
	l.MoveToBack(a)
	equalItems(t, l, []interface{}{"b", "c", "a"})

	l.MoveToBack(c)
	equalItems(t, l, []interface{}{"b", "a", "c"})
}

func TestList_InsertAt(t *testing.T) {
	l := New()
	l.PushBack("a")
	l.PushBack("c")

	l.InsertAt(1, "b")
	equalItems(t, l, []interface{}{"a", "b", "c"})

	l.InsertAt(0, "head")
	equalItems(t, l, []interface{}{"head", "a", "b", "c"})

	l.InsertAt(l.Len(), "tail")
	equalItems(t, l, []interface{}{"head", "a", "b", "c", "tail"})
}

func TestList_InsertAt_EmptyListAcceptsZero(t *testing.T) {
	l := New()
	l.InsertAt(0, "only")
	equalItems(t, l, []interface{}{"only"})
}

func TestList_InsertAt_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range index")
		}
	}()
	l := New()
	l.InsertAt(1, "x")
}

func TestList_Len(t *testing.T) {
	l := New()
	if l.Len() != 0 {
		t.Fatalf("empty list len = %d, want 0", l.Len())
	}
	l.PushBack(1)
	l.PushBack(2)
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}
}
