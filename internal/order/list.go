// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the Go distribution's LICENSE file.

// Package order implements the doubly-linked sequence backing a
// landlord.TiebreakOrder: push/move to either end in O(1), and an
// indexed insert for the RAND tiebreak policy. It is a fork of
// container/list, adapted to hold generic interface{} nodes under a
// lighter API and to support insertion at an arbitrary index.
package order

// Node is one element of a List.
type Node struct {
	next, prev *Node
	list       *List
	Item       interface{}
}

// Next returns the next list node or nil.
func (n *Node) Next() *Node {
	if p := n.next; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list node or nil.
func (n *Node) Prev() *Node {
	if p := n.prev; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list of Nodes. The zero value is an empty
// list ready to use.
type List struct {
	root Node // sentinel node; only &root, root.prev and root.next are used
	len  int
}

// Init initializes or clears the list.
func (l *List) Init() *List {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// New returns an initialized list.
func New() *List { return new(List).Init() }

// Len returns the number of nodes in the list.
func (l *List) Len() int { return l.len }

// Front returns the first node of the list, or nil if the list is empty.
func (l *List) Front() *Node {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last node of the list, or nil if the list is empty.
func (l *List) Back() *Node {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// insert inserts n after at and increments l.len.
func (l *List) insert(n, at *Node) *Node {
	next := at.next
	at.next = n
	n.prev = at
	n.next = next
	next.prev = n
	n.list = l
	l.len++
	return n
}

// PushBack inserts a new node holding item at the back of the list.
func (l *List) PushBack(item interface{}) *Node {
	l.lazyInit()
	return l.insert(&Node{Item: item}, l.root.prev)
}

// InsertAt inserts a new node holding item so that it becomes the
// node at position idx (0-indexed from the front), with
// 0 <= idx <= Len(). InsertAt(Len(), item) behaves like PushBack.
func (l *List) InsertAt(idx int, item interface{}) *Node {
	l.lazyInit()
	if idx < 0 || idx > l.len {
		panic("order: InsertAt index out of range")
	}
	at := &l.root
	for i := 0; i < idx; i++ {
		at = at.next
	}
	return l.insert(&Node{Item: item}, at)
}

// Remove detaches n from the list.
func (l *List) Remove(n *Node) {
	if n.list != l {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.list = nil
	l.len--
}

// MoveToBack moves n to the back of the list. No-op if n is already at
// the back or not a member of l.
func (l *List) MoveToBack(n *Node) {
	if n.list != l || l.root.prev == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev

	at := l.root.prev
	next := at.next
	at.next = n
	n.prev = at
	n.next = next
	next.prev = n
}

// Do calls fn for every node from front to back, stopping early if fn
// returns false.
func (l *List) Do(fn func(*Node) bool) {
	for n := l.Front(); n != nil; n = n.Next() {
		if !fn(n) {
			return
		}
	}
}
