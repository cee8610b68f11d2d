// Package rangepool is an arena of mutable range records that the matchers
// recycle while walking a token stream.
//
// Records are addressed by Handle. A record is either in use, held by exactly
// one stack slot, pending slot or parent Child field, or free in the pool.
// A pool lives for a single query and is dropped with it.
package rangepool

// Handle addresses a record in a Pool.
type Handle int

// Nil is the handle of no record.
const Nil Handle = -1

// Record is a `(start, end, delimiter)` triple with an optional owned child.
// BodyStart and BodyEnd hold the content span of a node once it is known;
// they start out empty.
type Record struct {
	Start     int
	End       int
	Delimiter int
	BodyStart int
	BodyEnd   int
	Child     Handle
}

type Pool struct {
	records []Record
	inUse   []bool
	free    []Handle
}

func New() *Pool {
	return &Pool{}
}

// Alloc takes a free record, or grows the arena when none is free.
func (p *Pool) Alloc(start, end, delimiter int) Handle {
	var h Handle
	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		h = Handle(len(p.records))
		p.records = append(p.records, Record{})
		p.inUse = append(p.inUse, false)
	}

	p.records[h] = Record{Start: start, End: end, Delimiter: delimiter, BodyStart: start, BodyEnd: start, Child: Nil}
	p.inUse[h] = true
	return h
}

// Release returns a single record to the pool. Releasing Nil or a record that
// is already free does nothing.
func (p *Pool) Release(h Handle) {
	if !p.valid(h) {
		return
	}
	p.inUse[h] = false
	p.free = append(p.free, h)
}

// ReleaseChain releases h and every record reachable through Child.
func (p *Pool) ReleaseChain(h Handle) {
	for p.valid(h) {
		next := p.records[h].Child
		p.Release(h)
		h = next
	}
}

// Get returns the record behind h. The pointer is only valid until the next
// Alloc, which may grow the arena.
func (p *Pool) Get(h Handle) *Record {
	if !p.valid(h) {
		return nil
	}
	return &p.records[h]
}

// Live reports the number of records currently in use.
func (p *Pool) Live() int {
	return len(p.records) - len(p.free)
}

// Cap reports how many records the arena has ever created.
func (p *Pool) Cap() int {
	return len(p.records)
}

func (p *Pool) valid(h Handle) bool {
	return h >= 0 && int(h) < len(p.records) && p.inUse[h]
}

// Stack is a LIFO of handles whose records are owned by the stack.
type Stack struct {
	items []Handle
}

func (s *Stack) Push(h Handle) {
	s.items = append(s.items, h)
}

// Pop removes the top handle, or returns Nil on an empty stack.
func (s *Stack) Pop() Handle {
	n := len(s.items)
	if n == 0 {
		return Nil
	}
	h := s.items[n-1]
	s.items = s.items[:n-1]
	return h
}

// Top returns the top handle without removing it, or Nil.
func (s *Stack) Top() Handle {
	if len(s.items) == 0 {
		return Nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int {
	return len(s.items)
}
