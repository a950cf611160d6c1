package domain

type EntityKind int

const (
	KindClient EntityKind = iota
	KindTour
	KindBooking
	entityKindCount
)

// IDAllocator - независимые монотонные счётчики идентификаторов для каждой сущности
type IDAllocator struct {
	next [entityKindCount]int64
}

func NewIDAllocator() *IDAllocator {
	a := &IDAllocator{}
	for i := range a.next {
		a.next[i] = 1
	}
	return a
}

func (a *IDAllocator) Next(kind EntityKind) int64 {
	id := a.next[kind]
	a.next[kind]++
	return id
}

// Observe - учёт существующего идентификатора: следующий будет не меньше id+1
func (a *IDAllocator) Observe(kind EntityKind, id int64) {
	if id >= a.next[kind] {
		a.next[kind] = id + 1
	}
}

func (a *IDAllocator) Peek(kind EntityKind) int64 {
	return a.next[kind]
}
