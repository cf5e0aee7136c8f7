package lru

// recencyList is a doubly-linked list of arena handles.
// The entry after headSentinel is the most recently used, the entry before
// tailSentinel the least recently used. All link manipulation lives here.
type recencyList[K comparable, V any] struct {
	arena *arena[K, V]
	size  int
}

func newRecencyList[K comparable, V any](a *arena[K, V]) *recencyList[K, V] {
	return &recencyList[K, V]{arena: a}
}

// pushFront links a detached entry right after the head sentinel.
func (l *recencyList[K, V]) pushFront(h handle) {
	head := l.arena.at(headSentinel)
	first := head.next

	node := l.arena.at(h)
	node.prev = headSentinel
	node.next = first

	l.arena.at(first).prev = h
	head.next = h
	l.size++
}

// detach unlinks an entry and clears its links. The slot itself stays allocated.
func (l *recencyList[K, V]) detach(h handle) {
	node := l.arena.at(h)
	l.arena.at(node.prev).next = node.next
	l.arena.at(node.next).prev = node.prev
	node.prev = nilHandle
	node.next = nilHandle
	l.size--
}

// moveToFront promotes a linked entry to most recently used.
func (l *recencyList[K, V]) moveToFront(h handle) {
	if l.arena.at(headSentinel).next == h {
		return // Already at front
	}
	l.detach(h)
	l.pushFront(h)
}

// front returns the most recently used entry.
func (l *recencyList[K, V]) front() (handle, bool) {
	h := l.arena.at(headSentinel).next
	return h, h != tailSentinel
}

// back returns the least recently used entry, the next eviction candidate.
func (l *recencyList[K, V]) back() (handle, bool) {
	h := l.arena.at(tailSentinel).prev
	return h, h != headSentinel
}

func (l *recencyList[K, V]) len() int {
	return l.size
}

// each walks the list from most to least recently used until fn returns false.
func (l *recencyList[K, V]) each(fn func(h handle) bool) {
	for h := l.arena.at(headSentinel).next; h != tailSentinel; {
		next := l.arena.at(h).next
		if !fn(h) {
			return
		}
		h = next
	}
}

// reset drops every link. The caller is responsible for the arena.
func (l *recencyList[K, V]) reset() {
	l.size = 0
}
