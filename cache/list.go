package cache

// fifoNode is a node in the insertion-order list.
// The node stores a key for O(1) deletion from the parent map.
type fifoNode[K comparable] struct {
	key  K
	prev *fifoNode[K]
	next *fifoNode[K]
}

// fifoList is a doubly-linked list tracking insertion order.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the oldest-inserted node, the tail the newest.
type fifoList[K comparable] struct {
	head *fifoNode[K]
	tail *fifoNode[K]
	len  int
}

// Len returns the number of nodes in the list.
func (l *fifoList[K]) Len() int {
	return l.len
}

// PushBack appends a new node at the tail (newest).
// Returns the created node for later access.
func (l *fifoList[K]) PushBack(key K) *fifoNode[K] {
	node := &fifoNode[K]{key: key}
	if l.tail == nil {
		// Empty list
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.len++
	return node
}

// Remove removes a node from the list.
func (l *fifoList[K]) Remove(node *fifoNode[K]) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// RemoveOldest removes and returns the key of the oldest-inserted node.
// Returns zero value and false if the list is empty.
func (l *fifoList[K]) RemoveOldest() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}
	node := l.head
	l.unlink(node)
	return node.key, true
}

// Oldest returns the key of the oldest-inserted node without removing it.
// Returns zero value and false if the list is empty.
func (l *fifoList[K]) Oldest() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}
	return l.head.key, true
}

// Clear removes all nodes from the list.
func (l *fifoList[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears its pointers.
func (l *fifoList[K]) unlink(node *fifoNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
