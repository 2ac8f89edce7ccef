package linkedmap

import (
	"hash/maphash"

	"linkedmap-instruction/lib/pair"
)

const (
	initCapacity = 16
	loadFactor   = 0.75
)

type HashFunc[K comparable] func(K) uint64

type EqualFunc[K comparable] func(K, K) bool

type Option[K comparable, V any] func(*LinkedHashMap[K, V])

func WithHash[K comparable, V any](h HashFunc[K]) Option[K, V] {
	return func(m *LinkedHashMap[K, V]) {
		m.hash = h
	}
}

func WithEqual[K comparable, V any](eq EqualFunc[K]) Option[K, V] {
	return func(m *LinkedHashMap[K, V]) {
		m.equal = eq
	}
}

// node 同时挂在桶链和顺序链表上，两个结构共享同一个节点
type node[K comparable, V any] struct {
	data       pair.Pair[K, V]
	bucketNext *node[K, V]
	orderPrev  *node[K, V]
	orderNext  *node[K, V]
}

// LinkedHashMap 不是线程安全的 map
type LinkedHashMap[K comparable, V any] struct {
	buckets []*node[K, V]
	head    *node[K, V]
	tail    *node[K, V]
	size    int
	hash    HashFunc[K]
	equal   EqualFunc[K]
}

func NewLinkedHashMap[K comparable, V any](opts ...Option[K, V]) *LinkedHashMap[K, V] {
	m := &LinkedHashMap[K, V]{
		buckets: make([]*node[K, V], initCapacity),
		head:    &node[K, V]{},
		tail:    &node[K, V]{},
	}
	m.head.orderNext = m.tail
	m.tail.orderPrev = m.head
	for _, opt := range opts {
		opt(m)
	}
	if m.hash == nil {
		seed := maphash.MakeSeed()
		m.hash = func(key K) uint64 {
			return maphash.Comparable(seed, key)
		}
	}
	if m.equal == nil {
		m.equal = func(a, b K) bool { return a == b }
	}
	return m
}

func (m *LinkedHashMap[K, V]) Size() int {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return m.size
}

func (m *LinkedHashMap[K, V]) Empty() bool {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return m.size == 0
}

// bucketIndex 根据哈希函数的结果，得到相应桶的下标
func (m *LinkedHashMap[K, V]) bucketIndex(key K) uint64 {
	return (uint64(len(m.buckets)) - 1) & m.hash(key)
}

func (m *LinkedHashMap[K, V]) locate(key K) *node[K, V] {
	for n := m.buckets[m.bucketIndex(key)]; n != nil; n = n.bucketNext {
		if m.equal(n.data.First, key) {
			return n
		}
	}
	return nil
}

// grow 容量加倍并重建所有桶链
// 沿顺序链表遍历而不是沿旧桶数组，顺序链表不受桶布局影响
func (m *LinkedHashMap[K, V]) grow() {
	newBuckets := make([]*node[K, V], len(m.buckets)*2)
	mask := uint64(len(newBuckets) - 1)
	for n := m.head.orderNext; n != m.tail; n = n.orderNext {
		idx := mask & m.hash(n.data.First)
		n.bucketNext = newBuckets[idx]
		newBuckets[idx] = n
	}
	m.buckets = newBuckets
}

func (m *LinkedHashMap[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		// 键已存在时既不改值也不改顺序
		return Iterator[K, V]{m: m, node: n}, false
	}
	if float64(m.size+1) > float64(len(m.buckets))*loadFactor {
		m.grow()
	}
	n := &node[K, V]{data: pair.Of(key, value)}
	idx := m.bucketIndex(key)
	n.bucketNext = m.buckets[idx]
	m.buckets[idx] = n
	n.orderPrev = m.tail.orderPrev
	n.orderNext = m.tail
	m.tail.orderPrev.orderNext = n
	m.tail.orderPrev = n
	m.size++
	return Iterator[K, V]{m: m, node: n}, true
}

func (m *LinkedHashMap[K, V]) Find(key K) Iterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		return Iterator[K, V]{m: m, node: n}
	}
	return m.End()
}

func (m *LinkedHashMap[K, V]) FindConst(key K) ConstIterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		return ConstIterator[K, V]{m: m, node: n}
	}
	return m.ConstEnd()
}

func (m *LinkedHashMap[K, V]) At(key K) (value V, err error) {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		return n.data.Second, nil
	}
	return value, ErrKeyNotFound
}

func (m *LinkedHashMap[K, V]) AtRef(key K) (ref *V, err error) {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		return &n.data.Second, nil
	}
	return nil, ErrKeyNotFound
}

// Ref 在键不存在时先插入零值，这是唯一带插入副作用的查找
func (m *LinkedHashMap[K, V]) Ref(key K) *V {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if n := m.locate(key); n != nil {
		return &n.data.Second
	}
	var zero V
	it, _ := m.Insert(key, zero)
	return &it.node.data.Second
}

func (m *LinkedHashMap[K, V]) Count(key K) int {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if m.locate(key) != nil {
		return 1
	}
	return 0
}

func (m *LinkedHashMap[K, V]) Erase(pos Iterator[K, V]) error {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	if pos.m != m || pos.node == nil || pos.node == m.head || pos.node == m.tail {
		return ErrInvalidIterator
	}
	cur := pos.node
	idx := m.bucketIndex(cur.data.First)
	var prev *node[K, V]
	p := m.buckets[idx]
	for p != nil && p != cur {
		prev = p
		p = p.bucketNext
	}
	if p == nil {
		// 桶链里找不到该节点，说明它已被删除
		return ErrInvalidIterator
	}
	if prev != nil {
		prev.bucketNext = cur.bucketNext
	} else {
		m.buckets[idx] = cur.bucketNext
	}
	cur.orderPrev.orderNext = cur.orderNext
	cur.orderNext.orderPrev = cur.orderPrev
	cur.bucketNext, cur.orderPrev, cur.orderNext = nil, nil, nil
	m.size--
	return nil
}

func (m *LinkedHashMap[K, V]) EraseKey(key K) (ok bool) {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	it := m.Find(key)
	if it == m.End() {
		return false
	}
	return m.Erase(it) == nil
}

func (m *LinkedHashMap[K, V]) Begin() Iterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return Iterator[K, V]{m: m, node: m.head.orderNext}
}

func (m *LinkedHashMap[K, V]) End() Iterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return Iterator[K, V]{m: m, node: m.tail}
}

func (m *LinkedHashMap[K, V]) ConstBegin() ConstIterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return ConstIterator[K, V]{m: m, node: m.head.orderNext}
}

func (m *LinkedHashMap[K, V]) ConstEnd() ConstIterator[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	return ConstIterator[K, V]{m: m, node: m.tail}
}

func (m *LinkedHashMap[K, V]) ForEach(p Processor[K, V]) {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	for n := m.head.orderNext; n != m.tail; n = n.orderNext {
		if !p(n.data.First, n.data.Second) {
			break
		}
	}
}

func (m *LinkedHashMap[K, V]) Keys() []K {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	res := make([]K, m.size)
	i := 0
	for n := m.head.orderNext; n != m.tail; n = n.orderNext {
		res[i] = n.data.First
		i++
	}
	return res
}

func (m *LinkedHashMap[K, V]) Values() []V {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	res := make([]V, m.size)
	i := 0
	for n := m.head.orderNext; n != m.tail; n = n.orderNext {
		res[i] = n.data.Second
		i++
	}
	return res
}

// Clear 沿顺序链表摘除所有节点，容量保持不变
func (m *LinkedHashMap[K, V]) Clear() {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	n := m.head.orderNext
	for n != m.tail {
		next := n.orderNext
		n.bucketNext, n.orderPrev, n.orderNext = nil, nil, nil
		n = next
	}
	m.head.orderNext = m.tail
	m.tail.orderPrev = m.head
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Copy 按插入顺序重放插入来重建副本，而不是复制原始链接
func (m *LinkedHashMap[K, V]) Copy() *LinkedHashMap[K, V] {
	if m == nil {
		panic("LinkedHashMap is nil")
	}
	res := NewLinkedHashMap[K, V](WithHash[K, V](m.hash), WithEqual[K, V](m.equal))
	res.buckets = make([]*node[K, V], len(m.buckets))
	for n := m.head.orderNext; n != m.tail; n = n.orderNext {
		res.Insert(n.data.First, n.data.Second)
	}
	return res
}

func (m *LinkedHashMap[K, V]) Assign(other *LinkedHashMap[K, V]) {
	if m == nil || other == nil {
		panic("LinkedHashMap is nil")
	}
	if m == other {
		return
	}
	m.Clear()
	m.hash = other.hash
	m.equal = other.equal
	if len(m.buckets) != len(other.buckets) {
		m.buckets = make([]*node[K, V], len(other.buckets))
	}
	for n := other.head.orderNext; n != other.tail; n = n.orderNext {
		m.Insert(n.data.First, n.data.Second)
	}
}
