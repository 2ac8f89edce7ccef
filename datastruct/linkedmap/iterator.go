package linkedmap

import "linkedmap-instruction/lib/pair"

// Iterator 是可读写的双向迭代器
// 相等性只取决于 (所属容器, 节点位置)，因此可以直接用 == 比较
type Iterator[K comparable, V any] struct {
	m    *LinkedHashMap[K, V]
	node *node[K, V]
}

func (it *Iterator[K, V]) Next() error {
	if it.m == nil || it.node == nil || it.node == it.m.tail {
		return ErrInvalidIterator
	}
	it.node = it.node.orderNext
	return nil
}

func (it *Iterator[K, V]) Prev() error {
	if it.m == nil || it.node == nil || it.node == it.m.head || it.node == it.m.head.orderNext {
		return ErrInvalidIterator
	}
	it.node = it.node.orderPrev
	return nil
}

// Pair 返回指向节点内部键值对的指针，Second 可以就地修改
func (it Iterator[K, V]) Pair() (*pair.Pair[K, V], error) {
	if it.m == nil || it.node == nil || it.node == it.m.head || it.node == it.m.tail {
		return nil, ErrInvalidIterator
	}
	return &it.node.data, nil
}

func (it Iterator[K, V]) Key() (key K, err error) {
	p, err := it.Pair()
	if err != nil {
		return key, err
	}
	return p.First, nil
}

func (it Iterator[K, V]) Value() (value V, err error) {
	p, err := it.Pair()
	if err != nil {
		return value, err
	}
	return p.Second, nil
}

func (it Iterator[K, V]) SetValue(value V) error {
	p, err := it.Pair()
	if err != nil {
		return err
	}
	p.Second = value
	return nil
}

func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V]{m: it.m, node: it.node}
}

func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.m == other.m && it.node == other.node
}

func (it Iterator[K, V]) EqualConst(other ConstIterator[K, V]) bool {
	return it.m == other.m && it.node == other.node
}

// ConstIterator 是只读的双向迭代器，解引用返回键值对的副本
type ConstIterator[K comparable, V any] struct {
	m    *LinkedHashMap[K, V]
	node *node[K, V]
}

func (it *ConstIterator[K, V]) Next() error {
	if it.m == nil || it.node == nil || it.node == it.m.tail {
		return ErrInvalidIterator
	}
	it.node = it.node.orderNext
	return nil
}

func (it *ConstIterator[K, V]) Prev() error {
	if it.m == nil || it.node == nil || it.node == it.m.head || it.node == it.m.head.orderNext {
		return ErrInvalidIterator
	}
	it.node = it.node.orderPrev
	return nil
}

func (it ConstIterator[K, V]) Pair() (p pair.Pair[K, V], err error) {
	if it.m == nil || it.node == nil || it.node == it.m.head || it.node == it.m.tail {
		return p, ErrInvalidIterator
	}
	return it.node.data, nil
}

func (it ConstIterator[K, V]) Key() (key K, err error) {
	p, err := it.Pair()
	if err != nil {
		return key, err
	}
	return p.First, nil
}

func (it ConstIterator[K, V]) Value() (value V, err error) {
	p, err := it.Pair()
	if err != nil {
		return value, err
	}
	return p.Second, nil
}

func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it.m == other.m && it.node == other.node
}

func (it ConstIterator[K, V]) EqualIter(other Iterator[K, V]) bool {
	return it.m == other.m && it.node == other.node
}
