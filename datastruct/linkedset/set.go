package linkedset

import "linkedmap-instruction/datastruct/linkedmap"

type Consumer[E comparable] func(E) bool

// LinkedHashSet 的遍历顺序是元素的插入顺序
type LinkedHashSet[E comparable] struct {
	m *linkedmap.LinkedHashMap[E, struct{}]
}

func NewLinkedHashSet[E comparable](members ...E) *LinkedHashSet[E] {
	res := &LinkedHashSet[E]{m: linkedmap.NewLinkedHashMap[E, struct{}]()}
	for _, member := range members {
		res.Add(member)
	}
	return res
}

func (s *LinkedHashSet[E]) Size() int {
	return s.m.Size()
}

func (s *LinkedHashSet[E]) Empty() bool {
	return s.m.Empty()
}

func (s *LinkedHashSet[E]) Add(member E) (ok bool) {
	_, ok = s.m.Insert(member, struct{}{})
	return ok
}

func (s *LinkedHashSet[E]) Contains(member E) bool {
	return s.m.Count(member) == 1
}

func (s *LinkedHashSet[E]) Remove(member E) (ok bool) {
	return s.m.EraseKey(member)
}

func (s *LinkedHashSet[E]) ForEach(c Consumer[E]) {
	s.m.ForEach(func(member E, _ struct{}) bool {
		return c(member)
	})
}

func (s *LinkedHashSet[E]) Members() []E {
	return s.m.Keys()
}

func (s *LinkedHashSet[E]) Clear() {
	s.m.Clear()
}

func (s *LinkedHashSet[E]) Copy() *LinkedHashSet[E] {
	if s == nil {
		panic("LinkedHashSet is nil")
	}
	return &LinkedHashSet[E]{m: s.m.Copy()}
}

// Intersect 的结果保持 s 的插入顺序
func (s *LinkedHashSet[E]) Intersect(s1 *LinkedHashSet[E]) *LinkedHashSet[E] {
	if s == nil {
		panic("LinkedHashSet is nil")
	}
	res := NewLinkedHashSet[E]()
	s.ForEach(func(member E) bool {
		if s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}

// Union 的结果先按 s 的顺序再按 s1 的顺序
func (s *LinkedHashSet[E]) Union(s1 *LinkedHashSet[E]) *LinkedHashSet[E] {
	if s == nil {
		panic("LinkedHashSet is nil")
	}
	res := NewLinkedHashSet[E]()
	addFunc := func(member E) bool {
		res.Add(member)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *LinkedHashSet[E]) Diff(s1 *LinkedHashSet[E]) *LinkedHashSet[E] {
	if s == nil {
		panic("LinkedHashSet is nil")
	}
	res := NewLinkedHashSet[E]()
	s.ForEach(func(member E) bool {
		if !s1.Contains(member) {
			res.Add(member)
		}
		return true
	})
	return res
}
