package linkedmap

type Processor[K comparable, V any] func(K, V) bool

// OrderedDict 的迭代顺序是键的插入顺序，重复插入已有的键不会改变顺序
type OrderedDict[K comparable, V any] interface {
	Size() int
	Empty() bool
	Insert(key K, value V) (Iterator[K, V], bool)
	Find(key K) Iterator[K, V]
	FindConst(key K) ConstIterator[K, V]
	At(key K) (value V, err error)
	AtRef(key K) (ref *V, err error)
	Ref(key K) *V
	Count(key K) int
	Erase(pos Iterator[K, V]) error
	EraseKey(key K) (ok bool)
	Begin() Iterator[K, V]
	End() Iterator[K, V]
	ConstBegin() ConstIterator[K, V]
	ConstEnd() ConstIterator[K, V]
	ForEach(p Processor[K, V])
	Keys() []K
	Values() []V
	Clear()
}
