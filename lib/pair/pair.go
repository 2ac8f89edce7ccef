package pair

// Pair 是有序的键值对，First 是键，Second 是值
// 进入容器后 First 不应再被修改
type Pair[K, V any] struct {
	First  K
	Second V
}

func Of[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

func (p Pair[K, V]) Unpack() (K, V) {
	return p.First, p.Second
}
