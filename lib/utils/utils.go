package utils

import "math/rand"

// Fnv64 是一个哈希函数
func Fnv64(key string) uint64 {
	hash := uint64(14695981039346656037)
	// 此处不用 for range 是因为不应考虑字符而是只考虑字节
	for i := 0; i < len(key); i++ {
		hash *= uint64(1099511628211)
		hash ^= uint64(key[i])
	}
	return hash
}

func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		index := rand.Intn(62)
		if index < 10 {
			a[i] = byte(48 + index)
		} else if index < 36 {
			a[i] = byte(55 + index)
		} else {
			a[i] = byte(61 + index)
		}
	}
	return string(a)
}
