package linkedmap

import "errors"

var (
	// ErrKeyNotFound 仅由 At 和 AtRef 返回
	ErrKeyNotFound = errors.New("linkedmap: key not found")
	// ErrInvalidIterator 表示调用者误用迭代器，例如解引用哨兵位置、
	// 越过端点移动，或用不属于本容器的迭代器调用 Erase
	ErrInvalidIterator = errors.New("linkedmap: invalid iterator")
)
