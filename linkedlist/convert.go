package linkedlist

// FromSlice 按顺序把切片中的值追加到新链表
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.AddLast(NewNode(v))
	}
	return l
}

// ToSlice 按链表顺序收集节点值，不修改链表
// 空链表（或nil）返回长度为0的非nil切片
func ToSlice[T any](l *List[T]) []T {
	if l == nil {
		return []T{}
	}
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}
