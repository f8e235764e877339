package linkedlist

// Node 单链表节点
type Node[T any] struct {
	Value T        // 节点值
	next  *Node[T] // 下一个节点指针
	list  *List[T] // 所属链表的引用，未入链时为nil
}

// NewNode 创建不带后继的节点
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// NewNodeWithNext 创建带初始后继的节点
// 插入链表时后继会被链表重写
func NewNodeWithNext[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, next: next}
}

// Next 返回下一个节点，没有则返回nil
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// 断开节点与链表的所有联系
func (n *Node[T]) detach() {
	n.next = nil
	n.list = nil
}
