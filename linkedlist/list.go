package linkedlist

/*
单向链表

原理：
单向链表由一串节点组成，每个节点保存一个值和指向下一个节点的指针。
链表同时维护头指针、尾指针和长度，使头尾两端的插入都是O(1)。

关键特点：
1. 头部插入和删除O(1)，尾部插入O(1)
2. 没有反向指针，删除尾部需要从头遍历找到前驱，O(n)
3. 按下标访问、插入、删除需要从头遍历，O(n)
4. 被移除的节点会清空后继指针，调用方拿到的是完全脱离链表的节点

实现方式：
- 插入和删除的边界下标（0 和 size/size-1）统一走头尾专用操作
- 中间位置先找到前驱节点，再改写前驱和新节点的后继指针
- 越界返回 ErrIndexOutOfBounds，空链表删除返回nil而不是错误

注意：
链表本身不是并发安全的，多协程访问需要调用方自行加锁（参见 concurrency.BoundedQueue）。
*/

import (
	"fmt"
	"strings"
)

// List 单向链表，零值即为可用的空链表
type List[T any] struct {
	size int      // 节点数量
	head *Node[T] // 第一个节点，空链表为nil
	tail *Node[T] // 最后一个节点，空链表为nil
}

// New 创建空链表
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len 返回链表长度
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty 链表是否为空
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Head 返回第一个节点，空链表返回nil
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail 返回最后一个节点，空链表返回nil
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// 接管节点：nil节点或已属于某个链表的节点不允许插入
func (l *List[T]) adopt(node *Node[T]) {
	if node == nil {
		panic("linkedlist: nil node")
	}
	if node.list != nil {
		panic("linkedlist: node already belongs to a list")
	}
	node.next = nil
	node.list = l
}

// AddFirst 在头部插入节点
func (l *List[T]) AddFirst(node *Node[T]) {
	l.adopt(node)
	if l.size == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head = node
	}
	l.size++
}

// AddLast 在尾部插入节点
func (l *List[T]) AddLast(node *Node[T]) {
	l.adopt(node)
	if l.size == 0 {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}
	l.size++
}

// AddAt 在下标index处插入节点，index == Len() 表示追加到尾部
func (l *List[T]) AddAt(index int, node *Node[T]) error {
	if index < 0 || index > l.size {
		return outOfBounds(index, l.size)
	}
	if index == 0 {
		l.AddFirst(node)
		return nil
	}
	if index == l.size {
		l.AddLast(node)
		return nil
	}

	l.adopt(node)
	prev := l.nodeAt(index - 1)
	node.next = prev.next
	prev.next = node
	l.size++
	return nil
}

// RemoveFirst 移除并返回头节点，空链表返回nil
func (l *List[T]) RemoveFirst() *Node[T] {
	if l.size == 0 {
		return nil
	}
	removed := l.head
	if l.size == 1 {
		l.head = nil
		l.tail = nil
	} else {
		l.head = removed.next
	}
	removed.detach()
	l.size--
	return removed
}

// RemoveLast 移除并返回尾节点，空链表返回nil
// 没有反向指针，需要从头遍历找到尾节点的前驱
func (l *List[T]) RemoveLast() *Node[T] {
	if l.size == 0 {
		return nil
	}
	removed := l.tail
	if l.size == 1 {
		l.head = nil
		l.tail = nil
	} else {
		prev := l.nodeAt(l.size - 2)
		prev.next = nil
		l.tail = prev
	}
	removed.detach()
	l.size--
	return removed
}

// RemoveAt 移除并返回下标index处的节点
func (l *List[T]) RemoveAt(index int) (*Node[T], error) {
	if index < 0 || index >= l.size {
		return nil, outOfBounds(index, l.size)
	}
	if index == 0 {
		return l.RemoveFirst(), nil
	}
	if index == l.size-1 {
		return l.RemoveLast(), nil
	}

	prev := l.nodeAt(index - 1)
	removed := prev.next
	prev.next = removed.next
	removed.detach()
	l.size--
	return removed, nil
}

// GetAt 返回下标index处的节点，不修改链表
func (l *List[T]) GetAt(index int) (*Node[T], error) {
	if index < 0 || index >= l.size {
		return nil, outOfBounds(index, l.size)
	}
	return l.nodeAt(index), nil
}

// Clear 清空链表，逐个断开节点，避免外部持有的节点还指向链表内部
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.detach()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// String 以 [v1 v2 ...] 的形式输出链表
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.Value)
	}
	b.WriteByte(']')
	return b.String()
}

// 从头走index步，调用方保证 0 <= index < size
func (l *List[T]) nodeAt(index int) *Node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}
