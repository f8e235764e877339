package main

import (
	"errors"

	"github.com/strive/slist/linkedlist"
	"go.uber.org/zap"
)

// LinkedListDemo 演示单向链表的插入、删除、查找和切片转换
func LinkedListDemo(values []int, lg *zap.Logger) error {
	sugar := lg.Sugar()

	l := linkedlist.FromSlice(values)
	sugar.Infow("从切片构建链表", "list", l.String(), "size", l.Len())

	l.AddFirst(linkedlist.NewNode(0))
	l.AddLast(linkedlist.NewNode(100))
	if err := l.AddAt(l.Len()/2, linkedlist.NewNode(50)); err != nil {
		return err
	}
	sugar.Infow("头部、尾部、中间插入后", "list", l.String(), "size", l.Len())

	if n, err := l.GetAt(l.Len() / 2); err == nil {
		sugar.Infof("中间位置的值: %d", n.Value)
	}

	// 越界不是致命错误，记录后继续
	if err := l.AddAt(l.Len()+1, linkedlist.NewNode(-1)); errors.Is(err, linkedlist.ErrIndexOutOfBounds) {
		sugar.Infow("越界插入被拒绝", "error", err)
	}

	first := l.RemoveFirst()
	last := l.RemoveLast()
	sugar.Infow("移除头尾", "first", first.Value, "last", last.Value, "list", l.String())

	if l.Len() > 2 {
		removed, err := l.RemoveAt(1)
		if err != nil {
			return err
		}
		sugar.Infow("移除下标1", "value", removed.Value, "list", l.String())
	}

	sugar.Infow("转换回切片", "values", linkedlist.ToSlice(l))

	l.Clear()
	if n := l.RemoveFirst(); n == nil {
		sugar.Info("空链表移除返回nil")
	}
	return nil
}
