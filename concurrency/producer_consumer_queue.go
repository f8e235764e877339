package concurrency

/*
生产者-消费者队列

原理：
生产者-消费者模式将任务的生产和消费解耦，通过共享队列在二者之间传递数据。
生产者负责创建数据并放入队列，消费者负责从队列取出数据并处理。

关键特点：
1. 生产者和消费者可以以不同的速率工作
2. 队列满时生产者阻塞，队列空时消费者阻塞
3. 阻塞等待可以通过context取消
4. 关闭后不再接受入队，已入队的数据仍可取出

实现方式：
- 底层存储是 linkedlist.List：入队 AddLast，出队 RemoveFirst，都是O(1)
- 单向链表本身不是并发安全的，所有访问都在队列的互斥锁内完成
- 使用条件变量实现阻塞，context取消时通过 context.AfterFunc 唤醒等待者
*/

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/strive/slist/linkedlist"
	"github.com/strive/slist/logger"
	"go.uber.org/zap"
)

// 错误定义
var (
	ErrQueueClosed = errors.New("队列已关闭")
)

// BoundedQueue 有界队列，支持生产者-消费者模式
type BoundedQueue[T any] struct {
	items        *linkedlist.List[T] // 队列项
	capacity     int                 // 队列容量
	mu           sync.Mutex          // 保护items
	notEmpty     *sync.Cond          // 非空条件变量
	notFull      *sync.Cond          // 非满条件变量
	closed       atomic.Bool         // 关闭标志
	enqueueCount atomic.Int64        // 入队计数
	dequeueCount atomic.Int64        // 出队计数
	lg           *zap.Logger
}

// QueueStats 队列统计信息
type QueueStats struct {
	Capacity     int
	Size         int
	EnqueueCount int64
	DequeueCount int64
	Closed       bool
}

// NewBoundedQueue 创建新的有界队列，capacity<=0时使用默认容量10
func NewBoundedQueue[T any](capacity int, lg *zap.Logger) *BoundedQueue[T] {
	if capacity <= 0 {
		capacity = 10
	}

	q := &BoundedQueue[T]{
		items:    linkedlist.New[T](),
		capacity: capacity,
		lg:       logger.OrNop(lg),
	}

	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)

	return q
}

// ctx结束时唤醒cond上的所有等待者
func (q *BoundedQueue[T]) wakeOnDone(ctx context.Context, cond *sync.Cond) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		q.mu.Lock()
		cond.Broadcast()
		q.mu.Unlock()
	})
}

// Enqueue 将项添加到队列，队列已满则阻塞，直到有空位、队列关闭或ctx结束
func (q *BoundedQueue[T]) Enqueue(ctx context.Context, item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed.Load() {
		return ErrQueueClosed
	}

	if q.items.Len() >= q.capacity {
		stop := q.wakeOnDone(ctx, q.notFull)
		defer stop()

		for q.items.Len() >= q.capacity && !q.closed.Load() {
			if err := ctx.Err(); err != nil {
				return err
			}
			q.notFull.Wait()
		}
	}

	// 等待期间可能已关闭
	if q.closed.Load() {
		return ErrQueueClosed
	}

	q.items.AddLast(linkedlist.NewNode(item))
	q.enqueueCount.Add(1)

	// 通知等待的消费者
	q.notEmpty.Signal()

	return nil
}

// Dequeue 从队列中取出项，队列为空则阻塞，直到有数据、队列关闭且为空或ctx结束
func (q *BoundedQueue[T]) Dequeue(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T

	if q.items.Len() == 0 && !q.closed.Load() {
		stop := q.wakeOnDone(ctx, q.notEmpty)
		defer stop()

		for q.items.Len() == 0 && !q.closed.Load() {
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			q.notEmpty.Wait()
		}
	}

	node := q.items.RemoveFirst()
	if node == nil {
		return zero, ErrQueueClosed
	}
	q.dequeueCount.Add(1)

	// 通知等待的生产者
	q.notFull.Signal()

	return node.Value, nil
}

// TryDequeue 非阻塞出队，队列为空返回false
func (q *BoundedQueue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	node := q.items.RemoveFirst()
	if node == nil {
		var zero T
		return zero, false
	}
	q.dequeueCount.Add(1)
	q.notFull.Signal()
	return node.Value, true
}

// Close 关闭队列，阻止进一步入队，允许已入队的项被出队
func (q *BoundedQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed.CompareAndSwap(false, true) {
		q.lg.Debug("queue closed", zap.Int("remaining", q.items.Len()))
		// 通知所有等待的生产者和消费者
		q.notFull.Broadcast()
		q.notEmpty.Broadcast()
	}
}

// Size 返回队列中的项数
func (q *BoundedQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Capacity 返回队列容量
func (q *BoundedQueue[T]) Capacity() int {
	return q.capacity
}

// IsClosed 返回队列是否已关闭
func (q *BoundedQueue[T]) IsClosed() bool {
	return q.closed.Load()
}

// Stats 返回队列的统计信息
func (q *BoundedQueue[T]) Stats() QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	return QueueStats{
		Capacity:     q.capacity,
		Size:         q.items.Len(),
		EnqueueCount: q.enqueueCount.Load(),
		DequeueCount: q.dequeueCount.Load(),
		Closed:       q.closed.Load(),
	}
}

// ProducerConsumerDemo 场景示例：日志收集系统
func ProducerConsumerDemo(capacity, producers, itemsPerProducer int, lg *zap.Logger) QueueStats {
	lg = logger.OrNop(lg)
	sugar := lg.Sugar()
	queue := NewBoundedQueue[string](capacity, lg)

	sugar.Info("日志收集系统场景（生产者-消费者模式）")

	var producerWg sync.WaitGroup
	for i := 0; i < producers; i++ {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()

			for j := 0; j < itemsPerProducer; j++ {
				entry := fmt.Sprintf("日志-生产者%d-%d", id, j)
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				err := queue.Enqueue(ctx, entry)
				cancel()
				if err != nil {
					sugar.Warnf("生产者%d: 入队失败: %v", id, err)
					continue
				}
				sugar.Debugf("生产者%d: 产生日志 %s", id, entry)
			}
		}(i)
	}

	var consumerWg sync.WaitGroup
	for i := 0; i < 2; i++ {
		consumerWg.Add(1)
		go func(id int) {
			defer consumerWg.Done()

			// 处理日志直到队列关闭且为空
			for {
				entry, err := queue.Dequeue(context.Background())
				if errors.Is(err, ErrQueueClosed) {
					sugar.Debugf("消费者%d: 队列已关闭并为空，退出", id)
					return
				}
				sugar.Debugf("消费者%d: 处理日志 %s", id, entry)
			}
		}(i)
	}

	producerWg.Wait()
	queue.Close()
	consumerWg.Wait()

	stats := queue.Stats()
	sugar.Infow("队列统计",
		"capacity", stats.Capacity,
		"size", stats.Size,
		"enqueued", stats.EnqueueCount,
		"dequeued", stats.DequeueCount)
	return stats
}
