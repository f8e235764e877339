package cache_strategies

/*
FIFO（First In First Out）缓存替换算法

原理：
FIFO基于"先进先出"原则淘汰数据。
最先进入缓存的数据在缓存满时会被优先淘汰，不考虑数据的访问频率和时间。

实现方式：
- 单向链表维护入队顺序：新数据 AddLast，淘汰时 RemoveFirst，两者都是O(1)
- 哈希表提供O(1)的快速查找
- 手动删除需要从头遍历找到节点下标，再 RemoveAt，O(n)

以下实现了一个基本的FIFO缓存，支持Get、Put和Remove操作。
*/

import (
	"github.com/strive/slist/linkedlist"
	"github.com/strive/slist/logger"
	"go.uber.org/zap"
)

// FIFONode FIFO缓存节点结构
type FIFONode struct {
	Key   string
	Value interface{}
}

// FIFOCache FIFO缓存结构
type FIFOCache struct {
	capacity int                                    // 最大容量
	queue    *linkedlist.List[*FIFONode]            // 队列：维护先进先出顺序
	cache    map[string]*linkedlist.Node[*FIFONode] // 哈希表：键 -> 队列节点
	lg       *zap.Logger
}

// NewFIFOCache 创建指定容量的FIFO缓存，lg为nil时不输出日志
func NewFIFOCache(capacity int, lg *zap.Logger) *FIFOCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &FIFOCache{
		capacity: capacity,
		queue:    linkedlist.New[*FIFONode](),
		cache:    make(map[string]*linkedlist.Node[*FIFONode]),
		lg:       logger.OrNop(lg),
	}
}

// Get 获取缓存中的值，不存在返回nil和false
func (c *FIFOCache) Get(key string) (interface{}, bool) {
	if node, exists := c.cache[key]; exists {
		// 不改变位置（与LRU不同）
		return node.Value.Value, true
	}
	return nil, false
}

// Put 插入或更新缓存中的键值对
func (c *FIFOCache) Put(key string, value interface{}) {
	// 键已存在只更新值
	if node, exists := c.cache[key]; exists {
		node.Value.Value = value
		return
	}

	if c.queue.Len() >= c.capacity {
		if oldest := c.queue.RemoveFirst(); oldest != nil {
			delete(c.cache, oldest.Value.Key)
			c.lg.Debug("fifo evict", zap.String("key", oldest.Value.Key))
		}
	}

	node := linkedlist.NewNode(&FIFONode{Key: key, Value: value})
	c.queue.AddLast(node)
	c.cache[key] = node
}

// Remove 从缓存中删除指定键
func (c *FIFOCache) Remove(key string) bool {
	node, exists := c.cache[key]
	if !exists {
		return false
	}

	index := 0
	for n := c.queue.Head(); n != nil && n != node; n = n.Next() {
		index++
	}
	// 找不到节点时index等于Len()，RemoveAt返回越界错误
	if _, err := c.queue.RemoveAt(index); err != nil {
		// map与队列不一致
		c.lg.Error("fifo remove", zap.String("key", key), zap.Error(err))
		return false
	}
	delete(c.cache, key)
	return true
}

// Size 返回当前缓存中的元素数量
func (c *FIFOCache) Size() int {
	return c.queue.Len()
}

// Clear 清空缓存
func (c *FIFOCache) Clear() {
	c.queue.Clear()
	c.cache = make(map[string]*linkedlist.Node[*FIFONode])
}

// Keys 返回缓存中所有键的列表（按FIFO顺序）
func (c *FIFOCache) Keys() []string {
	entries := linkedlist.ToSlice(c.queue)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// FIFOCacheDemo 场景示例：网络请求缓存
func FIFOCacheDemo(capacity int, lg *zap.Logger) {
	lg = logger.OrNop(lg)
	cache := NewFIFOCache(capacity, lg)

	sugar := lg.Sugar()
	sugar.Infof("网络请求缓存示例 (FIFO缓存容量=%d)", capacity)

	cache.Put("api/users", "用户列表数据")
	cache.Put("api/products", "产品列表数据")
	cache.Put("api/orders", "订单列表数据")
	sugar.Infow("初始缓存状态", "keys", cache.Keys())

	if data, found := cache.Get("api/users"); found {
		sugar.Infof("获取数据: api/users = %v", data)
	}

	// 容量满时淘汰最早进入的数据
	cache.Put("api/settings", "系统设置数据")
	sugar.Infow("添加新数据后", "keys", cache.Keys())

	if _, found := cache.Get("api/users"); !found {
		sugar.Info("数据不存在: api/users (已被淘汰)")
	}

	cache.Remove("api/products")
	sugar.Infow("删除数据后", "keys", cache.Keys())
}
