package conf

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Log struct {
	Dir     string `toml:"dir"`
	Name    string `toml:"name"`
	Level   string `toml:"level"`
	MaxSize int    `toml:"max_size"` // MB
	MaxAge  int    `toml:"max_age"`  // 天
	Stdout  bool   `toml:"stdout"`
}

type Demo struct {
	Values           []int `toml:"values"`
	FIFOCapacity     int   `toml:"fifo_capacity"`
	QueueCapacity    int   `toml:"queue_capacity"`
	Producers        int   `toml:"producers"`
	ItemsPerProducer int   `toml:"items_per_producer"`
}

// Config 演示程序配置
type Config struct {
	Log  Log  `toml:"log"`
	Demo Demo `toml:"demo"`
}

func Default() *Config {
	return &Config{
		Log: Log{
			Dir:     "log",
			Name:    "slist.log",
			Level:   "info",
			MaxSize: 100,
			MaxAge:  14,
			Stdout:  true,
		},
		Demo: Demo{
			Values:           []int{1, 2, 3, 4, 5},
			FIFOCapacity:     3,
			QueueCapacity:    5,
			Producers:        3,
			ItemsPerProducer: 10,
		},
	}
}

// Parse 在默认配置上解析TOML文本
func Parse(data string) (*Config, error) {
	c := Default()
	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c, c.check()
}

// Load 在默认配置上加载TOML文件
func Load(path string) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, c.check()
}

func (c *Config) check() error {
	if c.Demo.FIFOCapacity <= 0 {
		return fmt.Errorf("%w: fifo_capacity must be positive, got %d", ErrInvalidConfig, c.Demo.FIFOCapacity)
	}
	if c.Demo.QueueCapacity <= 0 {
		return fmt.Errorf("%w: queue_capacity must be positive, got %d", ErrInvalidConfig, c.Demo.QueueCapacity)
	}
	if c.Demo.Producers < 0 || c.Demo.ItemsPerProducer < 0 {
		return fmt.Errorf("%w: producers and items_per_producer must not be negative", ErrInvalidConfig)
	}
	return nil
}
