package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/strive/slist/cache_strategies"
	"github.com/strive/slist/concurrency"
	"github.com/strive/slist/conf"
	"github.com/strive/slist/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML配置文件路径，为空时使用默认配置")
	scenario := flag.String("run", "all", "要运行的演示: list, fifo, queue, all")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewZapLogger(cfg.Log.Name, cfg.Log.Dir, cfg.Log.Level, cfg.Log.MaxSize, cfg.Log.MaxAge, cfg.Log.Stdout))
	lg := logger.GetLogger()
	defer lg.Sync()

	if err := run(*scenario, cfg, lg); err != nil {
		lg.Error("demo failed", zap.String("run", *scenario), zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*conf.Config, error) {
	if path == "" {
		return conf.Default(), nil
	}
	return conf.Load(path)
}

// 按名称运行演示
func run(scenario string, cfg *conf.Config, lg *zap.Logger) error {
	switch scenario {
	case "list":
		return LinkedListDemo(cfg.Demo.Values, lg)
	case "fifo":
		cache_strategies.FIFOCacheDemo(cfg.Demo.FIFOCapacity, lg)
	case "queue":
		concurrency.ProducerConsumerDemo(cfg.Demo.QueueCapacity, cfg.Demo.Producers, cfg.Demo.ItemsPerProducer, lg)
	case "all":
		if err := LinkedListDemo(cfg.Demo.Values, lg); err != nil {
			return err
		}
		cache_strategies.FIFOCacheDemo(cfg.Demo.FIFOCapacity, lg)
		concurrency.ProducerConsumerDemo(cfg.Demo.QueueCapacity, cfg.Demo.Producers, cfg.Demo.ItemsPerProducer, lg)
	default:
		return fmt.Errorf("unknown demo %q", scenario)
	}
	return nil
}
