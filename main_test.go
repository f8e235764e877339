package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/strive/slist/conf"
	"go.uber.org/zap/zaptest"
)

func TestLinkedListDemo(t *testing.T) {
	lg := zaptest.NewLogger(t)
	assert.NoError(t, LinkedListDemo([]int{1, 2, 3, 4, 5}, lg))
	assert.NoError(t, LinkedListDemo(nil, lg))
}

func TestRun(t *testing.T) {
	cfg := conf.Default()
	cfg.Demo.ItemsPerProducer = 3
	lg := zaptest.NewLogger(t)

	for _, name := range []string{"list", "fifo", "queue", "all"} {
		assert.NoError(t, run(name, cfg, lg), name)
	}
	assert.Error(t, run("sort", cfg, lg))
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, conf.Default(), cfg)
}
