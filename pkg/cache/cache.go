package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/AmirH031/SamanKhojo-sub003/pkg/logger"

	"go.uber.org/fx"
)

var (
	Module      = fx.Provide(New)
	ErrNotFound = errors.New("key not found")
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
	}

	ICache interface {
		Set(key string, value interface{}, ttl time.Duration) error
		Delete(key string) error
		GetObj(key string, value interface{}) error
	}

	cache struct {
		logger   logger.Logger
		expires  map[string]time.Time
		memCache map[string][]byte
		m        sync.RWMutex
	}
)

func New(p Params) ICache {
	return &cache{
		logger:   p.Logger,
		memCache: map[string][]byte{},
		expires:  map[string]time.Time{},
	}
}

func (c *cache) Set(key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.m.Lock()
	defer c.m.Unlock()

	c.memCache[key] = b
	if ttl > 0 {
		c.expires[key] = time.Now().Add(ttl)
	} else {
		delete(c.expires, key)
	}
	return nil
}

func (c *cache) Delete(key string) error {
	c.m.Lock()
	defer c.m.Unlock()

	delete(c.memCache, key)
	delete(c.expires, key)
	return nil
}

func (c *cache) GetObj(key string, value interface{}) error {
	c.m.RLock()
	b, ok := c.memCache[key]
	exp, hasExp := c.expires[key]
	c.m.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if hasExp && time.Now().After(exp) {
		_ = c.Delete(key)
		return ErrNotFound
	}

	return json.Unmarshal(b, value)
}
