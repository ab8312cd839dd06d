package providers

import "swiped/internal/structures"

// metricsCache wraps a cache and counts hits/misses.
type metricsCache struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func NewCacheMetricsProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	return &metricsCache{
		inner:   NewCacheProvider(conf, logger),
		metrics: metrics,
	}
}

func (mc *metricsCache) Get(key string) ([]byte, bool) {
	val, ok := mc.inner.Get(key)
	if ok {
		mc.metrics.IncCacheHits()
	} else {
		mc.metrics.IncCacheMisses()
	}
	return val, ok
}

func (mc *metricsCache) Set(key string, value []byte) {
	mc.inner.Set(key, value)
}

func (mc *metricsCache) Del(key string) {
	mc.inner.Del(key)
}
