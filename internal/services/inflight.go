package services

import "sync"

// InflightGuard admits one running operation per key.
type InflightGuard struct {
	running sync.Map
}

// Acquire reports false when key is already running.
func (g *InflightGuard) Acquire(key string) bool {
	_, loaded := g.running.LoadOrStore(key, struct{}{})
	return !loaded
}

func (g *InflightGuard) Release(key string) {
	g.running.Delete(key)
}
