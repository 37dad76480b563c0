package router

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiters struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		clients:   make(map[string]*client),
		limit:     limit,
		burst:     burst,
		lastSweep: time.Now(),
	}
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	if now.Sub(cl.lastSweep) > limiterIdleTTL {
		for k, c := range cl.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(cl.clients, k)
			}
		}
		cl.lastSweep = now
	}

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}
