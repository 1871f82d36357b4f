// search/search.go

// Package search generates synthetic flight, hotel and rental-car
// inventory with realistic pricing. It stands in for the real supplier
// integrations; everything downstream treats its output as opaque
// candidate offers.
package search

import (
	"math/rand"
	"sync"
	"time"
)

// Client produces mock offers. The random source is injectable so
// tests can pin the output; NewClient seeds from the clock.
type Client struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewClient() *Client {
	return NewClientWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewClientWithSource(src rand.Source) *Client {
	return &Client{rng: rand.New(src)}
}

// intn is rand.Intn behind the client's lock; gin handlers call the
// client concurrently and *rand.Rand is not goroutine-safe.
func (c *Client) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

func (c *Client) float64n() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}

// nightsBetween returns the stay length for a checkin/checkout pair.
// Missing or unparseable dates fall back to a 3-night stay.
func nightsBetween(checkin, checkout string) int {
	d1, err1 := time.Parse("2006-01-02", checkin)
	d2, err2 := time.Parse("2006-01-02", checkout)
	if err1 != nil || err2 != nil {
		return 3
	}
	nights := int(d2.Sub(d1).Hours() / 24)
	if nights <= 0 {
		return 1
	}
	return nights
}
