package kudu

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
)

// Pool hands out one Client per site, constructing each through the supplied
// factory on first use. It suits callers fanning the same operation out over
// many sites; lookups after the first are lock-free map reads.
type Pool struct {
	factory func(site string) (*Client, error)
	clients *xsync.Map[string, *Client]
}

// NewPool creates a Pool. The factory runs once per distinct site; if two
// goroutines race on the same new site, the first stored client wins and the
// loser's client is discarded unused.
func NewPool(factory func(site string) (*Client, error)) *Pool {
	return &Pool{
		factory: factory,
		clients: xsync.NewMap[string, *Client](),
	}
}

// Client returns the pooled client for site, creating it on first use.
func (p *Pool) Client(site string) (*Client, error) {
	if p == nil || p.factory == nil {
		return nil, fmt.Errorf("kudu: pool has no client factory")
	}
	if c, ok := p.clients.Load(site); ok {
		return c, nil
	}
	c, err := p.factory(site)
	if err != nil {
		return nil, err
	}
	actual, _ := p.clients.LoadOrStore(site, c)
	return actual, nil
}

// Len returns the number of clients currently pooled.
func (p *Pool) Len() int { return p.clients.Size() }

// Range visits every pooled client until fn returns false.
func (p *Pool) Range(fn func(site string, c *Client) bool) {
	p.clients.Range(fn)
}
