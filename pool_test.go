package kudu_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokudu/kudu"
)

func TestPool_Client(t *testing.T) {
	t.Parallel()

	newPool := func() *kudu.Pool {
		return kudu.NewPool(func(site string) (*kudu.Client, error) {
			if strings.HasPrefix(site, "bad-") {
				return nil, errors.New("no credentials for " + site)
			}
			return kudu.New(site, testToken)
		})
	}

	t.Run("same site same client", func(t *testing.T) {
		t.Parallel()

		pool := newPool()
		first, err := pool.Client("contoso")
		require.NoError(t, err)

		second, err := pool.Client("contoso")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, pool.Len())
	})

	t.Run("distinct sites distinct clients", func(t *testing.T) {
		t.Parallel()

		pool := newPool()
		a, err := pool.Client("contoso")
		require.NoError(t, err)
		b, err := pool.Client("fabrikam")
		require.NoError(t, err)

		assert.NotSame(t, a, b)
		assert.Equal(t, 2, pool.Len())
	})

	t.Run("factory error not cached", func(t *testing.T) {
		t.Parallel()

		pool := newPool()
		_, err := pool.Client("bad-site")

		require.Error(t, err)
		assert.Equal(t, 0, pool.Len(), "a failed construction must not be pooled")

		// The pool stays usable
		_, err = pool.Client("contoso")
		require.NoError(t, err)
	})

	t.Run("concurrent access yields one client", func(t *testing.T) {
		t.Parallel()

		pool := newPool()
		const goroutines = 16
		clients := make([]*kudu.Client, goroutines)

		var wg sync.WaitGroup
		for i := range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c, err := pool.Client("contoso")
				assert.NoError(t, err)
				clients[i] = c
			}()
		}
		wg.Wait()

		require.Equal(t, 1, pool.Len())
		for i := 1; i < goroutines; i++ {
			assert.Same(t, clients[0], clients[i])
		}
	})

	t.Run("nil factory", func(t *testing.T) {
		t.Parallel()

		pool := kudu.NewPool(nil)
		_, err := pool.Client("contoso")
		require.Error(t, err)
	})
}

func TestPool_Range(t *testing.T) {
	t.Parallel()

	pool := kudu.NewPool(func(site string) (*kudu.Client, error) {
		return kudu.New(site, testToken)
	})
	for _, site := range []string{"contoso", "fabrikam", "tailwind"} {
		_, err := pool.Client(site)
		require.NoError(t, err)
	}

	visited := map[string]bool{}
	pool.Range(func(site string, c *kudu.Client) bool {
		visited[site] = true
		assert.Equal(t, site, c.Site())
		return true
	})

	assert.Equal(t, map[string]bool{"contoso": true, "fabrikam": true, "tailwind": true}, visited)

	t.Run("early stop", func(t *testing.T) {
		count := 0
		pool.Range(func(site string, c *kudu.Client) bool {
			count++
			return false
		})
		assert.Equal(t, 1, count)
	})
}
