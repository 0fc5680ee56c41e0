package kernel

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of distinct widths kept by NewCache(0).
const DefaultCacheSize = 128

// Cache memoizes Gaussian kernels by sigma. It is safe for concurrent use.
type Cache struct {
	kernels *lru.Cache[int, []float64]
}

// NewCache returns a cache holding up to size kernels.
// If size is <= 0, DefaultCacheSize is used.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	kernels, err := lru.New[int, []float64](size)
	if err != nil {
		return nil, fmt.Errorf("kernel: failed to create cache: %w", err)
	}

	return &Cache{kernels: kernels}, nil
}

// Get returns the kernel for sigmaSamples, building it on first use.
// The returned slice is shared and must not be modified.
func (c *Cache) Get(sigmaSamples int) ([]float64, error) {
	if k, ok := c.kernels.Get(sigmaSamples); ok {
		return k, nil
	}

	k, err := Gaussian(sigmaSamples)
	if err != nil {
		return nil, err
	}

	c.kernels.Add(sigmaSamples, k)
	return k, nil
}

// Len returns the number of cached kernels.
func (c *Cache) Len() int {
	return c.kernels.Len()
}

// Purge drops all cached kernels.
func (c *Cache) Purge() {
	c.kernels.Purge()
}
