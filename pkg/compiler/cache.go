package compiler

import (
	"sync"

	"github.com/cesnet/pynspect/internal/treehash"
	"github.com/cesnet/pynspect/pkg/ast"
)

// Cache memoizes Compile by the structural hash of its input tree, so a
// filter re-parsed (or re-submitted) with the same shape skips the
// lift/fold walk entirely. The zero value uses the default typed-field
// registry; set Compiler to consult a custom one.
type Cache struct {
	// Compiler performs the actual lift/fold work on a cache miss. Nil
	// means the package default registry.
	Compiler *Compiler

	mu    sync.RWMutex
	trees map[uint64]*ast.Node
}

func (c *Cache) compiler() *Compiler {
	if c.Compiler != nil {
		return c.Compiler
	}
	return defaultCompiler
}

// Compile returns the cached compiled tree for n's structural hash,
// compiling and storing it on a miss. A hash collision between two
// differently-shaped trees would return the wrong cached result; accept
// that risk rather than guarding against hashstructure collisions
// explicitly.
func (c *Cache) Compile(n *ast.Node) (*ast.Node, error) {
	h, err := treehash.Hash(n)
	if err != nil {
		return c.compiler().Compile(n)
	}

	c.mu.RLock()
	if c.trees != nil {
		if cached, ok := c.trees[h]; ok {
			c.mu.RUnlock()
			return cached, nil
		}
	}
	c.mu.RUnlock()

	compiled, err := c.compiler().Compile(n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.trees == nil {
		c.trees = make(map[uint64]*ast.Node)
	}
	c.trees[h] = compiled
	c.mu.Unlock()

	return compiled, nil
}
