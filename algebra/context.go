// SPDX-License-Identifier: MIT

// File: context.go
// Role: Basis Registry (ordered basis names) owned by an explicit Context.
//
// Determinism:
//   - Basis() returns names in declaration order; the unit "1" is always first.
//   - FromMap declares unseen keys in lexicographic order.
//
// Concurrency:
//   - One sync.RWMutex guards basis and table; declarations take the write lock.
package algebra

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Unit is the name of the multiplicative unit basis element.
const Unit = "1"

// pairKey is an ordered pair (left,right) of basis names, the key of the
// multiplication table.
type pairKey struct {
	left  string
	right string
}

// Context owns a basis (ordered set of names) and its multiplication table.
// Elements are bound to the Context that created them; mixing elements of
// different contexts is a programmer error.
type Context struct {
	mu    sync.RWMutex
	order []string            // basis names in declaration order
	index map[string]int      // name -> position in order
	table map[pairKey]Element // structure constants
	rules []pairKey           // distinct declared pairs, first-declaration order

	opts Options
}

// Basis is a handle to a declared basis element.
type Basis struct {
	ctx  *Context
	name string
}

// Name returns the basis name.
func (b Basis) Name() string { return b.name }

// Element returns the single-term element 1·name.
func (b Basis) Element() Element {
	return Element{ctx: b.ctx, terms: map[string]float64{b.name: 1}}
}

// NewContext creates a Context holding only the unit, with 1·1 = 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewContext(opts ...Option) *Context {
	c := &Context{
		order: []string{Unit},
		index: map[string]int{Unit: 0},
		table: make(map[pairKey]Element),
		opts:  gatherOptions(opts...),
	}
	c.setRuleLocked(pairKey{Unit, Unit}, c.unitElement(1))

	return c
}

// normalizeName removes every whitespace rune from name.
func normalizeName(name string) (string, error) {
	n := strings.Join(strings.Fields(name), "")
	if n == "" {
		return "", ErrEmptyName
	}

	return n, nil
}

// DeclareBasis registers name if unseen (idempotent) and returns its handle.
//
// Implementation:
//   - Stage 1: normalize the name (whitespace removed; empty rejected).
//   - Stage 2: under the write lock, append it to the basis order and add the
//     identity products 1·name = name and name·1 = name where absent.
//
// Errors:
//   - ErrEmptyName.
//
// Complexity:
//   - Time O(1) amortized.
func (c *Context) DeclareBasis(name string) (Basis, error) {
	n, err := normalizeName(name)
	if err != nil {
		return Basis{}, algebraErrorf(opDeclare, err)
	}

	c.mu.Lock()
	c.declareLocked(n)
	c.mu.Unlock()

	return Basis{ctx: c, name: n}, nil
}

// declareLocked registers a normalized name. Caller holds c.mu (write).
func (c *Context) declareLocked(name string) {
	if _, ok := c.index[name]; ok {
		return
	}
	c.index[name] = len(c.order)
	c.order = append(c.order, name)

	id := Element{ctx: c, terms: map[string]float64{name: 1}}
	c.setRuleIfAbsentLocked(pairKey{Unit, name}, id)
	c.setRuleIfAbsentLocked(pairKey{name, Unit}, id)

	c.opts.logger.Debug("basis declared", slog.String("name", name), slog.Int("basis_size", len(c.order)))
}

// declareAll registers normalized names, unseen ones in lexicographic order.
func (c *Context) declareAll(names []string) {
	c.mu.RLock()
	var fresh []string
	for _, n := range names {
		if _, ok := c.index[n]; !ok {
			fresh = append(fresh, n)
		}
	}
	c.mu.RUnlock()
	if len(fresh) == 0 {
		return
	}
	sort.Strings(fresh)

	c.mu.Lock()
	for _, n := range fresh {
		c.declareLocked(n)
	}
	c.mu.Unlock()
}

// HasBasis reports whether name (after whitespace removal) is declared.
func (c *Context) HasBasis(name string) bool {
	n, err := normalizeName(name)
	if err != nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[n]

	return ok
}

// Basis returns a snapshot of the basis names in declaration order.
func (c *Context) Basis() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Size returns the number of declared basis elements (the unit included).
func (c *Context) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// sortTerms orders ts by basis position.
func (c *Context) sortTerms(ts []Term) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sort.Slice(ts, func(i, j int) bool {
		return c.index[ts[i].Name] < c.index[ts[j].Name]
	})
}
