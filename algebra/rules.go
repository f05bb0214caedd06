// SPDX-License-Identifier: MIT

// File: rules.go
// Role: Multiplication Rule Engine (structure constants).
//
// Mirroring:
//   - AddRule(a,b,r) also stores (b,a)=r when (b,a) has no entry yet, so the
//     algebra is commutative unless told otherwise. For non-commutative tables
//     this makes declaration order significant: declaring a·b first locks b·a
//     to the same value until b·a is declared explicitly. AddDirectedRule
//     never mirrors.
package algebra

import (
	"fmt"
	"log/slog"
)

// Rule is one declared product left·right = Result.
type Rule struct {
	Left   string
	Right  string
	Result Element
}

// AddRule declares left·right = result and mirrors it to right·left when that
// pair is still undeclared. Redeclaring a pair overwrites it (last write wins).
// Unknown names are declared.
//
// Errors:
//   - ErrEmptyName, ErrInvalidOperand, ErrForeignContext.
//
// Complexity:
//   - Time O(1) amortized.
func (c *Context) AddRule(left, right string, result Operand) error {
	return c.addRule(left, right, result, true)
}

// AddDirectedRule declares left·right = result without touching right·left.
func (c *Context) AddDirectedRule(left, right string, result Operand) error {
	return c.addRule(left, right, result, false)
}

func (c *Context) addRule(left, right string, result Operand, mirror bool) error {
	l, err := normalizeName(left)
	if err != nil {
		return algebraErrorf(opAddRule, err)
	}
	r, err := normalizeName(right)
	if err != nil {
		return algebraErrorf(opAddRule, err)
	}
	res, err := c.operandElement(result)
	if err != nil {
		return algebraErrorf(opAddRule, err)
	}

	c.mu.Lock()
	c.declareLocked(l)
	c.declareLocked(r)
	c.setRuleLocked(pairKey{l, r}, res)
	if mirror {
		c.setRuleIfAbsentLocked(pairKey{r, l}, res)
	}
	c.mu.Unlock()

	c.opts.logger.Debug("rule declared",
		slog.String("left", l), slog.String("right", r), slog.Bool("mirrored", mirror))

	return nil
}

// setRuleLocked stores key=res. Caller holds c.mu (write).
func (c *Context) setRuleLocked(key pairKey, res Element) {
	if _, ok := c.table[key]; !ok {
		c.rules = append(c.rules, key)
	}
	c.table[key] = res
}

// setRuleIfAbsentLocked stores key=res unless key already has an entry.
func (c *Context) setRuleIfAbsentLocked(key pairKey, res Element) {
	if _, ok := c.table[key]; ok {
		return
	}
	c.setRuleLocked(key, res)
}

// Lookup returns the declared product left·right.
//
// Errors:
//   - ErrMissingRule if the pair is undeclared.
func (c *Context) Lookup(left, right string) (Element, error) {
	l, err := normalizeName(left)
	if err != nil {
		return Element{}, algebraErrorf(opLookup, err)
	}
	r, err := normalizeName(right)
	if err != nil {
		return Element{}, algebraErrorf(opLookup, err)
	}
	c.mu.RLock()
	res, ok := c.table[pairKey{l, r}]
	c.mu.RUnlock()
	if !ok {
		return Element{}, algebraErrorf(opLookup, fmt.Errorf("%s·%s: %w", l, r, ErrMissingRule))
	}

	return res, nil
}

// HasRule reports whether left·right is declared.
func (c *Context) HasRule(left, right string) bool {
	l, errL := normalizeName(left)
	r, errR := normalizeName(right)
	if errL != nil || errR != nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.table[pairKey{l, r}]

	return ok
}

// Rules returns a snapshot of every declared product in first-declaration
// order (identity products included).
func (c *Context) Rules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Rule, 0, len(c.rules))
	for _, k := range c.rules {
		out = append(out, Rule{Left: k.left, Right: k.right, Result: c.table[k]})
	}

	return out
}

// reportMissing applies the missing-rule policy to one ordered pair.
// Must be called without holding c.mu: the hook may re-enter the Context.
func (c *Context) reportMissing(left, right string) error {
	if c.opts.onMissing != nil {
		c.opts.onMissing(left, right)
	}
	if c.opts.policy == MissingRuleFail {
		return fmt.Errorf("%s·%s: %w", left, right, ErrMissingRule)
	}
	c.opts.logger.Warn("missing product", slog.String("left", left), slog.String("right", right))

	return nil
}
