// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

// Chain is a lazy, singly-linked sequence of byte slices used
// throughout the mechanism layer as the universal "concatenated
// input" argument. It lets a caller express a logical concatenation
// of several buffers — entropy, a nonce, a personalization string —
// without copying them into one contiguous allocation first.
//
// A Chain is always a borrowed view: it never owns the bytes in its
// nodes, and a caller must keep every slice it passed in alive for as
// long as the Chain (or anything spliced onto it) is in use.
type Chain struct {
	data []byte
	next *Chain
}

// NewChain wraps a single byte slice as the head of a chain. A nil or
// empty slice is valid and contributes zero bytes.
func NewChain(data []byte) *Chain {
	return &Chain{data: data}
}

// Append links a new node holding data after the current tail of c
// and returns c, the head. Append walks to the tail itself so callers
// can build a chain by repeated calls against the head.
func (c *Chain) Append(data []byte) *Chain {
	tail := c
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = &Chain{data: data}
	return c
}

// Len returns the total number of bytes across every node.
func (c *Chain) Len() int {
	n := 0
	for node := c; node != nil; node = node.next {
		n += len(node.data)
	}
	return n
}

// Bytes flattens the chain into one contiguous slice. This is the
// usual way a primitive adapter consumes a chain: hash.Write and
// cipher.Encrypt both want a single []byte, so the mechanism layer
// flattens just before handing data to C1.
func (c *Chain) Bytes() []byte {
	out := make([]byte, 0, c.Len())
	for node := c; node != nil; node = node.next {
		out = append(out, node.data...)
	}
	return out
}

// splice appends extra nodes after c's current tail and returns a
// restore function that resets the tail's next pointer back to nil.
// hashEngine.update uses it to attach the caller's seed nodes after
// its own 0x01||V prefix without copying them, while guaranteeing the
// prefix's tail node is never left pointing at the caller's nodes
// after the call returns.
func splice(c *Chain, extra ...[]byte) (restore func()) {
	tail := c
	for tail.next != nil {
		tail = tail.next
	}
	head := tail
	for _, e := range extra {
		node := &Chain{data: e}
		tail.next = node
		tail = node
	}
	return func() { head.next = nil }
}
