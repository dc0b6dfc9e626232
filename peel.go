package xf8

// nilIndex terminates a slot's key list.
const nilIndex = ^uint32(0)

// peeler holds the scratch state of one construction. Each slot owns a
// singly linked list of the keys hashing to it; the links live in
// nodes, one array per partition, indexed by key.
//
// The queue and the stack share storage. Every pop from the queue pushes
// at most one entry onto the stack, so the stack never catches up with
// the unread part of the queue. Each slot becomes a singleton at most
// once, so the queue never needs more than one entry per slot.
type peeler struct {
	filter *XorFilterCommon
	keys   []uint64
	seed   uint32

	sets  []uint32
	queue []uint32
	stack []uint32
	nodes [3][]uint32

	head, tail, top uint32
}

// scratchWords is the size of the construction buffer in 32-bit words.
func scratchWords(length, count uint64) (uint64, error) {
	if length >= uint64(nilIndex) || count >= uint64(nilIndex) {
		return 0, ErrIndexOverflow
	}
	words := 2*length + 3*count
	if words > uint64(^uint(0)>>1)/4 {
		return 0, ErrIndexOverflow
	}
	return words, nil
}

func newPeeler(filter *XorFilterCommon, keys []uint64, buf []uint32) *peeler {
	length := int(3 * filter.BlockLength)
	count := len(keys)
	p := &peeler{
		filter: filter,
		keys:   keys,
		sets:   buf[:length],
		queue:  buf[length : 2*length],
	}
	p.stack = p.queue
	nodes := buf[2*length:]
	for j := range p.nodes {
		p.nodes[j] = nodes[j*count : (j+1)*count]
	}
	return p
}

// reset threads every key onto its three slot lists under seed and
// queues the slots holding exactly one key.
func (p *peeler) reset(seed uint32) {
	p.seed = seed
	for i := range p.sets {
		p.sets[i] = nilIndex
	}
	for k, key := range p.keys {
		c := p.filter.indices(key, seed)
		for j := range c {
			p.nodes[j][k] = p.sets[c[j]]
			p.sets[c[j]] = uint32(k)
		}
	}
	p.head, p.tail, p.top = 0, 0, 0
	for i := range p.sets {
		if p.singleton(uint64(i)) {
			p.queue[p.head] = uint32(i)
			p.head++
		}
	}
}

func (p *peeler) partition(slot uint64) int {
	return int(slot / p.filter.BlockLength)
}

// singleton reports whether exactly one unpeeled key maps to slot.
func (p *peeler) singleton(slot uint64) bool {
	k := p.sets[slot]
	return k != nilIndex && p.nodes[p.partition(slot)][k] == nilIndex
}

// unlink removes key k from the list of slot in partition j.
func (p *peeler) unlink(j int, slot uint64, k uint32) {
	next := p.nodes[j]
	if p.sets[slot] == k {
		p.sets[slot] = next[k]
		return
	}
	prev := p.sets[slot]
	for next[prev] != k {
		prev = next[prev]
	}
	next[prev] = next[k]
}

// peel drains the queue and returns the number of keys peeled. A result
// below len(keys) means a cycle remains under this seed.
func (p *peeler) peel() int {
	for p.tail != p.head {
		i := uint64(p.queue[p.tail])
		p.tail++
		if !p.singleton(i) {
			continue
		}
		k := p.sets[i]
		c := p.filter.indices(p.keys[k], p.seed)
		for j := range c {
			p.unlink(j, c[j], k)
			if p.singleton(c[j]) {
				p.queue[p.head] = uint32(c[j])
				p.head++
			}
		}
		// k is off every list now, so its first link is free to record
		// the slot it was peeled from.
		p.stack[p.top] = k
		p.top++
		p.nodes[0][k] = uint32(i)
	}
	return int(p.top)
}

// pop returns the most recently peeled key and the slot it owns.
func (p *peeler) pop() (k uint32, slot uint64, ok bool) {
	if p.top == 0 {
		return 0, 0, false
	}
	p.top--
	k = p.stack[p.top]
	return k, uint64(p.nodes[0][k]), true
}
