package ast

import "github.com/minio/highwayhash"

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// identity accumulates the position-free bytes that define a node.
type identity struct {
	buf []byte
}

func newIdentity(nt NodeType) *identity {
	return &identity{buf: []byte{byte(nt)}}
}

func (id *identity) byte(b uint8) *identity {
	id.buf = append(id.buf, b)
	return id
}

func (id *identity) flag(set bool) *identity {
	if set {
		return id.byte(1)
	}
	return id.byte(0)
}

// path writes each segment NUL-terminated, then a path terminator, so
// ["a.b"] and ["a", "b"] never collide.
func (id *identity) path(p *Path) *identity {
	for _, seg := range p.Segments {
		id.buf = append(id.buf, seg.Value...)
		id.buf = append(id.buf, 0)
	}
	return id.byte(0xff)
}

func (id *identity) sum() uint64 {
	return highwayhash.Sum64(id.buf, hashKey)
}
