package pdx

import (
	"errors"
	"fmt"
	"unsafe"
)

// MaxInternLen is the longest string a Pool can intern.
const MaxInternLen = 511

const poolChunkSize = MaxInternLen + 1

// ErrAllocation reports an intern request the pool cannot satisfy.
var ErrAllocation = errors.New("string exceeds maximum pooled length")

// Pool is a bump allocator for immutable short strings. Allocation walks
// forward through fixed-size chunks; a fresh chunk is opened whenever the
// current one cannot fit the request. Interned strings stay valid for the
// pool's whole lifetime and are only released with it, which removes
// per-string bookkeeping under heavy string-token volume at the cost of
// bounded waste at the end of each chunk.
type Pool struct {
	chunks [][]byte
	end    int // bytes used in the newest chunk
}

// Intern copies src into the pool and returns a stable string over the
// copy. Distinct calls with equal text may or may not share storage.
func (p *Pool) Intern(src []byte) (string, error) {
	n := len(src)
	if n > MaxInternLen {
		return "", fmt.Errorf("%w: %d bytes (maximum is %d)", ErrAllocation, n, MaxInternLen)
	}
	if n == 0 {
		return "", nil
	}
	if len(p.chunks) == 0 || p.end+n > poolChunkSize {
		p.chunks = append(p.chunks, make([]byte, poolChunkSize))
		p.end = 0
	}
	chunk := p.chunks[len(p.chunks)-1]
	dst := chunk[p.end : p.end+n]
	copy(dst, src)
	p.end += n
	// The chunk bytes are never written again, so a string view over them
	// is sound and saves the second copy a string conversion would make.
	return unsafe.String(unsafe.SliceData(dst), n), nil
}
