package seq

import "iter"

// SeqReader reads chunks of values from an iter.Seq into caller-provided
// buffers without allocating a slice per chunk.
type SeqReader[T any] struct {
	// next and stop are the pair returned by iter.Pull.
	next func() (T, bool)
	stop func()
	done bool
}

// Read fills buf with the next values of the sequence and returns how many were
// written. A count smaller than len(buf) means the sequence is exhausted; every
// later call returns 0.
func (r *SeqReader[T]) Read(buf []T) int {
	if r.done {
		return 0
	}

	var head int
	for head < len(buf) {
		value, ok := r.next()
		if !ok {
			r.Close()
			break
		}
		buf[head] = value
		head++
	}
	return head
}

// Close releases the underlying pull iterator. It is safe to call more than once.
func (r *SeqReader[T]) Close() error {
	if !r.done {
		r.done = true
		r.stop()
	}
	return nil
}

// NewSeqReader constructs a SeqReader over seq.
func NewSeqReader[T any](seq iter.Seq[T]) *SeqReader[T] {
	next, stop := iter.Pull(seq)
	return &SeqReader[T]{
		next: next,
		stop: stop,
	}
}

// Fill copies values from seq into dst until either runs out and returns the
// number of values copied.
func Fill[T any](dst []T, seq iter.Seq[T]) int {
	r := NewSeqReader(seq)
	defer r.Close()
	return r.Read(dst)
}
