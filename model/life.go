package model

import (
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Life produces successive generations of a universe
type Life[T comparable] struct {
	current    *Universe[T]
	regenerate func() T
	generation int

	workers int
	buffers *bufferPool[T]
}

// NewLife starts life from a universe, regenerate creates the cells that are born
func NewLife[T comparable](start *Universe[T], regenerate func() T) *Life[T] {
	return &Life[T]{
		current:    start,
		regenerate: regenerate,
		workers:    1,
	}
}

// WithWorkers splits each step across n workers, n <= 1 computes sequentially.
// With more than one worker regenerate is called concurrently.
func (l *Life[T]) WithWorkers(n int) *Life[T] {
	l.workers = max(n, 1)
	if l.workers > 1 && l.buffers == nil {
		l.buffers = newBufferPool[T]()
	}
	return l
}

// Workers returns the number of workers a step uses
func (l *Life[T]) Workers() int {
	return l.workers
}

// Current returns the latest generation
func (l *Life[T]) Current() *Universe[T] {
	return l.current
}

// Generation returns the number of steps taken
func (l *Life[T]) Generation() int {
	return l.generation
}

// Next calculates the next generation, makes it current and returns it
func (l *Life[T]) Next() *Universe[T] {
	var next *Universe[T]
	if l.workers > 1 {
		next = l.nextParallel()
	} else {
		next = l.nextSequential()
	}
	l.current = next
	l.generation++
	return next
}

// All iterates generations forever, every pull advances life by one step
func (l *Life[T]) All() iter.Seq[*Universe[T]] {
	return func(yield func(*Universe[T]) bool) {
		for {
			if !yield(l.Next()) {
				return
			}
		}
	}
}

// cellAt computes the next value of p reading only the current universe
func (l *Life[T]) cellAt(p Position) (T, bool) {
	cur := l.current
	v, ok := cur.cells[p]
	return rules.NextCell(v, ok, cur.Neighbors(p.X, p.Y), l.regenerate)
}

func (l *Life[T]) nextSequential() *Universe[T] {
	next := l.current.EmptyCopy()
	for p := range l.current.Positions() {
		if v, ok := l.cellAt(p); ok {
			next.cells[p] = v
		}
	}
	return next
}

// nextParallel stripes rows across workers, each stripe buffers its cells and the buffers are
// written to the next universe only after every worker finished reading
func (l *Life[T]) nextParallel() *Universe[T] {
	var (
		cur           = l.current
		next          = cur.EmptyCopy()
		numWorkers    = min(l.workers, cur.height)
		rowsPerWorker = (cur.height + numWorkers - 1) / numWorkers // Ceiling division
		stripes       = make([]*[]placement[T], numWorkers)
		eg            errgroup.Group
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, cur.height)
		)
		if startRow >= cur.height {
			break
		}

		buf := l.buffers.Get()
		stripes[i] = buf
		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := range cur.width {
					p := Position{X: x, Y: y}
					if v, ok := l.cellAt(p); ok {
						*buf = append(*buf, placement[T]{pos: p, value: v})
					}
				}
			}
			return nil
		})
	}

	// workers never fail, Wait is only the barrier
	_ = eg.Wait()

	for _, buf := range stripes {
		if buf == nil {
			continue
		}
		for _, pl := range *buf {
			next.cells[pl.pos] = pl.value
		}
		l.buffers.Put(buf)
	}
	return next
}
