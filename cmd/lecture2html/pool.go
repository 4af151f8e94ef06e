package main

import (
	"context"

	shortstobenz "github.com/adventure705/shortstobenz3"
)

// LectureConverter converts one lecture.
type LectureConverter interface {
	Convert(ctx context.Context, input shortstobenz.Input) (*shortstobenz.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ LectureConverter = (*shortstobenz.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (LectureConverter, error)
	Release(LectureConverter)
	Size() int
	Close() error
}

// converterPool adapts shortstobenz.ConverterPool to Pool.
type converterPool struct {
	pool *shortstobenz.ConverterPool
}

// Compile-time check that converterPool implements Pool.
var _ Pool = (*converterPool)(nil)

func newConverterPool(size int, opts ...shortstobenz.Option) Pool {
	return &converterPool{pool: shortstobenz.NewConverterPool(size, opts...)}
}

func (p *converterPool) Acquire() (LectureConverter, error) {
	c, err := p.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *converterPool) Release(c LectureConverter) {
	if conv, ok := c.(*shortstobenz.Converter); ok {
		p.pool.Release(conv)
	}
}

func (p *converterPool) Size() int    { return p.pool.Size() }
func (p *converterPool) Close() error { return p.pool.Close() }
