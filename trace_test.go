package iterator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jake-scott/go-iterator"
	"github.com/jake-scott/go-iterator/iter/slice"
	"github.com/stretchr/testify/assert"
)

func TestTracedIterator(t *testing.T) {
	assert := assert.New(t)

	var msgs []string
	testTracer := func(format string, v ...any) {
		msgs = append(msgs, fmt.Sprintf("XXX "+format, v...))
	}

	s := []int{10, 20, 30}
	it := iterator.Trace(slice.Begin(s), iterator.WithTraceFunc(testTracer), iterator.WithTraceLabel("ints"))
	end := iterator.Trace(slice.End(s), iterator.WithTracing(false))

	assert.Len(msgs, 1)
	assert.Contains(msgs[0], "START [iterator #")
	assert.Contains(msgs[0], "ints")

	it.Inc()
	assert.Equal(20, *it.Deref())
	it.AddAssign(1)
	it.Dec()
	assert.Equal(1, it.Diff(iterator.Trace(slice.Begin(s), iterator.WithTracing(false))))
	assert.True(it.Ne(end))

	joined := strings.Join(msgs, "\n")
	assert.Contains(joined, "ints: increment")
	assert.Contains(joined, "ints: dereference")
	assert.Contains(joined, "ints: advance 1")
	assert.Contains(joined, "ints: decrement")
	assert.Contains(joined, "ints: equal: false")
	for _, m := range msgs {
		assert.True(strings.HasPrefix(m, "XXX "))
	}
}

func TestTracedIteratorDefaultTracer(t *testing.T) {
	assert := assert.New(t)

	saved := iterator.DefaultTracer
	defer func() { iterator.DefaultTracer = saved }()

	var buf string
	iterator.DefaultTracer = func(format string, v ...any) {
		buf = fmt.Sprintf("YYY "+format, v...)
	}

	it := iterator.Trace(slice.Begin([]string{"a", "b"}))
	assert.Contains(buf, "YYY")
	assert.Contains(buf, "(slice.Cursor[string])")

	it.Inc()
	assert.Contains(buf, "MSG [iterator #")
	assert.Contains(buf, "increment")

	sub := it.Value().Tracer().SubTracer("ZZZ %d", 321)
	assert.Contains(buf, "ZZZ 321")
	assert.Contains(buf, ".1] ")

	sub.End()
	assert.Contains(buf, "END [iterator #")
}

func TestTracedIteratorDisabled(t *testing.T) {
	assert := assert.New(t)

	called := false
	it := iterator.Trace(slice.Begin([]int{1, 2}),
		iterator.WithTraceFunc(func(string, ...any) { called = true }),
		iterator.WithTracing(false))

	it.Inc()
	assert.Equal(2, *it.Deref())
	assert.IsType(iterator.NullTracer{}, it.Value().Tracer())
	assert.False(called)
}

func TestTraceRange(t *testing.T) {
	assert := assert.New(t)

	var msgs []string
	testTracer := func(format string, v ...any) {
		msgs = append(msgs, fmt.Sprintf(format, v...))
	}

	r, end := iterator.TraceRange(slice.Range([]int{1, 2}),
		iterator.WithTraceFunc(testTracer), iterator.WithTraceLabel("pair"))

	// one range tracer plus one sub tracer for each end
	assert.Len(msgs, 3)
	assert.Contains(msgs[0], "START [iterator #")
	assert.Contains(msgs[1], ".1] pair / first")
	assert.Contains(msgs[2], ".2] pair / last")

	var got []int
	for v := range r.All() {
		got = append(got, *v)
	}
	assert.Equal([]int{1, 2}, got)

	joined := strings.Join(msgs, "\n")
	assert.Contains(joined, "pair / first: equal: false")
	assert.Contains(joined, "pair / first: increment")

	n := len(msgs)
	end()
	assert.Len(msgs, n+3)
	assert.Contains(msgs[n], "END [iterator #")
	assert.Contains(msgs[n], "pair / first")
	assert.Contains(msgs[n+1], "pair / last")
	assert.Contains(msgs[n+2], "] pair (")
}

func TestTraceRangeDisabled(t *testing.T) {
	assert := assert.New(t)

	called := false
	r, end := iterator.TraceRange(slice.Range([]int{1, 2}),
		iterator.WithTraceFunc(func(string, ...any) { called = true }),
		iterator.WithTracing(false))

	assert.Equal(2, r.Len())
	end()
	assert.False(called)
	assert.IsType(iterator.NullTracer{}, r.First.Value().Tracer())
}
