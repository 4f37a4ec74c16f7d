package iterator

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type Tracer interface {
	SubTracer(description string, v ...any) Tracer
	Msg(format string, v ...any)
	End()
}

// TraceFunc defines the function prototype of a tracing function
// Per iterator functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all traced iterators.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

var traceCounter atomic.Uint32

type tracer struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      atomic.Uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc, v ...any) *tracer {
	if f == nil {
		f = DefaultTracer
	}

	description = fmt.Sprintf(description, v...)

	t := &tracer{
		description: description,
		ids:         []uint32{id},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [iterator #%s] %s", t.begin.Format(time.RFC3339), t.id(), t.description)
}

func (t *tracer) SubTracer(description string, v ...any) Tracer {
	subId := t.subids.Add(1)

	t2 := &tracer{
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), subId),
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *tracer) Msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id(), t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [iterator #%s] %s: "+format, args...)
}

func (t *tracer) End() {
	t.traceFunc("%s: END [iterator #%s] %s (%s)", time.Now().Format(time.RFC3339), t.id(), t.description,
		time.Since(t.begin).Round(time.Microsecond))
}

type NullTracer struct{}

func (t NullTracer) SubTracer(description string, v ...any) Tracer { return t }
func (t NullTracer) Msg(string, ...any)                            {}
func (t NullTracer) End()                                          {}

type traceOptions struct {
	traceFunc TraceFunc
	label     string
	enabled   bool
}

// TraceOptions customize the tracer attached by Trace.
type TraceOption func(o *traceOptions)

// WithTraceFunc sets the trace function.  If not set, DefaultTracer is used.
func WithTraceFunc(f TraceFunc) TraceOption {
	return func(o *traceOptions) {
		o.traceFunc = f
	}
}

// WithTraceLabel sets the description printed with every trace message.
// The default is the type of the base iterator.
func WithTraceLabel(label string) TraceOption {
	return func(o *traceOptions) {
		o.label = label
	}
}

// WithTracing enables or disables tracing.  A disabled traced iterator
// behaves exactly like its base.  Tracing is enabled by default.
func WithTracing(enable bool) TraceOption {
	return func(o *traceOptions) {
		o.enabled = enable
	}
}

// TracedCursor adapts a base iterator, reporting every primitive operation
// to a Tracer.  Copies of a traced iterator share its tracer.
type TracedCursor[B any, R any, PB Core[B, R]] struct {
	Adaptor[TracedCursor[B, R, PB], B, R, PB]
	t Tracer
}

// TracedIterator is the facade over a TracedCursor.
type TracedIterator[B any, R any, PB Core[B, R]] = Facade[TracedCursor[B, R, PB], R, *TracedCursor[B, R, PB]]

func processTraceOptions(label string, opts []TraceOption) traceOptions {
	o := traceOptions{
		label:   label,
		enabled: true,
	}
	for _, f := range opts {
		f(&o)
	}
	return o
}

func (o traceOptions) start() Tracer {
	if !o.enabled {
		return NullTracer{}
	}
	return newTracer(traceCounter.Add(1), "%s", o.traceFunc, o.label)
}

func traced[B any, R any, PB Core[B, R]](base Facade[B, R, PB], t Tracer) TracedIterator[B, R, PB] {
	return New[TracedCursor[B, R, PB], R](TracedCursor[B, R, PB]{
		Adaptor: Adapt[TracedCursor[B, R, PB]](base),
		t:       t,
	})
}

// Trace returns an iterator that behaves like base and traces each
// primitive operation.  Call End on its Tracer when done with it.
func Trace[B any, R any, PB Core[B, R]](base Facade[B, R, PB], opts ...TraceOption) TracedIterator[B, R, PB] {
	o := processTraceOptions(fmt.Sprintf("(%T)", base.Value()), opts)
	return traced(base, o.start())
}

// TraceRange returns r with both ends traced.  The ends report to sub
// tracers of one range tracer, so their messages share an iterator id.
// The returned function ends all three traces.
func TraceRange[B any, R any, PB Core[B, R]](r Range[B, R, PB], opts ...TraceOption) (Range[TracedCursor[B, R, PB], R, *TracedCursor[B, R, PB]], func()) {
	o := processTraceOptions(fmt.Sprintf("(%T)", r.First.Value()), opts)

	t := o.start()
	first := t.SubTracer("first")
	last := t.SubTracer("last")

	end := func() {
		first.End()
		last.End()
		t.End()
	}

	return MakeRange(traced(r.First, first), traced(r.Last, last)), end
}

// Tracer returns the tracer the iterator reports to.
func (c TracedCursor[B, R, PB]) Tracer() Tracer {
	return c.t
}

func (c TracedCursor[B, R, PB]) Dereference() R {
	c.t.Msg("dereference")
	return c.base.Deref()
}

func (c *TracedCursor[B, R, PB]) Increment() {
	c.t.Msg("increment")
	c.Adaptor.Increment()
}

func (c *TracedCursor[B, R, PB]) Decrement() {
	c.t.Msg("decrement")
	c.Adaptor.Decrement()
}

func (c *TracedCursor[B, R, PB]) Advance(n int) {
	c.t.Msg("advance %d", n)
	c.Adaptor.Advance(n)
}

func (c *TracedCursor[B, R, PB]) Equal(other TracedCursor[B, R, PB]) bool {
	eq := c.Adaptor.Equal(other)
	c.t.Msg("equal: %t", eq)
	return eq
}

func (c *TracedCursor[B, R, PB]) DistanceFrom(other TracedCursor[B, R, PB]) int {
	d := c.Adaptor.DistanceFrom(other)
	c.t.Msg("distance: %d", d)
	return d
}
