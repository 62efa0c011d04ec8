package aoc

import (
	"context"

	"github.com/guiguan/caster"
)

// ExampleChecked is published when an example answer has been verified.
type ExampleChecked struct {
	Puzzle  string
	Example int
	Result  Result
}

// PartSolved is published when a part of the puzzle has been solved for the
// real input.
type PartSolved struct {
	Puzzle string
	Result Result
}

// Observe subscribes to the events of the next run of p. Events are of type
// ExampleChecked and PartSolved and arrive in the order they happen. The
// channel is closed after the last event of the run has been received, or as
// soon as ctx is done. capacity is the buffer size of the returned channel.
//
// Events are queued per observer, so a slow observer, or one which stops
// reading and cancels ctx, never holds up the run. An observer which neither
// reads to the end nor cancels ctx leaks its queue.
func (p *Puzzle) Observe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if p.events == nil {
		p.events = caster.New(nil)
	}
	in, ok := p.events.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	out := make(chan interface{}, capacity)
	go relay(ctx, in, out)
	return out, true
}

// relay moves events from a broadcaster subscription to an observer. It keeps
// receiving from in while the observer is busy, so the broadcaster is never
// blocked by a send to this subscriber.
func relay(ctx context.Context, in <-chan interface{}, out chan<- interface{}) {
	defer close(out)
	var queue []interface{}
	for in != nil || len(queue) > 0 {
		var send chan<- interface{}
		var head interface{}
		if len(queue) > 0 {
			send, head = out, queue[0]
		}
		select {
		case ev, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, ev)
		case send <- head:
			queue = queue[1:]
		case <-ctx.Done():
			if in != nil {
				go discard(in)
			}
			return
		}
	}
}

// discard drains a subscription until the broadcaster closes it.
func discard(in <-chan interface{}) {
	for range in {
	}
}

func (p *Puzzle) publish(event interface{}) {
	if p.events == nil {
		return
	}
	if !p.events.Pub(event) {
		T().Debugf("%s: event %T not published", p, event)
	}
}

func (p *Puzzle) closeEvents() {
	if p.events == nil {
		return
	}
	p.events.Close()
	p.events = nil
}
