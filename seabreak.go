// Package seabreak detects word boundaries in South-East-Asian scripts —
// Thai, Lao, Burmese and Khmer — that don't use inter-word whitespace. It
// walks a range of a code-point buffer, cuts it into maximal same-script
// chunks, and routes each chunk to a trained per-script bidirectional LSTM
// classifier (see the internal/lstm and model packages) that decides where
// a line break may be taken.
//
// The detector is a pure function of (models, text, range) plus a
// break-callback: it does no I/O, holds no state beyond the process-wide
// engine cache, and never inspects context across a script boundary.
//
// A minimal integration looks like:
//
//	cache := engine.NewCache()
//	for _, path := range []string{"thai.sabin", "lao.sabin", "burmese.sabin", "khmer.sabin"} {
//	    m, err := model.LoadFile(path)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := cache.Register(m); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	d := seabreak.NewDispatcher(cache)
//	err := d.BreakSALine(text, 0, len(text), func(pos int) {
//	    fmt.Println("break at", pos)
//	})
package seabreak

import (
	"github.com/seabreak/seabreak/engine"
	"github.com/seabreak/seabreak/internal/script"
)

// BreakFunc receives an absolute position at which a word boundary was
// found. Within one BreakSALine call, positions are reported strictly in
// increasing order.
type BreakFunc func(pos int)

// Dispatcher partitions a code-point range into maximal same-script chunks
// and routes each chunk to the engine cache for the script it belongs to.
type Dispatcher struct {
	engines *engine.Cache
}

// NewDispatcher builds a Dispatcher over an engine cache. Register every
// script's model on cache before using the returned Dispatcher.
func NewDispatcher(cache *engine.Cache) *Dispatcher {
	return &Dispatcher{engines: cache}
}

// BreakSALine walks text[rangeStart:rangeEnd], classifying each code point
// by script (internal/script.Classify) and flushing each maximal same-script
// chunk to its engine as soon as the script changes or the range ends.
// UNK chunks (scripts this module doesn't segment, including plain
// whitespace-delimited scripts) are skipped silently: no breaks are
// reported inside them or at their boundaries — a script transition is
// never itself reported as a break, since the caller's own Unicode
// line-break logic is expected to own that decision.
//
// It returns the first error any chunk's engine returns, immediately, with
// no further chunks processed; callbacks already fired for earlier chunks
// are not rolled back.
func (d *Dispatcher) BreakSALine(text []rune, rangeStart, rangeEnd int, found BreakFunc) error {
	chunkStart := rangeStart
	chunkLang := script.UNK

	flush := func(from, to int) error {
		if chunkLang == script.UNK || from == to {
			return nil
		}
		eng, err := d.engines.Engine(chunkLang)
		if err != nil {
			return err
		}
		return eng.BreakWord(text, from, to, func(pos int) { found(pos) })
	}

	for pos := rangeStart; pos < rangeEnd; pos++ {
		lang := script.Classify(text[pos])
		if lang != chunkLang {
			if err := flush(chunkStart, pos); err != nil {
				return err
			}
			chunkLang = lang
			chunkStart = pos
		}
	}
	return flush(chunkStart, rangeEnd)
}
