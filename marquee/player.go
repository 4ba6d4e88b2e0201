package marquee

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/marquee/raster"
	"github.com/lixenwraith/marquee/terminal"
)

const (
	// DefaultDelay paces the scroll at one column per 10ms
	DefaultDelay = 10 * time.Millisecond
	// DefaultMaxBufferBytes bounds the precomputed frame buffer
	DefaultMaxBufferBytes int64 = 256 << 20

	writerSize = 64 << 10
)

// Player animates a matrix by redrawing frames in place
type Player struct {
	Cols           int
	Style          Style
	Strategy       Strategy
	Delay          time.Duration
	Repeat         int   // passes over the sequence, minimum 1
	MaxBufferBytes int64 // precomputed limit, <= 0 disables the check

	bufferHook func(*FrameBuffer) // observes the precomputed buffer once built
}

// Play writes the animation for m to w and blocks until it completes or ctx
// is cancelled. Cancellation is observed between frames. The cursor is
// hidden while playing and restored on every return path once output began
func (p *Player) Play(ctx context.Context, w io.Writer, m *raster.Matrix) (err error) {
	if p.Cols <= 0 {
		return fmt.Errorf("%w: %d", raster.ErrInvalidWidth, p.Cols)
	}
	repeat := max(p.Repeat, 1)

	// Build everything that can fail before the first byte is written
	var buf *FrameBuffer
	if p.Strategy == Precomputed {
		buf, err = NewFrameBuffer(m, p.Cols, p.Style, p.MaxBufferBytes)
		if err != nil {
			return err
		}
		defer buf.Release()
		if p.bufferHook != nil {
			p.bufferHook(buf)
		}
	} else if _, err = NewSequencer(m, p.Cols); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, writerSize)
	defer func() {
		tail := terminal.AppendReset(nil)
		tail = terminal.AppendCursorVisible(tail, true)
		bw.Write(tail)
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("flush: %w", ferr)
		}
	}()

	// Reserve the rows the first cursor-up rewinds over
	head := terminal.AppendCursorVisible(nil, false)
	for i := 0; i < raster.Rows; i++ {
		head = append(head, '\n')
	}
	if _, err = bw.Write(head); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	log.Printf("[PLAY] strategy=%s cols=%d width=%d repeat=%d delay=%s",
		p.Strategy, p.Cols, m.Width(), repeat, p.Delay)

	first := true
	emit := func(chunk []byte) error {
		if !first {
			if err := p.pause(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		first = false

		if _, err := bw.Write(chunk); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		return nil
	}

	for pass := 0; pass < repeat; pass++ {
		if buf != nil {
			for i := 0; i < buf.Len(); i++ {
				if err = emit(buf.Frame(i)); err != nil {
					return err
				}
			}
			continue
		}

		// Sequencers are consumed once; each pass starts a new one
		seq, serr := NewSequencer(m, p.Cols)
		if serr != nil {
			return serr
		}
		var scratch, blank []byte
		for f, ok := seq.Next(); ok; f, ok = seq.Next() {
			// Every blank frame renders the same; build it once
			if f.Blank() {
				if blank == nil {
					blank = terminal.AppendCursorUp(nil, raster.Rows)
					blank = f.AppendTo(blank, p.Style)
				}
				if err = emit(blank); err != nil {
					return err
				}
				continue
			}
			scratch = terminal.AppendCursorUp(scratch[:0], raster.Rows)
			scratch = f.AppendTo(scratch, p.Style)
			if err = emit(scratch); err != nil {
				return err
			}
		}
	}

	return nil
}

// pause blocks for the inter-frame delay or until ctx is done
func (p *Player) pause(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsInterrupted reports whether err came from context cancellation
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
