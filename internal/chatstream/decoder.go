package chatstream

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"

	// DefaultMaxBuffered bounds the text held back while a frame is waiting
	// for more bytes.
	DefaultMaxBuffered = 1 << 20
)

// Frame is one decoded event from the stream: either a text delta or the end
// marker.
type Frame struct {
	Delta string
	Done  bool
}

// Decoder turns the raw bytes of a relay response into frames. It is fed
// chunks as they arrive and keeps partial UTF-8 sequences and partial lines
// between calls. A Decoder is not safe for concurrent use.
type Decoder struct {
	utf8        transform.Transformer
	pendingRaw  []byte
	buf         string
	done        bool
	dropped     int
	// skipping is set while the rest of an over-long line is discarded.
	skipping    bool
	MaxBuffered int
}

// NewDecoder returns a decoder with the default buffer bound.
func NewDecoder() *Decoder {
	return &Decoder{
		utf8:        unicode.UTF8.NewDecoder(),
		MaxBuffered: DefaultMaxBuffered,
	}
}

// Done reports whether the termination sentinel has been seen.
func (d *Decoder) Done() bool { return d.done }

// Dropped returns how many unparseable lines were discarded because the
// buffer bound was exceeded.
func (d *Decoder) Dropped() int { return d.dropped }

// Buffered returns the number of decoded bytes waiting for a newline or for
// more data.
func (d *Decoder) Buffered() int { return len(d.buf) }

// Feed appends chunk to the stream and returns every frame that became
// complete. After a Done frame, further input is ignored.
func (d *Decoder) Feed(chunk []byte) []Frame {
	if d.done {
		return nil
	}
	if d.utf8 == nil {
		d.utf8 = unicode.UTF8.NewDecoder()
	}
	d.buf += d.decodeText(chunk)
	return d.drain()
}

// decodeText converts raw bytes to text, holding back a trailing incomplete
// UTF-8 sequence until the next chunk supplies the rest of it.
func (d *Decoder) decodeText(chunk []byte) string {
	src := append(d.pendingRaw, chunk...)
	// Invalid bytes expand to U+FFFD (3 bytes each).
	dst := make([]byte, len(src)*3+4)
	nDst, nSrc, err := d.utf8.Transform(dst, src, false)
	if err != nil && !errors.Is(err, transform.ErrShortSrc) {
		// Not reachable with a correctly sized dst; keep the bytes for later.
		d.pendingRaw = src
		return ""
	}
	d.pendingRaw = append([]byte(nil), src[nSrc:]...)
	return string(dst[:nDst])
}

func (d *Decoder) maxBuffered() int {
	if d.MaxBuffered <= 0 {
		return DefaultMaxBuffered
	}
	return d.MaxBuffered
}

func (d *Decoder) drain() []Frame {
	var frames []Frame
	for {
		nl := strings.IndexByte(d.buf, '\n')
		if d.skipping {
			if nl < 0 {
				d.buf = ""
				return frames
			}
			d.buf = d.buf[nl+1:]
			d.skipping = false
			continue
		}
		if nl < 0 {
			if len(d.buf) > d.maxBuffered() {
				// A line this long is never going to be a frame we can hold.
				d.buf = ""
				d.dropped++
				d.skipping = true
			}
			return frames
		}
		line := d.buf[:nl]
		d.buf = d.buf[nl+1:]

		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, ":") || strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, dataPrefix) {
			continue
		}

		payload := strings.TrimSpace(line[len(dataPrefix):])
		if payload == doneSentinel {
			d.done = true
			d.buf = ""
			return append(frames, Frame{Done: true})
		}

		var chunk any
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			if limit := d.maxBuffered(); len(d.buf)+len(line) > limit {
				d.dropped++
				continue
			}
			// Put the line back and wait for more bytes.
			d.buf = line + "\n" + d.buf
			return frames
		}

		if delta := deltaContent(chunk); delta != "" {
			frames = append(frames, Frame{Delta: delta})
		}
	}
}

// deltaContent reads choices[0].delta.content from a decoded chunk. Any
// missing field or unexpected type yields no delta.
func deltaContent(chunk any) string {
	obj, _ := chunk.(map[string]any)
	choices, _ := obj["choices"].([]any)
	if len(choices) == 0 {
		return ""
	}
	choice, _ := choices[0].(map[string]any)
	delta, _ := choice["delta"].(map[string]any)
	content, _ := delta["content"].(string)
	return content
}
