// Package tmi implements a zero-copy parser and typed message layer for the
// Twitch-flavored IRCv3 chat wire protocol.
package tmi

import (
	"github.com/chromacore/tmi/internal/decode"
	"github.com/chromacore/tmi/internal/registry"
	"github.com/chromacore/tmi/internal/scan"
)

// Range is a borrowed byte range into a RawLine, expressed as [Start, End)
// offsets rather than a slice header so GenericView stays copyable without
// aliasing concerns beyond the RawLine itself.
type Range struct {
	Start int
	End   int
}

func (r Range) slice(raw []byte) []byte { return raw[r.Start:r.End] }

func (r Range) empty() bool { return r.Start == r.End }

// TagPair is one raw, still-escaped key/value pair from the tags block, in
// wire order. Value.Start == Value.End for a valueless tag ("id;").
type TagPair struct {
	Key   Range
	Value Range
}

// GenericView is the untyped, single-pass parse of one IRC line: every
// field is a Range into the caller-owned RawLine, so constructing a
// GenericView never copies the line's bytes. It is not allocation-free:
// Parse allocates the backing arrays of the tag-pair list and the param
// range list when the line has tags or params. Projecting into a typed
// message (see message.go) is a second, optional pass that may allocate
// small owned values for the fields it actually reads.
type GenericView struct {
	raw []byte

	hasTags bool
	tags    []TagPair

	hasPrefix bool
	prefix    Range // full "nick!user@host" (or server name), excluding ':' and trailing space

	command Range

	params []Range // middle params only, trailing excluded

	hasTrailing bool
	trailing    Range
}

// RawLine returns the original buffer this view borrows from.
func (v GenericView) RawLine() []byte { return v.raw }

// Parse strips a trailing "\r", "\n", or "\r\n" and tokenizes the rest of
// the line into a GenericView. Parse never fails: a line too malformed to
// make sense of still yields a view with an empty command and no params,
// so callers always get a value back and push error handling entirely into
// the optional typed-projection layer.
func Parse(raw []byte) GenericView {
	raw = stripEOL(raw)
	v := GenericView{raw: raw}
	rest := raw

	if len(rest) > 0 && rest[0] == '@' {
		end := scan.IndexByte(rest, ' ')
		tagsBlock := rest[1:end]
		v.hasTags = true
		v.tags = parseTags(raw, tagsBlock)
		if end == len(rest) {
			rest = rest[end:]
		} else {
			rest = rest[end+1:]
		}
	}

	if len(rest) > 0 && rest[0] == ':' {
		end := scan.IndexByte(rest, ' ')
		start := offsetOf(raw, rest) + 1
		v.hasPrefix = true
		v.prefix = Range{Start: start, End: offsetOf(raw, rest) + end}
		if end == len(rest) {
			rest = rest[end:]
		} else {
			rest = rest[end+1:]
		}
	}

	cmdEnd := scan.IndexByte(rest, ' ')
	cmdStart := offsetOf(raw, rest)
	v.command = Range{Start: cmdStart, End: cmdStart + cmdEnd}
	if cmdEnd == len(rest) {
		return v
	}
	rest = rest[cmdEnd+1:]

	for len(rest) > 0 {
		if rest[0] == ':' {
			start := offsetOf(raw, rest) + 1
			v.hasTrailing = true
			v.trailing = Range{Start: start, End: len(raw)}
			break
		}
		end := scan.IndexByte(rest, ' ')
		start := offsetOf(raw, rest)
		v.params = append(v.params, Range{Start: start, End: start + end})
		if end == len(rest) {
			break
		}
		rest = rest[end+1:]
		// skip any further spaces so a run of spaces between params does not
		// produce empty params.
		for len(rest) > 0 && rest[0] == ' ' {
			rest = rest[1:]
		}
	}

	return v
}

// stripEOL trims a single trailing line terminator ("\r\n", "\n", or
// "\r") from raw, per spec.md §4.2. A zero-copy re-slice, never a copy.
func stripEOL(raw []byte) []byte {
	if n := len(raw); n > 0 && raw[n-1] == '\n' {
		raw = raw[:n-1]
	}
	if n := len(raw); n > 0 && raw[n-1] == '\r' {
		raw = raw[:n-1]
	}
	return raw
}

// offsetOf returns sub's start offset within base; both must share the same
// backing array, which every rest slice here does since it is always
// re-sliced from raw.
func offsetOf(base, sub []byte) int {
	return len(base) - len(sub)
}

func parseTags(raw, block []byte) []TagPair {
	if len(block) == 0 {
		return nil
	}
	offset := offsetOf(raw, block)
	pairs := make([]TagPair, 0, 8)
	for len(block) > 0 {
		semi := scan.IndexByte(block, ';')
		tok := block[:semi]
		tokStart := offset

		eq := scan.IndexByte(tok, '=')
		if eq == len(tok) {
			pairs = append(pairs, TagPair{
				Key:   Range{Start: tokStart, End: tokStart + len(tok)},
				Value: Range{Start: tokStart + len(tok), End: tokStart + len(tok)},
			})
		} else {
			pairs = append(pairs, TagPair{
				Key:   Range{Start: tokStart, End: tokStart + eq},
				Value: Range{Start: tokStart + eq + 1, End: tokStart + len(tok)},
			})
		}

		if semi == len(block) {
			break
		}
		block = block[semi+1:]
		offset += semi + 1
	}
	return pairs
}

// Tags returns the raw, still-escaped tag pairs, in wire order.
func (v GenericView) Tags() []TagPair { return v.tags }

// Tag finds the raw, still-escaped value for a known tag key. ok is false
// when the tag is absent from the line; it is true (with an empty value)
// for a present-but-valueless tag such as "first-msg;".
func (v GenericView) Tag(id registry.TagID) (value []byte, ok bool) {
	for _, p := range v.tags {
		if registry.Lookup(p.Key.slice(v.raw)) == id {
			return p.Value.slice(v.raw), true
		}
	}
	return nil, false
}

// LastTag finds the raw, still-escaped value for a known tag key, keeping
// the LAST occurrence when a key appears more than once on the wire —
// the documented (if Twitch-undocumented) last-write-wins behavior for
// duplicate tag keys (spec.md §9). Most tags never repeat, so Tag is
// cheaper and is the right default; LastTag exists for the callers that
// specifically need the last-write-wins guarantee.
func (v GenericView) LastTag(id registry.TagID) (value []byte, ok bool) {
	for i := len(v.tags) - 1; i >= 0; i-- {
		p := v.tags[i]
		if registry.Lookup(p.Key.slice(v.raw)) == id {
			return p.Value.slice(v.raw), true
		}
	}
	return nil, false
}

// TagUnescaped is Tag followed by decode.Unescape.
func (v GenericView) TagUnescaped(id registry.TagID) (value []byte, ok bool) {
	raw, ok := v.Tag(id)
	if !ok {
		return nil, false
	}
	return decode.Unescape(raw), true
}

// Prefix returns the raw "nick!user@host" (or bare server name) prefix,
// and whether one was present on the line.
func (v GenericView) Prefix() (prefix []byte, ok bool) {
	if !v.hasPrefix {
		return nil, false
	}
	return v.prefix.slice(v.raw), true
}

// Nick returns the nick portion of the prefix, i.e. everything before the
// first '!'. For a server-name prefix (no '!') it returns the whole prefix,
// matching how Twitch's own tmi.twitch.tv pseudo-prefix is commonly read.
func (v GenericView) Nick() (nick []byte, ok bool) {
	prefix, ok := v.Prefix()
	if !ok {
		return nil, false
	}
	if i := scan.IndexByte(prefix, '!'); i != len(prefix) {
		return prefix[:i], true
	}
	return prefix, true
}

// Command returns the classified command for this line.
func (v GenericView) Command() Command {
	return Classify(v.command.slice(v.raw))
}

// Params returns the middle (non-trailing) params, in wire order.
func (v GenericView) Params() []Range { return v.params }

// Param returns the i'th middle param, or nil/false if out of range.
func (v GenericView) Param(i int) (param []byte, ok bool) {
	if i < 0 || i >= len(v.params) {
		return nil, false
	}
	return v.params[i].slice(v.raw), true
}

// Text returns the trailing parameter (the ":..." payload running to end
// of line). When a line has no trailing but does have middle params, it
// falls back to the last middle param — the documented 0.9.0 semantic
// change (see DESIGN.md); ok is false only when there is neither. Typed
// projections that have already consumed their own params (e.g. a
// channel at Param(0)) use TrailingOnly instead, since for them the
// fallback would reinterpret an already-claimed param as text.
func (v GenericView) Text() (text []byte, ok bool) {
	if v.hasTrailing {
		return v.trailing.slice(v.raw), true
	}
	if n := len(v.params); n > 0 {
		return v.params[n-1].slice(v.raw), true
	}
	return nil, false
}

// TrailingOnly returns the trailing parameter with no last-param fallback.
func (v GenericView) TrailingOnly() (text []byte, ok bool) {
	if !v.hasTrailing {
		return nil, false
	}
	return v.trailing.slice(v.raw), true
}

// Channel returns the first middle param with its leading '#' stripped,
// matching Twitch's channel-as-first-param convention for PRIVMSG,
// USERNOTICE, CLEARCHAT, CLEARMSG, ROOMSTATE, USERSTATE and JOIN/PART.
func (v GenericView) Channel() (channel []byte, ok bool) {
	p, ok := v.Param(0)
	if !ok {
		return nil, false
	}
	if len(p) > 0 && p[0] == '#' {
		return p[1:], true
	}
	return p, true
}
