package command

import (
	"strconv"
	"strings"

	"github.com/gocord/gocord/pkg/errorx"
)

// Args holds the values a pattern captured, keyed by block name and
// already cast to the block's type.
type Args map[string]any

// caster turns the captured text of a block into its typed value.
type caster func(text string) (any, error)

// casters are the block types a selector can use: str, int, float and yn.
// yn is true when the text starts with y or Y.
var casters = map[string]caster{
	"str": func(text string) (any, error) {
		return text, nil
	},
	"int": func(text string) (any, error) {
		return strconv.Atoi(text)
	},
	"float": func(text string) (any, error) {
		return strconv.ParseFloat(text, 64)
	},
	"yn": func(text string) (any, error) {
		return strings.HasPrefix(strings.ToLower(text), "y"), nil
	},
}

type block struct {
	required bool
	name     string
	typ      string
}

type segment struct {
	literal string
	block   *block
}

// Pattern is a compiled argument selector. The selector syntax captures
// arguments in blocks: |name/type| is an optional block, *|name/type| a
// required one, text between blocks must appear literally, and ';'
// escapes the next character. For example:
//
//	*|mention/str| |time/int|
//	*|num1/float| ;* *|num2/float|
type Pattern struct {
	segments []segment
}

// Compile parses a selector. An empty selector compiles to a pattern that
// matches only empty text.
func Compile(selector string) (*Pattern, error) {
	var segments []segment
	var current *block
	inName := false

	runes := []rune(selector)
	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '*' && current == nil:
			if i+1 >= len(runes) || runes[i+1] != '|' {
				return nil, errorx.New(errorx.ParseError,
					"expected a block after '*' at column %d, escape it with ';' for a literal", i)
			}

			i++
			current = &block{required: true}
			inName = true

		case char == '*':
			return nil, errorx.New(errorx.ParseError,
				"unexpected '*' inside a block at column %d, escape it with ';' for a literal", i)

		case char == '|' && current == nil:
			current = &block{}
			inName = true

		case char == '|':
			if inName {
				return nil, errorx.New(errorx.ParseError,
					"block at column %d is missing its '/' type separator", i)
			}

			segments = append(segments, segment{block: current})
			current = nil

		case char == '/' && current != nil:
			if !inName {
				return nil, errorx.New(errorx.ParseError,
					"only one '/' is allowed in the block at column %d", i)
			}

			inName = false

		case char == '/':
			return nil, errorx.New(errorx.ParseError,
				"unexpected '/' outside of a block at column %d, escape it with ';' for a literal", i)

		case char == ';':
			if i+1 >= len(runes) {
				return nil, errorx.New(errorx.ParseError, "unexpected escape at end of selector")
			}

			i++
			segments = appendChar(segments, current, &inName, runes[i])

		default:
			segments = appendChar(segments, current, &inName, char)
		}
	}

	if current != nil {
		return nil, errorx.New(errorx.ParseError, "unterminated block at end of selector")
	}

	p := &Pattern{segments: segments}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func appendChar(segments []segment, current *block, inName *bool, char rune) []segment {
	if current != nil {
		if *inName {
			current.name += string(char)
		} else {
			current.typ += string(char)
		}

		return segments
	}

	if len(segments) > 0 && segments[len(segments)-1].block == nil {
		segments[len(segments)-1].literal += string(char)
		return segments
	}

	return append(segments, segment{literal: string(char)})
}

func (p *Pattern) validate() error {
	names := map[string]bool{}
	sawOptional := false

	for i, seg := range p.segments {
		if seg.block == nil {
			continue
		}

		if i > 0 && p.segments[i-1].block != nil {
			return errorx.New(errorx.ParseError, "blocks %s and %s must be separated by a literal",
				p.segments[i-1].block.name, seg.block.name)
		}

		if names[seg.block.name] {
			return errorx.New(errorx.ParseError, "duplicate block name %s", seg.block.name)
		}
		names[seg.block.name] = true

		if _, ok := casters[seg.block.typ]; !ok {
			return errorx.New(errorx.ParseError, "unknown type %s in block %s", seg.block.typ, seg.block.name)
		}

		if seg.block.required && sawOptional {
			return errorx.New(errorx.ParseError,
				"required block %s must come before every optional block", seg.block.name)
		}

		if !seg.block.required {
			sawOptional = true
		}
	}

	return nil
}

func (p *Pattern) blocks() []*block {
	var blocks []*block
	for _, seg := range p.segments {
		if seg.block != nil {
			blocks = append(blocks, seg.block)
		}
	}

	return blocks
}

func (p *Pattern) requiredCount() int {
	n := 0
	for _, b := range p.blocks() {
		if b.required {
			n++
		}
	}

	return n
}

// Match splits the text by the pattern's literal segments and returns the
// captured block values in order. Optional trailing blocks may be absent
// from the result.
func (p *Pattern) Match(text string) ([]string, bool) {
	if len(p.segments) == 0 {
		return nil, text == ""
	}

	if len(p.segments) == 1 && p.segments[0].block == nil {
		if p.segments[0].literal != text {
			return nil, false
		}

		return []string{}, true
	}

	var results []string
	rest := text
	exhausted := false

	for _, seg := range p.segments {
		if seg.block != nil {
			continue
		}

		index := strings.Index(rest, seg.literal)
		if index == -1 {
			results = append(results, rest)
			exhausted = true
			break
		}

		results = append(results, rest[:index])
		rest = rest[index+len(seg.literal):]
	}

	if !exhausted {
		results = append(results, rest)
	}

	// Text before a leading literal and after a trailing literal captures
	// nothing.
	if p.segments[0].block == nil {
		results = results[1:]
	}
	if !exhausted && p.segments[len(p.segments)-1].block == nil {
		results = results[:len(results)-1]
	}

	if len(results) < p.requiredCount() {
		return nil, false
	}

	return results, true
}

// Load casts the captured values to their block types. A value that does
// not cast fails with a CannotCastTypes error.
func (p *Pattern) Load(values []string) (Args, error) {
	args := Args{}
	blocks := p.blocks()

	for i, value := range values {
		if i >= len(blocks) {
			break
		}

		b := blocks[i]
		cast, err := casters[b.typ](value)
		if err != nil {
			return nil, errorx.New(errorx.CannotCastTypes,
				"cannot cast %q to %s for argument %s", value, b.typ, b.name)
		}

		args[b.name] = cast
	}

	return args, nil
}

// Parse is Match followed by Load.
func (p *Pattern) Parse(text string) (Args, bool, error) {
	values, ok := p.Match(text)
	if !ok {
		return nil, false, nil
	}

	args, err := p.Load(values)
	if err != nil {
		return nil, true, err
	}

	return args, true, nil
}
