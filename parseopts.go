package quaternion

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// DuplicatePolicy decides what happens when a group has more than one term
// of the same basis, as in "(i+2i)".
type DuplicatePolicy int8

const (
	// LastWins keeps only the last term of each basis: "(i+2i)" is 2i. This
	// is the default.
	LastWins DuplicatePolicy = iota
	// Sum adds the terms of each basis: "(i+2i)" is 3i.
	Sum
)

func (d DuplicatePolicy) String() string {
	switch d {
	case LastWins:
		return "LastWins"
	case Sum:
		return "Sum"
	default:
		return "DuplicatePolicy(" + strconv.Itoa(int(d)) + ")"
	}
}

type (
	dupopt    DuplicatePolicy
	strictopt struct{}
)

// parsectx holds the configuration for parsing. It is also a ParseOption.
type parsectx struct {
	// dup is the policy for repeated bases within a group.
	dup DuplicatePolicy
	// strict indicates that runes outside the grammar and unpaired
	// parentheses are errors rather than skipped.
	strict bool
}

// OnDuplicate sets the policy for groups which contain more than one term of
// the same basis. Panics if policy is not LastWins or Sum.
func OnDuplicate(policy DuplicatePolicy) ParseOption {
	switch policy {
	case LastWins, Sum:
		return dupopt(policy)
	default:
		panic("quaternion: invalid duplicate policy " + policy.String())
	}
}

func (o dupopt) parseOption(p parsectx) parsectx {
	p.dup = DuplicatePolicy(o)
	return p
}

// Strict makes the parser reject input that it would otherwise skip over:
// runes that are neither whitespace nor part of a group or term, a '(' inside
// a group, a ')' outside one, and a group left open at the end of the input.
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// ParsingPreset combines several options into one, so that the same
// non-default configuration can be passed to many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != (parsectx{}) {
		panic("quaternion: preset applied to non-default parse config")
	}
	return *o
}
