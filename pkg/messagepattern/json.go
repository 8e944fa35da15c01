package messagepattern

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// patternJSON is the wire form of a MessagePattern. Each part is encoded as
// [kind, index, length, value, limitPartIndex]. Numbers are strings so that
// infinities survive encoding.
type patternJSON struct {
	Pattern          string         `json:"pattern"`
	Mode             ApostropheMode `json:"mode"`
	Parts            [][5]int       `json:"parts"`
	Numbers          []string       `json:"numbers,omitempty"`
	HasNamedArgs     bool           `json:"hasNamedArgs,omitempty"`
	HasNumberedArgs  bool           `json:"hasNumberedArgs,omitempty"`
	NeedsAutoQuoting bool           `json:"needsAutoQuoting,omitempty"`
}

// MarshalJSON encodes the parsed state, so a pattern can be stored in an
// external cache without being re-parsed on load.
func (mp *MessagePattern) MarshalJSON() ([]byte, error) {
	out := patternJSON{
		Pattern:          mp.msg,
		Mode:             mp.aposMode,
		Parts:            make([][5]int, len(mp.parts)),
		HasNamedArgs:     mp.hasArgNames,
		HasNumberedArgs:  mp.hasArgNumbers,
		NeedsAutoQuoting: mp.needsAutoQuoting,
	}
	for i, p := range mp.parts {
		out.Parts[i] = [5]int{int(p.kind), int(p.index), int(p.length), int(p.value), int(p.limitPartIndex)}
	}
	for _, n := range mp.numericValues {
		out.Numbers = append(out.Numbers, strconv.FormatFloat(n, 'g', -1, 64))
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a pattern produced by MarshalJSON. The decoded parts
// are validated; corrupt input yields an error wrapping ErrSyntax.
// The receiver is left thawed.
func (mp *MessagePattern) UnmarshalJSON(data []byte) error {
	if mp.frozen {
		return ErrFrozen
	}
	var in patternJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Mode > DoubleRequired {
		return fmt.Errorf("%w: unknown apostrophe mode %d", ErrSyntax, in.Mode)
	}

	numbers := make([]float64, 0, len(in.Numbers))
	for _, s := range in.Numbers {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: bad numeric value %q", ErrSyntax, s)
		}
		numbers = append(numbers, n)
	}

	parts := make([]Part, len(in.Parts))
	for i, raw := range in.Parts {
		p, err := decodePart(raw, len(in.Pattern), len(in.Parts), len(numbers))
		if err != nil {
			return fmt.Errorf("%w: part %d: %s", ErrSyntax, i, err)
		}
		if i > 0 && p.index < parts[i-1].index {
			return fmt.Errorf("%w: part %d: index out of order", ErrSyntax, i)
		}
		parts[i] = p
	}
	if err := checkLimits(parts); err != nil {
		return fmt.Errorf("%w: %s", ErrSyntax, err)
	}

	mp.msg = in.Pattern
	mp.aposMode = in.Mode
	mp.parts = parts
	mp.numericValues = numbers
	mp.hasArgNames = in.HasNamedArgs
	mp.hasArgNumbers = in.HasNumberedArgs
	mp.needsAutoQuoting = in.NeedsAutoQuoting
	return nil
}

func decodePart(raw [5]int, patternLength, partCount, numberCount int) (Part, error) {
	kind, index, length, value, limit := raw[0], raw[1], raw[2], raw[3], raw[4]
	switch {
	case kind < 0 || !PartKind(kind).valid():
		return Part{}, fmt.Errorf("unknown kind %d", kind)
	case index < 0 || length < 0 || length > MaxLength || index+length > patternLength:
		return Part{}, fmt.Errorf("span [%d,+%d) outside pattern", index, length)
	case value < math.MinInt16 || value > MaxValue:
		return Part{}, fmt.Errorf("value %d out of range", value)
	case PartKind(kind) == ArgDouble && (value < 0 || value >= numberCount):
		return Part{}, fmt.Errorf("numeric index %d out of range", value)
	case limit < -1 || limit >= partCount:
		return Part{}, fmt.Errorf("limit index %d out of range", limit)
	}
	p := newPart(PartKind(kind), index, length, value)
	p.limitPartIndex = int32(limit)
	return p, nil
}

// checkLimits verifies that every start part points forward at its matching limit.
func checkLimits(parts []Part) error {
	for i, p := range parts {
		var want PartKind
		switch p.kind {
		case MessageStart:
			want = MessageLimit
		case ArgStart:
			want = ArgLimit
		default:
			continue
		}
		j := int(p.limitPartIndex)
		if j <= i {
			return fmt.Errorf("part %d: missing limit", i)
		}
		if parts[j].kind != want || parts[j].value != p.value {
			return fmt.Errorf("part %d: limit %d does not match", i, j)
		}
	}
	return nil
}
