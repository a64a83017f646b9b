package termcore

const (
	maxParams       = 16
	maxParamValue   = 16384
	maxIntermediate = 2
	maxStringLen    = 4096 // OSC / DCS accumulation cap
)

// Param is one top-level CSI parameter: a Base value plus any `:`-separated
// subparameters (SGR color forms use these; most sequences have none).
// Base == -1 and a nil/empty Subs entry both mean "omitted".
type Param struct {
	Base int
	Subs []int
}

// ParamCollector accumulates CSI/DCS parameter and intermediate bytes
// across possibly-chunked feed() calls, clamping on overflow per spec.md §7
// rather than rejecting the sequence.
type ParamCollector struct {
	params  []Param
	group   []int // raw `:`-separated values of the in-progress top-level param
	curVal  int
	curSet  bool
	private byte
	inter   []byte
}

// Clear resets the collector for a new sequence (the `clear` action).
func (p *ParamCollector) Clear() {
	p.params = p.params[:0]
	p.group = p.group[:0]
	p.curVal = 0
	p.curSet = false
	p.private = 0
	p.inter = p.inter[:0]
}

// CollectPrivate records a private-mode marker byte (?, >, <, =). Only the
// first one seen is kept.
func (p *ParamCollector) CollectPrivate(b byte) {
	if p.private == 0 {
		p.private = b
	}
}

// CollectIntermediate appends an intermediate byte (0x20-0x2F), clamped at
// maxIntermediate; bytes past the cap are dropped silently.
func (p *ParamCollector) CollectIntermediate(b byte) {
	if len(p.inter) >= maxIntermediate {
		return
	}
	p.inter = append(p.inter, b)
}

// Param processes one parameter byte: a digit accumulates the current
// value, `:` ends a subparameter within the group, `;` ends the top-level
// parameter.
func (p *ParamCollector) Param(b byte) {
	switch b {
	case ';':
		p.flushValue()
		p.flushGroup()
	case ':':
		p.flushValue()
	default:
		if b < '0' || b > '9' {
			return
		}
		if !p.curSet {
			p.curVal = 0
			p.curSet = true
		}
		p.curVal = p.curVal*10 + int(b-'0')
		if p.curVal > maxParamValue {
			p.curVal = maxParamValue
		}
	}
}

func (p *ParamCollector) flushValue() {
	if len(p.group) >= maxParams {
		return
	}
	if p.curSet {
		p.group = append(p.group, p.curVal)
	} else {
		p.group = append(p.group, -1)
	}
	p.curVal = 0
	p.curSet = false
}

func (p *ParamCollector) flushGroup() {
	if len(p.params) >= maxParams {
		p.group = p.group[:0]
		return
	}
	param := Param{Base: -1}
	if len(p.group) > 0 {
		param.Base = p.group[0]
		if len(p.group) > 1 {
			param.Subs = append([]int(nil), p.group[1:]...)
		}
	}
	p.params = append(p.params, param)
	p.group = p.group[:0]
}

// Params finalizes and returns the collected parameter list. Calling it
// more than once after the same sequence of Param() calls is not supported;
// callers must have already gone through the full CSI/DCS entry sequence.
func (p *ParamCollector) Params() []Param {
	p.flushValue()
	p.flushGroup()
	if len(p.params) == 0 {
		return []Param{{Base: -1}}
	}
	return p.params
}

// Private returns the collected private-mode marker byte, or 0 if none.
func (p *ParamCollector) Private() byte { return p.private }

// Intermediates returns the collected intermediate bytes.
func (p *ParamCollector) Intermediates() []byte { return p.inter }

// Get returns the Nth top-level parameter's base value, or def if omitted
// or absent (the common "default applies when omitted" substitution rule).
func Get(params []Param, n int, def int) int {
	if n < 0 || n >= len(params) {
		return def
	}
	if params[n].Base < 0 {
		return def
	}
	return params[n].Base
}

// GetSub returns subparameter index i of top-level parameter n, or def if
// absent/omitted. GetSub only addresses the Subs slice (subparameters after
// the first colon), so i==0 is the first subparameter, not the Base: for
// `38:2:CS:R:G:B`, Subs[0] is 2, CS is Subs[1], R is Subs[2], etc.
func GetSub(params []Param, n, i, def int) int {
	if n < 0 || n >= len(params) {
		return def
	}
	subs := params[n].Subs
	if i < 0 || i >= len(subs) {
		return def
	}
	if subs[i] < 0 {
		return def
	}
	return subs[i]
}
