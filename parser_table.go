package termcore

// parserState is one of the 14 VT500-series parser states.
type parserState uint8

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSIntermediate
	stateDCSPassthrough
	stateDCSIgnore
	stateOSCString
	stateSOSPMAPCString
	numStates
)

// action is one of the actions the table pairs with a next-state.
type action uint8

const (
	actNone action = iota
	actPrint
	actExecute
	actClear
	actCollect
	actParam
	actEscDispatch
	actCSIDispatch
	actOSCStart
	actOSCPut
	actOSCEnd
	actDCSHook
	actDCSPut
	actDCSUnhook
	actPut
)

type tableEntry struct {
	act   action
	state parserState
}

var transitionTable [int(numStates) * 256]tableEntry

func idx(s parserState, b byte) int { return int(s)*256 + int(b) }

func set(s parserState, b byte, a action, next parserState) {
	transitionTable[idx(s, b)] = tableEntry{act: a, state: next}
}

func setRange(s parserState, lo, hi byte, a action, next parserState) {
	for b := int(lo); b <= int(hi); b++ {
		transitionTable[idx(s, byte(b))] = tableEntry{act: a, state: next}
	}
}

func init() {
	for s := parserState(0); s < numStates; s++ {
		setRange(s, 0, 255, actNone, s)
	}

	// ground: printable GL/GR prints, C0 executes.
	setRange(stateGround, 0x00, 0x1F, actExecute, stateGround)
	setRange(stateGround, 0x20, 0x7E, actPrint, stateGround)
	set(stateGround, 0x7F, actNone, stateGround)
	setRange(stateGround, 0x80, 0xFF, actPrint, stateGround) // UTF-8 continuation/lead bytes

	// escape
	setRange(stateEscape, 0x00, 0x1F, actExecute, stateEscape)
	set(stateEscape, 0x1B, actClear, stateEscape)
	setRange(stateEscape, 0x20, 0x2F, actCollect, stateEscapeIntermediate)
	setRange(stateEscape, 0x30, 0x4F, actEscDispatch, stateGround)
	setRange(stateEscape, 0x51, 0x57, actEscDispatch, stateGround)
	set(stateEscape, 0x59, actEscDispatch, stateGround)
	set(stateEscape, 0x5A, actEscDispatch, stateGround)
	set(stateEscape, 0x5C, actEscDispatch, stateGround)
	setRange(stateEscape, 0x60, 0x7E, actEscDispatch, stateGround)
	set(stateEscape, 0x5B, actClear, stateCSIEntry)
	set(stateEscape, 0x5D, actOSCStart, stateOSCString)
	set(stateEscape, 0x50, actClear, stateDCSEntry)
	set(stateEscape, 0x58, actNone, stateSOSPMAPCString)
	set(stateEscape, 0x5E, actNone, stateSOSPMAPCString)
	set(stateEscape, 0x5F, actNone, stateSOSPMAPCString)

	// escape_intermediate
	setRange(stateEscapeIntermediate, 0x00, 0x1F, actExecute, stateEscapeIntermediate)
	setRange(stateEscapeIntermediate, 0x20, 0x2F, actCollect, stateEscapeIntermediate)
	setRange(stateEscapeIntermediate, 0x30, 0x7E, actEscDispatch, stateGround)

	// csi_entry
	setRange(stateCSIEntry, 0x00, 0x1F, actExecute, stateCSIEntry)
	setRange(stateCSIEntry, 0x20, 0x2F, actCollect, stateCSIIntermediate)
	setRange(stateCSIEntry, 0x30, 0x39, actParam, stateCSIParam)
	set(stateCSIEntry, 0x3A, actParam, stateCSIParam)
	set(stateCSIEntry, 0x3B, actParam, stateCSIParam)
	setRange(stateCSIEntry, 0x3C, 0x3F, actCollect, stateCSIParam)
	setRange(stateCSIEntry, 0x40, 0x7E, actCSIDispatch, stateGround)

	// csi_param
	setRange(stateCSIParam, 0x00, 0x1F, actExecute, stateCSIParam)
	setRange(stateCSIParam, 0x30, 0x39, actParam, stateCSIParam)
	set(stateCSIParam, 0x3A, actParam, stateCSIParam)
	set(stateCSIParam, 0x3B, actParam, stateCSIParam)
	setRange(stateCSIParam, 0x3C, 0x3F, actNone, stateCSIIgnore)
	setRange(stateCSIParam, 0x20, 0x2F, actCollect, stateCSIIntermediate)
	setRange(stateCSIParam, 0x40, 0x7E, actCSIDispatch, stateGround)

	// csi_intermediate
	setRange(stateCSIIntermediate, 0x00, 0x1F, actExecute, stateCSIIntermediate)
	setRange(stateCSIIntermediate, 0x20, 0x2F, actCollect, stateCSIIntermediate)
	setRange(stateCSIIntermediate, 0x30, 0x3F, actNone, stateCSIIgnore)
	setRange(stateCSIIntermediate, 0x40, 0x7E, actCSIDispatch, stateGround)

	// csi_ignore
	setRange(stateCSIIgnore, 0x00, 0x1F, actExecute, stateCSIIgnore)
	setRange(stateCSIIgnore, 0x20, 0x3F, actNone, stateCSIIgnore)
	setRange(stateCSIIgnore, 0x40, 0x7E, actNone, stateGround)

	// dcs_entry
	setRange(stateDCSEntry, 0x00, 0x1F, actNone, stateDCSEntry)
	setRange(stateDCSEntry, 0x20, 0x2F, actCollect, stateDCSIntermediate)
	setRange(stateDCSEntry, 0x30, 0x39, actParam, stateDCSParam)
	set(stateDCSEntry, 0x3A, actParam, stateDCSParam)
	set(stateDCSEntry, 0x3B, actParam, stateDCSParam)
	setRange(stateDCSEntry, 0x3C, 0x3F, actCollect, stateDCSParam)
	setRange(stateDCSEntry, 0x40, 0x7E, actDCSHook, stateDCSPassthrough)

	// dcs_param
	setRange(stateDCSParam, 0x00, 0x1F, actNone, stateDCSParam)
	setRange(stateDCSParam, 0x30, 0x39, actParam, stateDCSParam)
	set(stateDCSParam, 0x3A, actParam, stateDCSParam)
	set(stateDCSParam, 0x3B, actParam, stateDCSParam)
	setRange(stateDCSParam, 0x3C, 0x3F, actNone, stateDCSIgnore)
	setRange(stateDCSParam, 0x20, 0x2F, actCollect, stateDCSIntermediate)
	setRange(stateDCSParam, 0x40, 0x7E, actDCSHook, stateDCSPassthrough)

	// dcs_intermediate
	setRange(stateDCSIntermediate, 0x00, 0x1F, actNone, stateDCSIntermediate)
	setRange(stateDCSIntermediate, 0x20, 0x2F, actCollect, stateDCSIntermediate)
	setRange(stateDCSIntermediate, 0x30, 0x3F, actNone, stateDCSIgnore)
	setRange(stateDCSIntermediate, 0x40, 0x7E, actDCSHook, stateDCSPassthrough)

	// dcs_passthrough
	setRange(stateDCSPassthrough, 0x00, 0x1F, actDCSPut, stateDCSPassthrough)
	setRange(stateDCSPassthrough, 0x20, 0x7E, actDCSPut, stateDCSPassthrough)
	set(stateDCSPassthrough, 0x7F, actNone, stateDCSPassthrough)

	// dcs_ignore
	setRange(stateDCSIgnore, 0x00, 0x7F, actNone, stateDCSIgnore)

	// osc_string
	setRange(stateOSCString, 0x20, 0x7F, actOSCPut, stateOSCString)
	setRange(stateOSCString, 0x00, 0x06, actNone, stateOSCString)
	setRange(stateOSCString, 0x08, 0x1A, actNone, stateOSCString)
	setRange(stateOSCString, 0x1C, 0x1F, actNone, stateOSCString)

	// sos_pm_apc_string: consume and discard until ST.
	setRange(stateSOSPMAPCString, 0x00, 0xFF, actNone, stateSOSPMAPCString)
}

// lookup returns the (action, nextState) for the given state and byte,
// consulting the "anywhere" overrides for CAN, SUB and ESC first. The 8-bit
// ST (0x9C) is handled by the caller; the other 8-bit C1 controls (0x90,
// 0x9B, 0x9D, ...) get no override here and are not treated as controls (in
// ground they go to UTF-8 decoding).
func lookup(s parserState, b byte) (action, parserState) {
	switch b {
	case 0x18, 0x1A: // CAN, SUB
		return actExecute, stateGround
	case 0x1B: // ESC
		if s == stateDCSPassthrough || s == stateOSCString || s == stateSOSPMAPCString {
			// handled specially by the caller (ST lookahead), fall through to table
			break
		}
		return actClear, stateEscape
	}
	e := transitionTable[idx(s, b)]
	return e.act, e.state
}
