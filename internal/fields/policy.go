// Package fields resolves the raw, positionally-ordered OutputVector
// records FEMAP emits for a channel into the named point/cell arrays a VTK
// writer attaches, per the channel policy table that is this module's
// answer to the Open Question in spec §9 ("the exact triplet-grouping rule
// ... should [be] expose[d] ... as a per-channel policy, not guess
// silently").
package fields

// SlotKind discriminates how a ChannelPolicy slot consumes OutputVector
// records from a channel's ordered vector list.
type SlotKind int

const (
	// SlotVector3 consumes three consecutive records and fuses them into a
	// named 3-component array plus a derived magnitude array.
	SlotVector3 SlotKind = iota
	// SlotSkipScalar consumes one record and discards its values. FEMAP
	// emits a redundant raw-magnitude record immediately after most vector
	// triplets; skipping it here keeps positional alignment for any scalar
	// slots that follow without double-reporting a magnitude this package
	// already derives.
	SlotSkipScalar
	// SlotScalar consumes one record and attaches it as a named scalar
	// array.
	SlotScalar
)

// SlotSpec is one step of a ChannelPolicy.
type SlotSpec struct {
	Kind SlotKind
	// VecName/MagName name the fused vector and derived-magnitude arrays
	// for a SlotVector3 slot.
	VecName, MagName string
	// ScalarName names the array for a SlotScalar slot.
	ScalarName string
	// Optional marks a slot that may be absent without being an error; a
	// channel's record list may legitimately be shorter when the source
	// never wrote a given scalar for this run.
	Optional bool
}

// ChannelPolicy is the ordered slot sequence for one named result channel.
type ChannelPolicy struct {
	Slots []SlotSpec
}

// Policies holds the per-channel policy table resolved from §6's canonical
// array-name table and the reference converter's literal field order.
var Policies = map[string]ChannelPolicy{
	"magnetic": {Slots: []SlotSpec{
		{Kind: SlotVector3, VecName: "B-Vec (T)", MagName: "B-Mag (T)"},
		{Kind: SlotSkipScalar},
		{Kind: SlotScalar, ScalarName: "Flux (A/m)", Optional: true},
	}},
	"current": {Slots: []SlotSpec{
		{Kind: SlotVector3, VecName: "J-Vec (A/m^2)", MagName: "J-Mag (A/m^2)"},
		{Kind: SlotSkipScalar},
		{Kind: SlotScalar, ScalarName: "Loss (W/m^3)"},
	}},
	"force": {Slots: []SlotSpec{
		{Kind: SlotVector3, VecName: "F Nodal-Vec (N/m^3)", MagName: "F Nodal-Mag (N/m^3)"},
		{Kind: SlotSkipScalar},
	}},
	"forceLorentz": {Slots: []SlotSpec{
		{Kind: SlotVector3, VecName: "F Lorents-Vec (N/m^3)", MagName: "F Lorents-Mag (N/m^3)"},
		{Kind: SlotSkipScalar},
	}},
	"heat": {Slots: []SlotSpec{
		{Kind: SlotScalar, ScalarName: "Heat Density (W/m^3)"},
		{Kind: SlotScalar, ScalarName: "Heat (W)"},
	}},
}
