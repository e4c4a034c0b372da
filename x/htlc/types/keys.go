package types

const (
	// ModuleName is the name of the htlc module.
	ModuleName = "htlc"

	// StoreKey is the store key for the htlc module.
	StoreKey = ModuleName

	// RouterKey is the message routing key for the htlc module.
	RouterKey = ModuleName
)

// SwapKey is the store key under which the single swap record lives. The
// module escrows exactly one swap, so there is no id space and no iteration.
var SwapKey = []byte("swap")
