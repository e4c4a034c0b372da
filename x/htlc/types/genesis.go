package types

// GenesisState is the htlc module's genesis state: at most one swap record.
type GenesisState struct {
	Swap *Swap `json:"swap,omitempty" yaml:"swap"`
}

// NewGenesisState returns a genesis state holding the given record.
func NewGenesisState(swap *Swap) *GenesisState {
	return &GenesisState{Swap: swap}
}

// DefaultGenesis returns the default genesis state: no swap created yet.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation. Terminal records are
// allowed; they are permanent audit entries.
func (gs GenesisState) Validate() error {
	if gs.Swap == nil {
		return nil
	}
	return gs.Swap.Validate()
}
