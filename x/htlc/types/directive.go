package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DirectiveKind selects how a transfer directive is carried out by the host.
type DirectiveKind string

const (
	// DirectiveBankSend moves native coins from the module account.
	DirectiveBankSend DirectiveKind = "bank_send"

	// DirectiveTokenCall instructs the external token contract to transfer.
	DirectiveTokenCall DirectiveKind = "token_call"
)

// TransferDirective describes the single outbound value movement a swap
// produces over its lifetime. It is advisory: the bank or token collaborator
// executes it and may fail independently, which aborts the whole call.
type TransferDirective struct {
	Kind        DirectiveKind  `json:"kind"`
	Destination sdk.AccAddress `json:"destination"`
	Amount      math.Int       `json:"amount"`
	Asset       Asset          `json:"asset"`
}

// NewTransferDirective builds the outbound directive for a swap, targeting
// dest with the full locked amount. The kind follows the asset: native
// assets translate to a bank send, token assets to a token contract call.
func NewTransferDirective(swap Swap, dest sdk.AccAddress) TransferDirective {
	kind := DirectiveBankSend
	if !swap.Asset.IsNative() {
		kind = DirectiveTokenCall
	}
	return TransferDirective{
		Kind:        kind,
		Destination: dest,
		Amount:      swap.Amount,
		Asset:       swap.Asset,
	}
}

// Coins returns the directive amount as native coins. Call only for
// bank-send directives.
func (d TransferDirective) Coins() sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(d.Asset.Denom, d.Amount))
}
