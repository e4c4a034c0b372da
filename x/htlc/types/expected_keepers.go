package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module the htlc module relies on for
// native escrow custody.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// TokenKeeper executes transfer calls against an external token contract
// holding balances in the module's custody.
type TokenKeeper interface {
	Transfer(ctx sdk.Context, contract, recipient sdk.AccAddress, amount math.Int) error
}
