package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the module's concrete types on the
// given codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateSwap{}, "htlc/MsgCreateSwap", nil)
	cdc.RegisterConcrete(&MsgFundSwap{}, "htlc/MsgFundSwap", nil)
	cdc.RegisterConcrete(&MsgClaimSwap{}, "htlc/MsgClaimSwap", nil)
	cdc.RegisterConcrete(&MsgRefundSwap{}, "htlc/MsgRefundSwap", nil)
	cdc.RegisterConcrete(&MsgTokenReceive{}, "htlc/MsgTokenReceive", nil)
}

// RegisterInterfaces registers the module's message implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateSwap{},
		&MsgFundSwap{},
		&MsgClaimSwap{},
		&MsgRefundSwap{},
		&MsgTokenReceive{},
	)
}

// ModuleCdc is the module-wide amino codec, used for sign bytes, the stored
// record, genesis, and query responses.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
}
