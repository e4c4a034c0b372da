// Package htlc wires the single-swap hashed timelock module: message
// dispatch, genesis handling, and the AppModule surface.
package htlc

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/interchainx/htlc/x/htlc/keeper"
	"github.com/interchainx/htlc/x/htlc/types"
)

// NewHandler returns a handler for htlc messages. Dispatch is exhaustive
// over the module's message variants; unknown variants are rejected.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgCreateSwap:
			return handleMsgCreateSwap(ctx, k, msg)
		case *types.MsgFundSwap:
			return handleMsgFundSwap(ctx, k, msg)
		case *types.MsgClaimSwap:
			return handleMsgClaimSwap(ctx, k, msg)
		case *types.MsgRefundSwap:
			return handleMsgRefundSwap(ctx, k, msg)
		case *types.MsgTokenReceive:
			return handleMsgTokenReceive(ctx, k, msg)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

func handleMsgCreateSwap(ctx sdk.Context, k keeper.Keeper, msg *types.MsgCreateSwap) (*sdk.Result, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.CreateSwap(ctx, msg.Initiator, msg.Beneficiary, msg.HashLock, msg.Deadline, msg.Amount, msg.Asset); err != nil {
		return nil, err
	}
	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgFundSwap(ctx sdk.Context, k keeper.Keeper, msg *types.MsgFundSwap) (*sdk.Result, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.FundSwap(ctx, msg.Initiator, msg.Amount); err != nil {
		return nil, err
	}
	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgClaimSwap(ctx sdk.Context, k keeper.Keeper, msg *types.MsgClaimSwap) (*sdk.Result, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.ClaimSwap(ctx, msg.Claimer, msg.Preimage); err != nil {
		return nil, err
	}
	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgRefundSwap(ctx sdk.Context, k keeper.Keeper, msg *types.MsgRefundSwap) (*sdk.Result, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.RefundSwap(ctx, msg.Refunder); err != nil {
		return nil, err
	}
	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}

func handleMsgTokenReceive(ctx sdk.Context, k keeper.Keeper, msg *types.MsgTokenReceive) (*sdk.Result, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := k.TokenReceive(ctx, msg.TokenContract, msg.Sender, msg.Amount, msg.Payload); err != nil {
		return nil, err
	}
	return &sdk.Result{Events: ctx.EventManager().ABCIEvents()}, nil
}
