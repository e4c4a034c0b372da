package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	tmbytes "github.com/cometbft/cometbft/libs/bytes"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"sigs.k8s.io/yaml"
)

const (
	TypeMsgCreateSwap   = "create_swap"
	TypeMsgFundSwap     = "fund_swap"
	TypeMsgClaimSwap    = "claim_swap"
	TypeMsgRefundSwap   = "refund_swap"
	TypeMsgTokenReceive = "token_receive"
)

var (
	_ sdk.Msg = &MsgCreateSwap{}
	_ sdk.Msg = &MsgFundSwap{}
	_ sdk.Msg = &MsgClaimSwap{}
	_ sdk.Msg = &MsgRefundSwap{}
	_ sdk.Msg = &MsgTokenReceive{}
)

// MsgCreateSwap creates the module's single swap record.
type MsgCreateSwap struct {
	Initiator   sdk.AccAddress   `json:"initiator" yaml:"initiator"`
	Beneficiary sdk.AccAddress   `json:"beneficiary" yaml:"beneficiary"`
	HashLock    tmbytes.HexBytes `json:"hash_lock" yaml:"hash_lock"`
	Deadline    int64            `json:"deadline" yaml:"deadline"` // unix seconds
	Amount      math.Int         `json:"amount" yaml:"amount"`
	Asset       Asset            `json:"asset" yaml:"asset"`
}

func NewMsgCreateSwap(initiator, beneficiary sdk.AccAddress, hashLock []byte, deadline int64, amount math.Int, asset Asset) *MsgCreateSwap {
	return &MsgCreateSwap{
		Initiator:   initiator,
		Beneficiary: beneficiary,
		HashLock:    hashLock,
		Deadline:    deadline,
		Amount:      amount,
		Asset:       asset,
	}
}

func (msg *MsgCreateSwap) Route() string { return RouterKey }
func (msg *MsgCreateSwap) Type() string  { return TypeMsgCreateSwap }

func (msg *MsgCreateSwap) ValidateBasic() error {
	if msg.Initiator.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "initiator cannot be empty")
	}
	if msg.Beneficiary.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "beneficiary cannot be empty")
	}
	if len(msg.HashLock) == 0 {
		return errorsmod.Wrap(ErrInvalidHashLock, "hash lock cannot be empty")
	}
	if len(msg.HashLock) != LockSize {
		return errorsmod.Wrapf(ErrInvalidHashLock, "expected %d bytes, got %d", LockSize, len(msg.HashLock))
	}
	if msg.Deadline <= 0 {
		return errorsmod.Wrap(ErrInvalidDeadline, "deadline must be positive")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return msg.Asset.Validate()
}

func (msg *MsgCreateSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgCreateSwap) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Initiator}
}

// MsgFundSwap deposits the native escrow. Amount is the value attached to
// the call; it must match the swap's terms exactly.
type MsgFundSwap struct {
	Initiator sdk.AccAddress `json:"initiator" yaml:"initiator"`
	Amount    sdk.Coins      `json:"amount" yaml:"amount"`
}

func NewMsgFundSwap(initiator sdk.AccAddress, amount sdk.Coins) *MsgFundSwap {
	return &MsgFundSwap{Initiator: initiator, Amount: amount}
}

func (msg *MsgFundSwap) Route() string { return RouterKey }
func (msg *MsgFundSwap) Type() string  { return TypeMsgFundSwap }

func (msg *MsgFundSwap) ValidateBasic() error {
	if msg.Initiator.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "initiator cannot be empty")
	}
	if !msg.Amount.IsValid() {
		return errorsmod.Wrap(ErrNoPayment, msg.Amount.String())
	}
	return nil
}

func (msg *MsgFundSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgFundSwap) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Initiator}
}

// MsgClaimSwap claims the escrow by revealing the preimage.
type MsgClaimSwap struct {
	Claimer  sdk.AccAddress `json:"claimer" yaml:"claimer"`
	Preimage []byte         `json:"preimage" yaml:"preimage"`
}

func NewMsgClaimSwap(claimer sdk.AccAddress, preimage []byte) *MsgClaimSwap {
	return &MsgClaimSwap{Claimer: claimer, Preimage: preimage}
}

func (msg *MsgClaimSwap) Route() string { return RouterKey }
func (msg *MsgClaimSwap) Type() string  { return TypeMsgClaimSwap }

func (msg *MsgClaimSwap) ValidateBasic() error {
	if msg.Claimer.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "claimer cannot be empty")
	}
	// any byte string, the empty one included, is a valid preimage; only
	// the digest comparison decides
	return nil
}

func (msg *MsgClaimSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgClaimSwap) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Claimer}
}

// MsgRefundSwap returns the escrow to the initiator after the deadline.
type MsgRefundSwap struct {
	Refunder sdk.AccAddress `json:"refunder" yaml:"refunder"`
}

func NewMsgRefundSwap(refunder sdk.AccAddress) *MsgRefundSwap {
	return &MsgRefundSwap{Refunder: refunder}
}

func (msg *MsgRefundSwap) Route() string { return RouterKey }
func (msg *MsgRefundSwap) Type() string  { return TypeMsgRefundSwap }

func (msg *MsgRefundSwap) ValidateBasic() error {
	if msg.Refunder.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "refunder cannot be empty")
	}
	return nil
}

func (msg *MsgRefundSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgRefundSwap) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Refunder}
}

// MsgTokenReceive is the inbound notification an external token contract
// delivers after moving tokens into the module's custody on a sender's
// behalf. The token contract itself is the signer.
type MsgTokenReceive struct {
	TokenContract sdk.AccAddress `json:"token_contract" yaml:"token_contract"`
	Sender        sdk.AccAddress `json:"sender" yaml:"sender"`
	Amount        math.Int       `json:"amount" yaml:"amount"`
	Payload       []byte         `json:"payload,omitempty" yaml:"payload"`
}

func NewMsgTokenReceive(tokenContract, sender sdk.AccAddress, amount math.Int, payload []byte) *MsgTokenReceive {
	return &MsgTokenReceive{
		TokenContract: tokenContract,
		Sender:        sender,
		Amount:        amount,
		Payload:       payload,
	}
}

func (msg *MsgTokenReceive) Route() string { return RouterKey }
func (msg *MsgTokenReceive) Type() string  { return TypeMsgTokenReceive }

func (msg *MsgTokenReceive) ValidateBasic() error {
	if msg.TokenContract.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "token contract cannot be empty")
	}
	if msg.Sender.Empty() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidAddress, "sender cannot be empty")
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func (msg *MsgTokenReceive) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgTokenReceive) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.TokenContract}
}

// gogoproto plumbing so the hand-written messages satisfy sdk.Msg and
// resolve to stable type URLs in the interface registry.

func (msg *MsgCreateSwap) Reset()           { *msg = MsgCreateSwap{} }
func (msg *MsgCreateSwap) String() string   { return marshalYAML(msg) }
func (*MsgCreateSwap) ProtoMessage()        {}
func (*MsgCreateSwap) XXX_MessageName() string { return "interchainx.htlc.v1.MsgCreateSwap" }

func (msg *MsgFundSwap) Reset()           { *msg = MsgFundSwap{} }
func (msg *MsgFundSwap) String() string   { return marshalYAML(msg) }
func (*MsgFundSwap) ProtoMessage()        {}
func (*MsgFundSwap) XXX_MessageName() string { return "interchainx.htlc.v1.MsgFundSwap" }

func (msg *MsgClaimSwap) Reset()           { *msg = MsgClaimSwap{} }
func (msg *MsgClaimSwap) String() string   { return marshalYAML(msg) }
func (*MsgClaimSwap) ProtoMessage()        {}
func (*MsgClaimSwap) XXX_MessageName() string { return "interchainx.htlc.v1.MsgClaimSwap" }

func (msg *MsgRefundSwap) Reset()           { *msg = MsgRefundSwap{} }
func (msg *MsgRefundSwap) String() string   { return marshalYAML(msg) }
func (*MsgRefundSwap) ProtoMessage()        {}
func (*MsgRefundSwap) XXX_MessageName() string { return "interchainx.htlc.v1.MsgRefundSwap" }

func (msg *MsgTokenReceive) Reset()           { *msg = MsgTokenReceive{} }
func (msg *MsgTokenReceive) String() string   { return marshalYAML(msg) }
func (*MsgTokenReceive) ProtoMessage()        {}
func (*MsgTokenReceive) XXX_MessageName() string { return "interchainx.htlc.v1.MsgTokenReceive" }

func marshalYAML(v interface{}) string {
	out, _ := yaml.Marshal(v)
	return string(out)
}
