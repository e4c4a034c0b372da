package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/interchainx/htlc/x/htlc/types"
)

func TestMsgCreateSwapValidateBasic(t *testing.T) {
	hashLock := types.Digest([]byte("secret"))

	tests := []struct {
		name    string
		msg     *types.MsgCreateSwap
		wantErr bool
	}{
		{
			name: "valid native",
			msg:  types.NewMsgCreateSwap(initiator, beneficiary, hashLock, 1700003600, math.NewInt(1000), types.NativeAsset("uatom")),
		},
		{
			name: "valid token",
			msg:  types.NewMsgCreateSwap(initiator, beneficiary, hashLock, 1700003600, math.NewInt(1000), types.TokenAsset(tokenAddr)),
		},
		{
			name:    "empty initiator",
			msg:     types.NewMsgCreateSwap(nil, beneficiary, hashLock, 1700003600, math.NewInt(1000), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "empty beneficiary",
			msg:     types.NewMsgCreateSwap(initiator, nil, hashLock, 1700003600, math.NewInt(1000), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "empty hash lock",
			msg:     types.NewMsgCreateSwap(initiator, beneficiary, nil, 1700003600, math.NewInt(1000), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "truncated hash lock",
			msg:     types.NewMsgCreateSwap(initiator, beneficiary, hashLock[:16], 1700003600, math.NewInt(1000), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "zero deadline",
			msg:     types.NewMsgCreateSwap(initiator, beneficiary, hashLock, 0, math.NewInt(1000), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "zero amount",
			msg:     types.NewMsgCreateSwap(initiator, beneficiary, hashLock, 1700003600, math.ZeroInt(), types.NativeAsset("uatom")),
			wantErr: true,
		},
		{
			name:    "missing asset",
			msg:     types.NewMsgCreateSwap(initiator, beneficiary, hashLock, 1700003600, math.NewInt(1000), types.Asset{}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgFundSwapValidateBasic(t *testing.T) {
	msg := types.NewMsgFundSwap(initiator, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)))
	require.NoError(t, msg.ValidateBasic())
	require.Equal(t, []sdk.AccAddress{initiator}, msg.GetSigners())

	msg = types.NewMsgFundSwap(nil, sdk.NewCoins(sdk.NewInt64Coin("uatom", 1000)))
	require.Error(t, msg.ValidateBasic())
}

func TestMsgClaimSwapValidateBasic(t *testing.T) {
	msg := types.NewMsgClaimSwap(beneficiary, []byte("secret"))
	require.NoError(t, msg.ValidateBasic())
	require.Equal(t, []sdk.AccAddress{beneficiary}, msg.GetSigners())

	require.Error(t, types.NewMsgClaimSwap(nil, []byte("secret")).ValidateBasic())

	// the empty byte string is a legitimate preimage (of sha256(""))
	require.NoError(t, types.NewMsgClaimSwap(beneficiary, nil).ValidateBasic())
}

func TestMsgRefundSwapValidateBasic(t *testing.T) {
	msg := types.NewMsgRefundSwap(initiator)
	require.NoError(t, msg.ValidateBasic())
	require.Equal(t, []sdk.AccAddress{initiator}, msg.GetSigners())

	require.Error(t, types.NewMsgRefundSwap(nil).ValidateBasic())
}

func TestMsgTokenReceiveValidateBasic(t *testing.T) {
	msg := types.NewMsgTokenReceive(tokenAddr, initiator, math.NewInt(1000), []byte(`{"fund":{}}`))
	require.NoError(t, msg.ValidateBasic())

	// the notifying token contract is the signer
	require.Equal(t, []sdk.AccAddress{tokenAddr}, msg.GetSigners())

	require.Error(t, types.NewMsgTokenReceive(nil, initiator, math.NewInt(1000), nil).ValidateBasic())
	require.Error(t, types.NewMsgTokenReceive(tokenAddr, nil, math.NewInt(1000), nil).ValidateBasic())
	require.Error(t, types.NewMsgTokenReceive(tokenAddr, initiator, math.ZeroInt(), nil).ValidateBasic())
}

func TestMsgRoutesAndTypes(t *testing.T) {
	require.Equal(t, types.RouterKey, types.NewMsgCreateSwap(initiator, beneficiary, types.Digest([]byte("s")), 1, math.NewInt(1), types.NativeAsset("uatom")).Route())
	require.Equal(t, types.TypeMsgCreateSwap, (&types.MsgCreateSwap{}).Type())
	require.Equal(t, types.TypeMsgFundSwap, (&types.MsgFundSwap{}).Type())
	require.Equal(t, types.TypeMsgClaimSwap, (&types.MsgClaimSwap{}).Type())
	require.Equal(t, types.TypeMsgRefundSwap, (&types.MsgRefundSwap{}).Type())
	require.Equal(t, types.TypeMsgTokenReceive, (&types.MsgTokenReceive{}).Type())
}

func TestMsgGetSignBytes(t *testing.T) {
	msg := types.NewMsgClaimSwap(beneficiary, []byte("secret"))
	bz := msg.GetSignBytes()
	require.NotEmpty(t, bz)
	require.Contains(t, string(bz), "htlc/MsgClaimSwap")
}
