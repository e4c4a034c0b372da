package types

// Event types and attribute keys emitted by the htlc module.
const (
	EventTypeCreateSwap   = "create_swap"
	EventTypeFundSwap     = "fund_swap"
	EventTypeClaimSwap    = "claim_swap"
	EventTypeRefundSwap   = "refund_swap"
	EventTypeTokenReceive = "token_receive"

	AttributeKeyInitiator   = "initiator"
	AttributeKeyBeneficiary = "beneficiary"
	AttributeKeyAmount      = "amount"
	AttributeKeyHashLock    = "hash_lock"
	AttributeKeyDeadline    = "deadline"
	AttributeKeyPreimage    = "preimage"
	AttributeKeyToken       = "token"
)
