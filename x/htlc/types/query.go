package types

// QueryBoolResponse wraps the boolean projector results so the JSON shape
// is stable across claimable/refundable queries.
type QueryBoolResponse struct {
	Result bool `json:"result"`
}
