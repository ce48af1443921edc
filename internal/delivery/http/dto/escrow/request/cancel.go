package request

type CancelTransactionRequest struct {
	Reason string `json:"reason"`
}

type DisputeRequest struct {
	Reason string `json:"reason"`
}
