package request

type CompleteTransactionRequest struct {
	ExitScanPayload string `json:"exit_scan_payload"`
}
