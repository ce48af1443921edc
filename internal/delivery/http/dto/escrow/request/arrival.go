package request

type VerifyArrivalRequest struct {
	ScanPayload string  `json:"scan_payload"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
