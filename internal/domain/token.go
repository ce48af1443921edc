package domain

import "time"

const TokenPurposeVerification = "verification"

// VerificationToken is the decoded form of the scan payload bound to a
// transaction. Rendering it to a scannable image is a collaborator concern.
type VerificationToken struct {
	Version       int
	TransactionID string
	ConsumerID    string
	Purpose       string
	IssuedAt      time.Time
	JTI           string
}
