package token

import (
	"fmt"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
	jwt "github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/jaevor/go-nanoid"
)

const tokenVersion = 1

type verificationClaims struct {
	TransactionID string `json:"txn_id"`
	ConsumerID    string `json:"consumer_id"`
	Purpose       string `json:"purpose"`
	Version       int    `json:"ver"`
	jwt.RegisteredClaims
}

// Codec issues and decodes the opaque scan payload bound to a transaction.
// The payload is an HMAC-signed JWT; rendering it to a scannable image is a
// separate collaborator concern.
type Codec struct {
	secret []byte
	newJTI func() string
	now    func() time.Time
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token codec secret must not be empty")
	}
	newJTI, err := gonanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to init jti generator: %w", err)
	}
	return &Codec{
		secret: []byte(secret),
		newJTI: newJTI,
		now:    time.Now,
	}, nil
}

// Issue produces the raw payload and its decoded form for a transaction.
// Tokens are issued once per transaction and never regenerated.
func (c *Codec) Issue(transactionID, consumerID string) (string, *domain.VerificationToken, error) {
	issuedAt := c.now()
	jti := c.newJTI()

	claims := verificationClaims{
		TransactionID: transactionID,
		ConsumerID:    consumerID,
		Purpose:       domain.TokenPurposeVerification,
		Version:       tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign verification token: %w", err)
	}

	return raw, &domain.VerificationToken{
		Version:       tokenVersion,
		TransactionID: transactionID,
		ConsumerID:    consumerID,
		Purpose:       domain.TokenPurposeVerification,
		IssuedAt:      issuedAt,
		JTI:           jti,
	}, nil
}

func (c *Codec) Decode(raw string) (*domain.VerificationToken, error) {
	var claims verificationClaims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, &domain.DecodeError{Reason: err.Error()}
	}
	if !parsed.Valid {
		return nil, &domain.DecodeError{Reason: "token signature is invalid"}
	}
	if claims.Purpose != domain.TokenPurposeVerification {
		return nil, &domain.DecodeError{Reason: fmt.Sprintf("unexpected token purpose %q", claims.Purpose)}
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return &domain.VerificationToken{
		Version:       claims.Version,
		TransactionID: claims.TransactionID,
		ConsumerID:    claims.ConsumerID,
		Purpose:       claims.Purpose,
		IssuedAt:      issuedAt,
		JTI:           claims.ID,
	}, nil
}

// Matches reports whether a decoded token is bound to the given transaction.
// Single-use and entry/exit ordering are enforced by the escrow ledger, not
// the codec.
func Matches(token *domain.VerificationToken, transactionID string) bool {
	return token != nil && token.TransactionID == transactionID
}
