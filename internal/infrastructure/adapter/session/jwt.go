package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// MemberCookieName is the cookie carrying the member session token for
// browser requests that cannot set an Authorization header.
const MemberCookieName = "mc_session"

// Claims represents member session JWT claims
type Claims struct {
	MemberID    uint64 `json:"member_id"`
	ExternalID  string `json:"external_id"`
	IsAdmin     bool   `json:"is_admin"`
	IsModerator bool   `json:"is_moderator"`
	jwt.RegisteredClaims
}

// Service issues and validates member session tokens
type Service struct {
	secret       []byte
	memberTTL    time.Duration
	timeProvider core.TimeProvider
}

// NewService creates a session token service
func NewService(secret string, memberTTL time.Duration, timeProvider core.TimeProvider) *Service {
	return &Service{
		secret:       []byte(secret),
		memberTTL:    memberTTL,
		timeProvider: timeProvider,
	}
}

// GenerateMemberToken issues a signed session token for an authenticated member
func (s *Service) GenerateMemberToken(memberID uint64, externalID string, isAdmin, isModerator bool) (string, error) {
	now := s.timeProvider.Now()
	claims := Claims{
		MemberID:    memberID,
		ExternalID:  externalID,
		IsAdmin:     isAdmin,
		IsModerator: isModerator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(memberID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.memberTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateMemberToken validates and parses a member session token
func (s *Service) ValidateMemberToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.MemberID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// MemberTTL reports the configured session lifetime
func (s *Service) MemberTTL() time.Duration {
	return s.memberTTL
}
