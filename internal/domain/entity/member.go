package entity

import (
	"strings"
	"time"

	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coreport "github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

// Member represents one identity from the external community platform.
// The external member ID is the upsert key; email collisions across
// different external IDs surface as constraint violations from the store.
type Member struct {
	ID          uint64
	ExternalID  string
	Email       string
	Name        string
	AvatarURL   string
	IsAdmin     bool
	IsModerator bool
	IsPaid      bool
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastSeenAt  time.Time
}

// MemberProfile carries the attributes an authentication event reports
// for a member, already normalized at the boundary.
type MemberProfile struct {
	ExternalID  string
	Email       string
	Name        string
	AvatarURL   string
	IsAdmin     bool
	IsModerator bool
	IsPaid      bool
	Tags        []string
}

// MemberSnapshot captures the pre-upsert state the orchestrator needs to
// detect a free-to-paid transition.
type MemberSnapshot struct {
	Exists bool
	IsPaid bool
	Tags   []string
}

// NewMember creates a member from a profile reported by the platform
func NewMember(profile MemberProfile, timeProvider coreport.TimeProvider) (*Member, error) {
	if strings.TrimSpace(profile.ExternalID) == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &Member{
		ExternalID:  profile.ExternalID,
		Email:       profile.Email,
		Name:        profile.Name,
		AvatarURL:   profile.AvatarURL,
		IsAdmin:     profile.IsAdmin,
		IsModerator: profile.IsModerator,
		IsPaid:      profile.IsPaid,
		Tags:        profile.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
		LastSeenAt:  now,
	}, nil
}

// Snapshot returns the transition-relevant state of the member
func (m *Member) Snapshot() MemberSnapshot {
	tags := make([]string, len(m.Tags))
	copy(tags, m.Tags)
	return MemberSnapshot{
		Exists: true,
		IsPaid: m.IsPaid,
		Tags:   tags,
	}
}

// ApplyProfile updates the mutable fields from a fresh authentication event
func (m *Member) ApplyProfile(profile MemberProfile, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	m.Email = profile.Email
	m.Name = profile.Name
	m.AvatarURL = profile.AvatarURL
	m.IsAdmin = profile.IsAdmin
	m.IsModerator = profile.IsModerator
	m.IsPaid = profile.IsPaid
	m.Tags = profile.Tags
	m.UpdatedAt = now
	m.LastSeenAt = now
}

// AgeWithin reports whether the member row was first seen less than the
// given window ago. Used as a fallback for the race where the credit
// account lookup momentarily disagrees with a just-created row.
func (m *Member) AgeWithin(window time.Duration, timeProvider coreport.TimeProvider) bool {
	return timeProvider.Since(m.CreatedAt) < window
}
