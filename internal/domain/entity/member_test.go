package entity

import (
	"testing"
	"time"

	errs "github.com/lunarbyte-dev/member-credits/internal/domain/error"
	coremocks "github.com/lunarbyte-dev/member-credits/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Valid profile", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		member, err := NewMember(MemberProfile{
			ExternalID: "ext-1",
			Email:      "jo@example.com",
			Name:       "Jo",
			IsPaid:     true,
			Tags:       []string{"premium"},
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ext-1", member.ExternalID)
		assert.Equal(t, "jo@example.com", member.Email)
		assert.True(t, member.IsPaid)
		assert.Equal(t, fixedTime, member.CreatedAt)
		assert.Equal(t, fixedTime, member.LastSeenAt)
	})

	t.Run("Blank external ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		member, err := NewMember(MemberProfile{ExternalID: "   "}, mockTime)

		assert.Nil(t, member)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestMemberSnapshot(t *testing.T) {
	member := &Member{ID: 7, IsPaid: true, Tags: []string{"premium", "$50"}}

	snapshot := member.Snapshot()

	assert.True(t, snapshot.Exists)
	assert.True(t, snapshot.IsPaid)
	assert.Equal(t, []string{"premium", "$50"}, snapshot.Tags)

	// The snapshot must not alias the live tag slice
	member.Tags[0] = "changed"
	assert.Equal(t, "premium", snapshot.Tags[0])
}

func TestMemberApplyProfile(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	member := &Member{
		ID:         7,
		ExternalID: "ext-1",
		Email:      "old@example.com",
		IsPaid:     false,
		CreatedAt:  createdAt,
	}
	member.ApplyProfile(MemberProfile{
		ExternalID: "ext-1",
		Email:      "new@example.com",
		Name:       "Jo",
		IsPaid:     true,
		Tags:       []string{"premium"},
	}, mockTime)

	assert.Equal(t, "new@example.com", member.Email)
	assert.True(t, member.IsPaid)
	assert.Equal(t, []string{"premium"}, member.Tags)
	assert.Equal(t, fixedTime, member.UpdatedAt)
	assert.Equal(t, fixedTime, member.LastSeenAt)
	// Identity and first-seen timestamp never move on profile refresh
	assert.Equal(t, "ext-1", member.ExternalID)
	assert.Equal(t, createdAt, member.CreatedAt)
}

func TestMemberAgeWithin(t *testing.T) {
	createdAt := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	member := &Member{ID: 7, CreatedAt: createdAt}

	t.Run("Inside the window", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(createdAt).Return(10 * time.Second).Once()

		assert.True(t, member.AgeWithin(30*time.Second, mockTime))
	})

	t.Run("Outside the window", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(createdAt).Return(30 * time.Second).Once()

		assert.False(t, member.AgeWithin(30*time.Second, mockTime))
	})
}

func TestNewAction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Valid action", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		action, err := NewAction(7, "generate_report", 30, map[string]any{"pages": 3}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), action.MemberID)
		assert.Equal(t, "generate_report", action.ActionType)
		assert.Equal(t, int64(30), action.CreditsCost)
		assert.True(t, action.Success)
		assert.Equal(t, fixedTime, action.CreatedAt)
	})

	t.Run("Invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name       string
			memberID   uint64
			actionType string
			cost       int64
			expected   error
		}{
			{"Zero member ID", 0, "generate_report", 30, errs.ErrInvalidMemberID},
			{"Empty action type", 7, "", 30, errs.ErrInvalidRequest},
			{"Zero cost", 7, "generate_report", 0, errs.ErrInvalidAmount},
			{"Negative cost", 7, "generate_report", -5, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockTime := coremocks.NewMockTimeProvider(t)

				action, err := NewAction(tc.memberID, tc.actionType, tc.cost, nil, mockTime)

				assert.Nil(t, action)
				assert.ErrorIs(t, err, tc.expected)
			})
		}
	})
}
