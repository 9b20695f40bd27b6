package services

import (
	"fmt"
	"testing"

	"github.com/wayfarerhq/wayfarer/pkg/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFollowLifecycle(t *testing.T) {
	setupTestDB(t)

	alice := seedBareAccount(t, "Alice")
	bob := seedBareAccount(t, "Bob")

	targetID, err := FollowAccount(bob, alice.Slug)
	require.NoError(t, err)
	require.Equal(t, alice.ID, targetID)

	require.True(t, IsAccountFollowing(alice.Slug, &bob))
	require.False(t, IsAccountFollowing(bob.Slug, &alice))
	require.True(t, IsAccountFollower(bob.Slug, &alice))
	require.EqualValues(t, 1, CountAccountFollowers(alice))
	require.EqualValues(t, 1, CountAccountFollowings(bob))

	// following twice settles on the same single edge
	_, err = FollowAccount(bob, alice.Slug)
	require.NoError(t, err)
	require.EqualValues(t, 1, CountAccountFollowers(alice))

	_, err = UnfollowAccount(bob, alice.Slug)
	require.NoError(t, err)
	require.False(t, IsAccountFollowing(alice.Slug, &bob))
	require.EqualValues(t, 0, CountAccountFollowers(alice))

	// unfollowing someone you never followed is a quiet no-op
	_, err = UnfollowAccount(bob, alice.Slug)
	require.NoError(t, err)

	// the pair can be recreated after a full unfollow
	_, err = FollowAccount(bob, alice.Slug)
	require.NoError(t, err)
	require.EqualValues(t, 1, CountAccountFollowers(alice))
}

func TestFollowRejectsSelfAndUnknown(t *testing.T) {
	setupTestDB(t)

	alice := seedBareAccount(t, "Alice")

	_, err := FollowAccount(alice, alice.Slug)
	require.ErrorIs(t, err, ErrSelfRelation)

	_, err = FollowAccount(alice, "nobody")
	require.ErrorIs(t, err, ErrAccountNotFound)

	_, err = UnfollowAccount(alice, "nobody")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestFollowChecksDegenerateViewers(t *testing.T) {
	setupTestDB(t)

	alice := seedBareAccount(t, "Alice")

	require.False(t, IsAccountFollowing(alice.Slug, nil))
	require.False(t, IsAccountFollowing(alice.Slug, &alice))
	require.False(t, IsAccountFollower(alice.Slug, nil))
	require.False(t, IsAccountFollower(alice.Slug, &alice))
}

func TestListFollowersPagination(t *testing.T) {
	setupTestDB(t)

	owner := seedBareAccount(t, "Owner")

	followers := make([]models.Account, 0, 15)
	for i := 1; i <= 15; i++ {
		follower := seedBareAccount(t, fmt.Sprintf("Follower%d", i))
		_, err := FollowAccount(follower, owner.Slug)
		require.NoError(t, err)
		followers = append(followers, follower)
	}

	first, err := ListAccountFollowers(owner.Slug, nil)
	require.NoError(t, err)
	require.Len(t, first.Items, 10)
	require.Equal(t, followers[14].ID, first.Items[0].ID)
	require.Equal(t, followers[5].ID, first.Items[9].ID)
	require.NotNil(t, first.EndCursor)
	require.EqualValues(t, followers[5].ID, *first.EndCursor)
	require.True(t, first.HasNextPage)

	second, err := ListAccountFollowers(owner.Slug, first.EndCursor)
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	require.Equal(t, followers[4].ID, second.Items[0].ID)
	require.Equal(t, followers[0].ID, second.Items[4].ID)
	// the flag reflects the whole scope, not what is left past the cursor
	require.True(t, second.HasNextPage)

	third, err := ListAccountFollowers(owner.Slug, second.EndCursor)
	require.NoError(t, err)
	require.Empty(t, third.Items)
	require.Nil(t, third.EndCursor)

	_, err = ListAccountFollowers("nobody", nil)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListFollowersSingleEdge(t *testing.T) {
	setupTestDB(t)

	alice := seedBareAccount(t, "Alice")
	bob := seedBareAccount(t, "Bob")

	_, err := FollowAccount(bob, alice.Slug)
	require.NoError(t, err)

	page, err := ListAccountFollowers(alice.Slug, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, bob.ID, page.Items[0].ID)
	require.NotNil(t, page.EndCursor)
	require.EqualValues(t, bob.ID, *page.EndCursor)
	require.False(t, page.HasNextPage)

	followings, err := ListAccountFollowings(bob.Slug, nil)
	require.NoError(t, err)
	require.Len(t, followings.Items, 1)
	require.Equal(t, alice.ID, followings.Items[0].ID)
	require.False(t, followings.HasNextPage)
}

func TestListFollowings(t *testing.T) {
	setupTestDB(t)

	alice := seedBareAccount(t, "Alice")
	bob := seedBareAccount(t, "Bob")
	carol := seedBareAccount(t, "Carol")

	_, err := FollowAccount(alice, bob.Slug)
	require.NoError(t, err)
	_, err = FollowAccount(alice, carol.Slug)
	require.NoError(t, err)

	page, err := ListAccountFollowings(alice.Slug, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, carol.ID, page.Items[0].ID)
	require.Equal(t, bob.ID, page.Items[1].ID)
	require.False(t, page.HasNextPage)
}
