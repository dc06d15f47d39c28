package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsAuthor(t *testing.T) {
	var n News
	assert.Nil(t, n.Author())

	n.SetAuthor(JournalistAuthor{JournalistID: "j1"})
	assert.Equal(t, JournalistAuthor{JournalistID: "j1"}, n.Author())
	assert.Nil(t, n.UserID)

	n.SetAuthor(InfluencerAuthor{UserID: "u1"})
	assert.Equal(t, InfluencerAuthor{UserID: "u1"}, n.Author())
	assert.Nil(t, n.JournalistID)

	empty := ""
	n.UserID = &empty
	assert.Nil(t, n.Author())
}

func TestUserCanPublish(t *testing.T) {
	fan := User{UserType: UserTypeFan}
	assert.False(t, fan.CanPublish())

	influencer := User{UserType: UserTypeFan, IsInfluencer: true}
	assert.True(t, influencer.CanPublish())
	assert.False(t, influencer.IsAdmin())

	journalist := User{UserType: UserTypeJournalist}
	assert.True(t, journalist.CanPublish())

	admin := User{UserType: UserTypeAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.CanPublish())
}

func TestInteractionTypeValid(t *testing.T) {
	assert.True(t, InteractionLike.Valid())
	assert.True(t, InteractionDislike.Valid())
	assert.False(t, InteractionType("LOVE").Valid())
	assert.True(t, ValidCategory(CategoryMarket))
	assert.False(t, ValidCategory("GOSSIP"))
}
