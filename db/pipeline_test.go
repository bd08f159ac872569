package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func stageValue(t *testing.T, stage bson.D, key string) bson.D {
	t.Helper()
	require.Len(t, stage, 1)
	require.Equal(t, key, stage[0].Key)
	value, ok := stage[0].Value.(bson.D)
	require.True(t, ok, "stage %s is not a document", key)
	return value
}

func docField(t *testing.T, doc bson.D, key string) any {
	t.Helper()
	for _, e := range doc {
		if e.Key == key {
			return e.Value
		}
	}
	t.Fatalf("field %s not found in %v", key, doc)
	return nil
}

// The subscriber counts must read the same field the $lookup writes.
// An earlier revision of the pipeline sized a misspelled field, which
// silently reported zero subscribers for every channel.
func TestChannelProfilePipelineSubscriberField(t *testing.T) {
	viewer := bson.NewObjectID()
	pipeline := channelProfilePipeline("alice", viewer)
	require.Len(t, pipeline, 5)

	lookup := stageValue(t, pipeline[1], "$lookup")
	assert.Equal(t, SUBSCRIPTION_COLL, docField(t, lookup, "from"))
	assert.Equal(t, "channel", docField(t, lookup, "foreignField"))
	joinedAs := docField(t, lookup, "as").(string)
	assert.Equal(t, "subscribers", joinedAs)

	fields := stageValue(t, pipeline[3], "$addFields")

	size := docField(t, fields, "subscriber_count").(bson.D)
	assert.Equal(t, "$"+joinedAs, docField(t, size, "$size"))

	in := docField(t, fields, "is_subscribed").(bson.D)
	args := docField(t, in, "$in").(bson.A)
	require.Len(t, args, 2)
	assert.Equal(t, viewer, args[0])
	assert.Equal(t, "$"+joinedAs+".subscriber", args[1])
}

func TestChannelProfilePipelineMatchesUsername(t *testing.T) {
	pipeline := channelProfilePipeline("bob", bson.NewObjectID())

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, "bob", docField(t, match, "username"))

	project := stageValue(t, pipeline[4], "$project")
	for _, key := range []string{"username", "avatar", "subscriber_count", "subscribed_to_count", "is_subscribed"} {
		assert.Equal(t, 1, docField(t, project, key))
	}
}

func TestWatchHistoryPipelineJoins(t *testing.T) {
	id := bson.NewObjectID()
	pipeline := watchHistoryPipeline(id)
	require.Len(t, pipeline, 6)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, id, docField(t, match, "_id"))

	videos := stageValue(t, pipeline[2], "$lookup")
	assert.Equal(t, VIDEO_COLL, docField(t, videos, "from"))
	assert.Equal(t, "watch_history", docField(t, videos, "localField"))

	owners := stageValue(t, pipeline[4], "$lookup")
	assert.Equal(t, USER_COLL, docField(t, owners, "from"))
	assert.Equal(t, "video.owner", docField(t, owners, "localField"))
}

func TestChannelStatsPipelineTotals(t *testing.T) {
	owner := bson.NewObjectID()
	pipeline := channelStatsPipeline(owner)
	require.Len(t, pipeline, 3)

	match := stageValue(t, pipeline[0], "$match")
	assert.Equal(t, owner, docField(t, match, "owner"))

	likes := stageValue(t, pipeline[1], "$lookup")
	assert.Equal(t, LIKE_COLL, docField(t, likes, "from"))

	group := stageValue(t, pipeline[2], "$group")
	views := docField(t, group, "total_views").(bson.D)
	assert.Equal(t, "$views", docField(t, views, "$sum"))
}
