package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func validListQuery() ListVideosQuery {
	return ListVideosQuery{Page: 1, Limit: 10, SortBy: "created_at", SortType: "desc"}
}

func TestListQueryPaginationBounds(t *testing.T) {
	v := new(DefaultValidator)

	require.NoError(t, v.ValidateStruct(validListQuery()))

	// explicit zeroes are rejected, not silently treated as absent
	q := validListQuery()
	q.Page = 0
	assert.Error(t, v.ValidateStruct(q))

	q = validListQuery()
	q.Limit = 0
	assert.Error(t, v.ValidateStruct(q))

	q = validListQuery()
	q.Limit = 101
	assert.Error(t, v.ValidateStruct(q))
}

func TestListQueryUserIDMustBeObjectID(t *testing.T) {
	v := new(DefaultValidator)

	q := validListQuery()
	q.UserID = bson.NewObjectID().Hex()
	require.NoError(t, v.ValidateStruct(q))

	q.UserID = "not-an-id"
	assert.Error(t, v.ValidateStruct(q))

	q.UserID = ""
	assert.NoError(t, v.ValidateStruct(q))
}

func TestListCommentsPaginationBounds(t *testing.T) {
	v := new(DefaultValidator)

	require.NoError(t, v.ValidateStruct(ListCommentsQuery{Page: 1, Limit: 10}))
	assert.Error(t, v.ValidateStruct(ListCommentsQuery{Page: 0, Limit: 10}))
	assert.Error(t, v.ValidateStruct(ListCommentsQuery{Page: 1, Limit: 0}))
}

func TestRegisterUsernameRule(t *testing.T) {
	v := new(DefaultValidator)
	form := RegisterForm{
		FullName: "Alice Example",
		Email:    "alice@example.com",
		Username: "alice_01",
		Password: "secret123",
	}

	require.NoError(t, v.ValidateStruct(form))

	for _, bad := range []string{"alice example", "alice!", "алиса"} {
		form.Username = bad
		assert.Error(t, v.ValidateStruct(form), "username %q should be rejected", bad)
	}
}

func TestValidateStructSkipsNonStructs(t *testing.T) {
	v := new(DefaultValidator)

	assert.NoError(t, v.ValidateStruct(42))
	assert.NoError(t, v.ValidateStruct("text"))

	// pointers are unwrapped
	form := validListQuery()
	form.Page = 0
	assert.Error(t, v.ValidateStruct(&form))
}
