package demo

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/roptask/internal/logger"
)

func TestPosts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := NewCatalog(time.Millisecond)

	testCases := []struct {
		name   string
		userID int
		want   string
	}{
		{name: "user with comments", userID: 1, want: "Fetched comments: Nice post!"},
		{name: "post without comments", userID: 2, want: "Error occurred: Comments not found"},
		{name: "missing user", userID: 99, want: "Error occurred: User not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Posts(ctx, c, tc.userID))
		})
	}
}

func TestFirstPostComments_IsLazy(t *testing.T) {
	t.Parallel()

	c := NewCatalog(0)
	pipeline := FirstPostComments(c, 1)

	delete(c.users, 1)

	res := pipeline.Run(context.Background())
	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Failure(), ErrUserNotFound)

	c.users[1] = User{ID: 1, Name: "John Doe"}

	res = pipeline.Run(context.Background())
	require.True(t, res.IsSuccess())
	assert.Len(t, res.Value(), 1)
}

func TestFirstPostComments_LogsPostsAtDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	l := logger.NewLogger(&logger.Config{Level: logger.DebugLevel, Output: buf, JSON: true})
	ctx := logger.ContextWithLogger(context.Background(), l)

	FirstPostComments(NewCatalog(0), 1).Run(ctx)

	assert.Contains(t, buf.String(), `"msg":"Fetched posts"`)
	assert.Contains(t, buf.String(), `"user":"John Doe"`)
}

func TestPrices_RunsSourcesConcurrently(t *testing.T) {
	t.Parallel()

	report := Prices(context.Background(), 120*time.Millisecond, 60*time.Millisecond, 100, 20)

	assert.Equal(t, "Success:120.00", report.Summary)
	require.Len(t, report.Events, 4)

	firstEnd := min(slices.Index(report.Events, "price end"), slices.Index(report.Events, "tax end"))
	assert.Less(t, slices.Index(report.Events, "price start"), firstEnd)
	assert.Less(t, slices.Index(report.Events, "tax start"), firstEnd)
	assert.Equal(t, "tax end", report.Events[2])
	assert.Less(t, report.Elapsed, 170*time.Millisecond)
}

func TestPrices_ContextDoneFailsOperation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := Prices(ctx, time.Second, time.Second, 100, 20)

	assert.Equal(t, "Error:context canceled", report.Summary)
}

func TestApply(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, "Success:6", Apply(ctx, [3]string{"1", "2", "3"}))
	assert.Equal(t, `Error:strconv.Atoi: parsing "x": invalid syntax`, Apply(ctx, [3]string{"1", "2", "x"}))
	assert.Equal(t, `Error:strconv.Atoi: parsing "a": invalid syntax`, Apply(ctx, [3]string{"a", "b", "3"}))
}
