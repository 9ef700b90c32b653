package demo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ib-77/roptask/internal/logger"
	"github.com/ib-77/roptask/pkg/rop"
	"github.com/ib-77/roptask/pkg/rop/solo"
	"github.com/ib-77/roptask/pkg/rop/task"
)

// FirstPostComments walks user -> posts -> comments of the first post.
// Nothing is fetched until the returned Task runs.
func FirstPostComments(c *Catalog, userID int) task.Task[[]Comment] {
	posts := task.Chain(c.UserTask(userID), func(u User) task.Task[[]Post] {
		return task.Tee(c.PostsTask(u.ID), func(ctx context.Context, p []Post) {
			logger.FromContext(ctx).Debug("Fetched posts", "user", u.Name, "count", len(p))
		})
	})

	return task.Chain(posts, func(p []Post) task.Task[[]Comment] {
		if len(p) == 0 {
			return task.Fail[[]Comment](ErrPostsNotFound)
		}
		return c.CommentsTask(p[0].ID)
	})
}

func Posts(ctx context.Context, c *Catalog, userID int) string {
	return task.Fold(ctx, FirstPostComments(c, userID),
		func(err *rop.NormalizedError) string {
			return "Error occurred: " + err.Message()
		},
		func(comments []Comment) string {
			texts := make([]string, 0, len(comments))
			for _, cm := range comments {
				texts = append(texts, cm.Comment)
			}
			return "Fetched comments: " + strings.Join(texts, ", ")
		})
}

// Trace records the order in which concurrent operations start and finish.
type Trace struct {
	mu     sync.Mutex
	events []string
}

func (t *Trace) Record(event string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *Trace) Events() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.events...)
}

type PriceReport struct {
	Summary string
	Events  []string
	Elapsed time.Duration
}

// Prices fetches a net price and a tax rate at the same time and combines them.
func Prices(ctx context.Context, priceDelay, taxDelay time.Duration, net float64, rate float64) PriceReport {
	trace := &Trace{}

	timed := func(name string, d time.Duration, v float64) task.Task[float64] {
		return task.Of(func(ctx context.Context) (float64, error) {
			trace.Record(name + " start")
			if err := wait(ctx, d); err != nil {
				return 0, err
			}
			trace.Record(name + " end")
			return v, nil
		})
	}

	withTax := task.Lift2(func(price, tax float64) float64 {
		return price + price*tax/100
	}, timed("price", priceDelay, net), timed("tax", taxDelay, rate))

	logged := task.DoubleTee(withTax,
		func(ctx context.Context, total float64) {
			logger.FromContext(ctx).Info("Price computed", "total", total)
		},
		func(ctx context.Context, err *rop.NormalizedError) {
			logger.FromContext(ctx).Error("Price failed", "error", err)
		})

	start := time.Now()
	summary := task.Fold(ctx, logged,
		func(err *rop.NormalizedError) string { return "Error:" + err.Message() },
		func(total float64) string { return fmt.Sprintf("Success:%.2f", total) })

	return PriceReport{Summary: summary, Events: trace.Events(), Elapsed: time.Since(start)}
}

// Apply adds three parsed numbers with a curried function; any unparsable
// input short-circuits the remaining applications.
func Apply(ctx context.Context, inputs [3]string) string {
	addThree := func(a int) func(int) func(int) int {
		return func(b int) func(int) int {
			return func(c int) int { return a + b + c }
		}
	}
	parse := func(s string) rop.Result[*rop.NormalizedError, int] {
		return rop.Try(func() (int, error) { return strconv.Atoi(s) })
	}

	sum := solo.Apply(
		solo.Apply(
			solo.Apply(solo.Succeed[*rop.NormalizedError](addThree), parse(inputs[0])),
			parse(inputs[1])),
		parse(inputs[2]))

	logger.LogOutcome[*rop.NormalizedError, int](logger.FromContext(ctx), "Sum settled", sum)

	return solo.Fold(sum,
		func(err *rop.NormalizedError) string { return "Error:" + err.Message() },
		func(r int) string { return "Success:" + strconv.Itoa(r) })
}
