package task_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/roptask/pkg/rop"
	"github.com/ib-77/roptask/pkg/rop/solo"
	"github.com/ib-77/roptask/pkg/rop/task"
)

// TestURLProcessing runs a validate -> fetch -> measure pipeline per URL
func TestURLProcessing(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.microsoft.com",
		"https://www.micros---oft.com",
		"https://www.mic--ros---oft.com",

		// Invalid URLs by structure
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processRequest(context.Background(), urls)

	assert.Equal(t, len(urls), len(results))

	invalidCount := 0
	for i, res := range results {
		if res == "invalid" {
			invalidCount++
			continue
		}
		assert.Equal(t, fmt.Sprintf("title length: %d", len("Mock Page Title for "+urls[i])), res)
	}

	assert.Equal(t, 2, invalidCount)
}

func TestURLProcessing_AllAtOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	lengths := task.Traverse([]string{"https://a.io", "https://bb.io"}, urlPipeline).Run(ctx)
	assert.True(t, lengths.IsSuccess())
	assert.Equal(t, []int{len("Mock Page Title for https://a.io"), len("Mock Page Title for https://bb.io")}, lengths.Value())

	broken := task.Traverse([]string{"https://a.io", "invalid-url"}, urlPipeline).Run(ctx)
	assert.Equal(t, "URL must start with http:// or https://", broken.Failure().Message())
}

func processRequest(ctx context.Context, urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, url := range urls {
		out = append(out, task.Fold(ctx, urlPipeline(url),
			func(*rop.NormalizedError) string { return "invalid" },
			func(r int) string { return fmt.Sprintf("title length: %d", r) }))
	}
	return out
}

func urlPipeline(url string) task.Task[int] {
	validated := task.FromResult(solo.Validate(url, validateURLTest))
	titled := task.Chain(validated, func(url string) task.Task[string] {
		return task.Of(func(ctx context.Context) (string, error) {
			return mockFetchTitle(ctx, url)
		})
	})
	return task.Map(titled, calculateTitleLength)
}

// mockFetchTitle simulates fetching a title without making HTTP requests
func mockFetchTitle(_ context.Context, url string) (string, error) {
	if valid, _ := validateURLTest(url); valid {
		return "Mock Page Title for " + url, nil
	}
	return "", fmt.Errorf("invalid URL")
}

func validateURLTest(url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func calculateTitleLength(title string) int {
	return len(title)
}
