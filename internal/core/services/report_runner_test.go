package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRunner_SingleRunDelivers(t *testing.T) {
	runner := services.NewReportRunner[int]()

	result, ok, err := runner.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, result)
}

func TestReportRunner_ErrorPropagates(t *testing.T) {
	runner := services.NewReportRunner[int]()
	boom := errors.New("boom")

	_, ok, err := runner.Run(context.Background(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestReportRunner_StaleResultDiscarded(t *testing.T) {
	runner := services.NewReportRunner[string]()
	firstStarted := make(chan struct{})
	secondDone := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	var firstOK bool
	go func() {
		defer wg.Done()
		_, ok, err := runner.Run(context.Background(), func(ctx context.Context) (string, error) {
			close(firstStarted)
			// Wait for a newer run to complete before finishing.
			<-secondDone
			return "old", nil
		})
		require.NoError(t, err)
		firstOK = ok
	}()

	<-firstStarted
	result, ok, err := runner.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "new", nil
	})
	close(secondDone)
	wg.Wait()

	require.NoError(t, err)
	assert.True(t, ok, "latest run must deliver")
	assert.Equal(t, "new", result)
	assert.False(t, firstOK, "superseded run must be discarded")
}
