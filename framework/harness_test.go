package framework

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrowser struct {
	newPageErr error
	closed     bool
}

func (b *stubBrowser) NewPage(ctx context.Context) (Page, error) {
	return nil, b.newPageErr
}

func (b *stubBrowser) Close() error {
	b.closed = true
	return nil
}

func TestNewTestHarnessChecksTarget(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	httphelpers.WithServer(httphelpers.HandlerWithStatus(200), func(server *httptest.Server) {
		b := &stubBrowser{}
		h, err := NewTestHarness(HarnessConfig{
			TargetURL:          server.URL,
			TargetQueryTimeout: time.Second,
			Artifacts:          store,
		}, b, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, server.URL, h.TargetURL())
		assert.Equal(t, 200, h.TargetInfo().StatusCode)

		require.NoError(t, h.Close())
		assert.True(t, b.closed)
	})

	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		_, err := NewTestHarness(HarnessConfig{
			TargetURL:          server.URL,
			TargetQueryTimeout: time.Second,
			Artifacts:          store,
		}, &stubBrowser{}, nil, nil)
		assert.Error(t, err)
	})
}

func TestNewTestHarnessRequiresDependencies(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	_, err = NewTestHarness(HarnessConfig{Artifacts: store}, nil, nil, nil)
	assert.Error(t, err)

	_, err = NewTestHarness(HarnessConfig{}, &stubBrowser{}, nil, nil)
	assert.Error(t, err)
}

func TestHarnessNewPageWrapsBrowserError(t *testing.T) {
	store, err := NewArtifactStore(t.TempDir())
	require.NoError(t, err)
	h, err := NewTestHarness(HarnessConfig{TargetURL: "http://localhost:3000", Artifacts: store},
		&stubBrowser{newPageErr: errors.New("no tabs for you")}, nil, nil)
	require.NoError(t, err)

	_, err = h.NewPage(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tabs for you")
}
