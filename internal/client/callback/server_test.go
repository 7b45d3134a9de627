package callback

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) (*Server, string) {
	t.Helper()
	s := New("127.0.0.1:0", nil)
	u, err := s.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, u
}

func TestServer_ServesRelayPageWithoutToken(t *testing.T) {
	_, u := startServer(t)

	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "location.hash")
}

func TestServer_DeliversTokenURL(t *testing.T) {
	s, u := startServer(t)

	resp, err := http.Get(u + "?token=jwt-123&source=oidc")
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	got, err := s.Wait(ctx)
	require.NoError(t, err)
	require.True(t, strings.Contains(got, "token=jwt-123"))
	require.True(t, strings.Contains(got, "source=oidc"))
}

func TestServer_WaitHonorsContext(t *testing.T) {
	s, _ := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := s.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
