// Package callback captures the one-time login token that the browser-based
// OIDC and magic-link flows deliver. The server redirects the browser to
// /login#token=…&source=…; the fragment never leaves the browser, so the
// loopback listener first serves a relay page that re-submits the fragment
// as a query string, then hands the reassembled URL to the waiting client.
package callback

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaulthub/vaulthub-cli/internal/logging"
)

// relayPage moves location.hash into the query string. Everything happens
// inside the user's browser on the loopback interface.
const relayPage = `<!doctype html>
<html><head><title>VaultHub</title></head><body>
<p>Completing sign-in…</p>
<script>
  var h = window.location.hash;
  if (h && h.length > 1) {
    window.location.replace("/callback?" + h.substring(1));
  } else {
    document.body.innerText = "No login token found in the callback URL.";
  }
</script>
</body></html>`

const donePage = `<!doctype html>
<html><head><title>VaultHub</title></head><body>
<p>Signed in. You can close this tab and return to the terminal.</p>
</body></html>`

// Server is an ephemeral loopback HTTP listener for one login attempt.
type Server struct {
	addr    string
	log     logging.Logger
	results chan string
	srv     *http.Server
}

func New(addr string, log logging.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	return &Server{addr: addr, log: log, results: make(chan string, 1)}
}

// Start begins listening and returns the URL the flow will land on.
func (s *Server) Start() (string, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/callback", func(c *gin.Context) {
		if c.Query("token") == "" {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(relayPage))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(donePage))
		select {
		case s.results <- c.Request.URL.String():
		default:
			// A result is already queued; this is a repeat delivery.
		}
	})

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", err
	}

	s.srv = &http.Server{Handler: router}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error(context.Background(), "callback listener failed", "error", err)
		}
	}()

	return "http://" + ln.Addr().String() + "/callback", nil
}

// Wait blocks until a token-bearing callback URL arrives or ctx ends.
func (s *Server) Wait(ctx context.Context) (string, error) {
	select {
	case u := <-s.results:
		return u, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Shutdown stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
