package events

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	jwtsvc "fieldops/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFeed(t *testing.T) (*Hub, *httptest.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test-secret", time.Hour)
	hub := NewHub()
	t.Cleanup(hub.Close)

	router := gin.New()
	NewHandler(hub, j).RegisterRoutes(router.Group("/api/v1"))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := j.GenerateToken("u1", "member")
	require.NoError(t, err)

	return hub, server, token
}

func dialFeed(t *testing.T, server *httptest.Server, token string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/events?token=" + token
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

func waitOnline(t *testing.T, hub *Hub, userID string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !hub.IsOnline(userID) {
		require.True(t, time.Now().Before(deadline), "connection never registered")
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFeed_RejectsMissingOrInvalidToken(t *testing.T) {
	_, server, _ := setupFeed(t)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/events?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestFeed_DeliversChange(t *testing.T) {
	hub, server, token := setupFeed(t)
	ws := dialFeed(t, server, token)
	waitOnline(t, hub, "u1")

	hub.NotifyChanged("u1", "organizations", "created", "o1")

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var change Change
	require.NoError(t, ws.ReadJSON(&change))

	assert.Equal(t, "organizations", change.Entity)
	assert.Equal(t, "created", change.Action)
	assert.Equal(t, "o1", change.ID)
}

// Notifications and keepalive pings share one conn; writes must be
// serialized or gorilla/websocket panics on the concurrent writer.
func TestFeed_ConcurrentNotifyAndPing(t *testing.T) {
	hub, server, token := setupFeed(t)
	ws := dialFeed(t, server, token)
	waitOnline(t, hub, "u1")

	hub.mutex.RLock()
	conn := hub.connections["u1"]
	hub.mutex.RUnlock()
	require.NotNil(t, conn)

	const notifications = 25

	var wg sync.WaitGroup
	for i := 0; i < notifications; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.NotifyChanged("u1", "jobs", "created", "j1")
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, conn.ping())
		}()
	}
	wg.Wait()

	// Pings are control frames answered by the default handler; ReadJSON
	// only surfaces the data messages.
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < notifications; i++ {
		var change Change
		require.NoError(t, ws.ReadJSON(&change))
		assert.Equal(t, "jobs", change.Entity)
	}
}
