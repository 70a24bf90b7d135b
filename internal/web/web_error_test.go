package web_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayWithoutSessionRestarts(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/cat/play")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cat", rr.Header().Get("Location"))
}

func TestPlayForDifferentWordRestarts(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame("cat")

	rr := ts.get("/dog/play")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dog", rr.Header().Get("Location"))
}

func TestActionWithExpiredSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame("cat")

	// Simulate the store dropping the session
	id := ts.cookies.session()
	ts.cookies.cookies["session"].Value = id + "-gone"

	rr := ts.postHTMX("/cat/pool/L1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "/cat", rr.Header().Get("HX-Redirect"))

	rr = ts.post("/cat/key", url.Values{"key": {"c"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cat", rr.Header().Get("Location"))
}

func TestIdleGameExpires(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame("cat")

	ts.app.MockClock.Advance(time.Hour)
	rr := ts.get("/cat/play")
	assert.Equal(t, http.StatusOK, rr.Code)

	ts.app.MockClock.Advance(3 * time.Hour)
	rr = ts.get("/cat/play")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/cat", rr.Header().Get("Location"))
}

func TestUnknownGameRoute(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame("cat")

	rr := ts.get("/cat/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestActionsRequirePost(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startGame("cat")

	for _, path := range []string{
		"/cat/commit",
		"/cat/shuffle",
		"/cat/key",
		"/cat/pool/L1",
		"/cat/board/order",
		"/cat/board/W4/uncommit",
	} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, path)
		assertContainsText(t, parseHTML(rr.Body), "section.error h1", "Not allowed")
	}

	rr := ts.post("/cat/play", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// Nothing moved
	doc := parseHTML(ts.get("/cat/play").Body)
	assert.Equal(t, []string{"L1", "L2", "L3"}, ids(doc, "#pool .letter"))
}
