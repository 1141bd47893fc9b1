package filtering

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// BlockedByHeader names the rule that produced a synthesized response.
const BlockedByHeader = "X-Twich-Blocked-By"

type gatekeeperTransport struct {
	gk   *Gatekeeper
	next http.RoundTripper
}

// Transport wraps next so blocked requests get the synthesized denial
// response and never reach the network. A nil next uses http.DefaultTransport.
func (g *Gatekeeper) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &gatekeeperTransport{gk: g, next: next}
}

func (t *gatekeeperTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	verdict := t.gk.DecideURL(req.URL)
	if !verdict.Blocked {
		return t.next.RoundTrip(req)
	}

	if req.Body != nil {
		_ = req.Body.Close()
	}

	resp := verdict.Response
	header := make(http.Header)
	header.Set(BlockedByHeader, verdict.Rule.Pattern())
	header.Set("Content-Length", strconv.Itoa(len(resp.Body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.StatusCode, resp.ReasonPhrase),
		StatusCode:    resp.StatusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(resp.Body)),
		ContentLength: int64(len(resp.Body)),
		Request:       req,
	}, nil
}
