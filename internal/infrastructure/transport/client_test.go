package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Send(t *testing.T) {
	var gotBody, gotAction, gotType string
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotAction = r.Header.Get("SOAPAction")
		gotType = r.Header.Get("Content-Type")
		gotLength = r.ContentLength
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer srv.Close()

	body := []byte("<Envelope/>")
	out, err := New().Send(context.Background(), srv.URL, body, map[string]string{
		"Content-Type": `text/xml; charset="utf-8"`,
		"SOAPAction":   `"urn:process"`,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if string(out) != "<ok/>" {
		t.Fatalf("unexpected reply: %s", out)
	}
	if gotBody != "<Envelope/>" || gotAction != `"urn:process"` || gotType != `text/xml; charset="utf-8"` {
		t.Fatalf("unexpected request body=%q action=%q type=%q", gotBody, gotAction, gotType)
	}
	if gotLength != int64(len(body)) {
		t.Fatalf("expected content length %d, got %d", len(body), gotLength)
	}
}

func TestClient_Send_StatusError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New().Send(context.Background(), srv.URL, []byte("x"), nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected StatusError 503, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one round trip, got %d", calls)
	}
}

func TestClient_Do_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "pub" || pass != "priv" || r.Method != http.MethodPut {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("<api-error-response/>"))
	}))
	defer srv.Close()

	reply, err := New().Do(context.Background(), Request{Method: http.MethodPut, URL: srv.URL, Username: "pub", Password: "priv"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply.StatusCode != http.StatusUnprocessableEntity || string(reply.Body) != "<api-error-response/>" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := New().Send(context.Background(), url, nil, nil); err == nil {
		t.Fatalf("expected transport error")
	}
}
