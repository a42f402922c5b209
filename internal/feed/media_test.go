package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tinytelemetry/signboard/internal/model"
)

func TestDriveID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"https://drive.google.com/open?id=abc123", "abc123"},
		{"https://drive.google.com/file/d/xyz789/view?usp=sharing", "xyz789"},
		{"https://drive.google.com/file/d/only", "only"},
		{"https://example.com/poster.png", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DriveID(tt.in); got != tt.want {
			t.Fatalf("DriveID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventCandidates(t *testing.T) {
	t.Parallel()

	img := EventCandidates(model.EventMedia{UploadURL: "https://drive.google.com/open?id=p1", Kind: model.MediaImage})
	wantImg := []string{
		"https://drive.google.com/thumbnail?id=p1&sz=w1000",
		"https://drive.google.com/uc?export=view&id=p1",
	}
	if !reflect.DeepEqual(img, wantImg) {
		t.Fatalf("image candidates = %v, want %v", img, wantImg)
	}

	vid := EventCandidates(model.EventMedia{UploadURL: "https://drive.google.com/file/d/v1/view", Kind: model.MediaVideo})
	if want := []string{"https://drive.google.com/uc?export=download&id=v1"}; !reflect.DeepEqual(vid, want) {
		t.Fatalf("video candidates = %v, want %v", vid, want)
	}

	raw := EventCandidates(model.EventMedia{UploadURL: "https://cdn.example.com/x.mp4", Kind: model.MediaVideo})
	if len(raw) != 1 || raw[0] != "https://cdn.example.com/x.mp4" {
		t.Fatalf("non-drive candidates = %v", raw)
	}
	if ImageCandidates("") != nil {
		t.Fatal("ImageCandidates(\"\") != nil")
	}
}

func TestResolveFallsBackToAlternate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/primary":
			w.WriteHeader(http.StatusForbidden)
		case "/alternate":
			w.WriteHeader(http.StatusOK)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewProber(srv.Client(), time.Second)
	res := p.Resolve(context.Background(), []string{srv.URL + "/primary", srv.URL + "/alternate"})
	if res.Stage != StageAlternate || res.URL != srv.URL+"/alternate" || !res.OK() {
		t.Fatalf("Resolve() = %+v, want alternate", res)
	}
}

func TestResolveUnavailableAfterTwoStages(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewProber(srv.Client(), time.Second)
	res := p.Resolve(context.Background(), []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"})
	if res.Stage != StageUnavailable || res.OK() || res.Err == nil {
		t.Fatalf("Resolve() = %+v, want unavailable", res)
	}
	if hits.Load() != 2 {
		t.Fatalf("hits = %d, want 2 (one alternate only)", hits.Load())
	}
}

func TestProbeFallsBackToRangeGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Range") != "bytes=0-0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusPartialContent)
	}))
	defer srv.Close()

	p := NewProber(srv.Client(), time.Second)
	if res := p.Resolve(context.Background(), []string{srv.URL}); res.Stage != StagePrimary {
		t.Fatalf("Resolve() = %+v, want primary", res)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	t.Parallel()

	p := NewProber(nil, time.Second)
	if res := p.Resolve(context.Background(), nil); res.Stage != StageNone || res.OK() {
		t.Fatalf("Resolve(nil) = %+v", res)
	}
}
