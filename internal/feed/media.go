package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tinytelemetry/signboard/internal/model"
)

// Placeholder for a slide whose media could not be reached.
const MediaUnavailable = "Media Not Accessible"

const driveHost = "https://drive.google.com"

// DriveID extracts a Google Drive file id from an "id=" query or a
// "/d/<id>/" path. It returns "" for other links.
func DriveID(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "id=") {
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		return u.Query().Get("id")
	}
	if _, rest, ok := strings.Cut(raw, "/d/"); ok {
		id, _, _ := strings.Cut(rest, "/")
		return id
	}
	return ""
}

// EventCandidates lists the URLs to try for an event item, primary first.
// Drive images get a thumbnail then a direct view link; Drive videos get a
// single download link; anything else is used as given.
func EventCandidates(m model.EventMedia) []string {
	id := DriveID(m.UploadURL)
	switch {
	case id == "":
		return []string{m.UploadURL}
	case m.Kind == model.MediaVideo:
		return []string{driveHost + "/uc?export=download&id=" + url.QueryEscape(id)}
	default:
		return []string{
			driveHost + "/thumbnail?id=" + url.QueryEscape(id) + "&sz=w1000",
			driveHost + "/uc?export=view&id=" + url.QueryEscape(id),
		}
	}
}

// ImageCandidates lists URLs for a news or award image. Drive links get
// the same two-stage treatment as event images.
func ImageCandidates(raw string) []string {
	if raw == "" {
		return nil
	}
	return EventCandidates(model.EventMedia{UploadURL: raw, Kind: model.MediaImage})
}

// Stage of a media resolution.
type Stage int

const (
	StageNone Stage = iota
	StagePrimary
	StageAlternate
	StageUnavailable
)

func (s Stage) String() string {
	switch s {
	case StagePrimary:
		return "primary"
	case StageAlternate:
		return "alternate"
	case StageUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

// Resolution is the outcome of probing one slide's media.
type Resolution struct {
	URL   string
	Stage Stage
	Err   error
}

func (r Resolution) OK() bool {
	return r.Stage == StagePrimary || r.Stage == StageAlternate
}

// Prober checks that media URLs answer. A failure is contained in the
// returned Resolution and never reported as an error to the caller.
type Prober struct {
	http    *http.Client
	timeout time.Duration
}

func NewProber(hc *http.Client, timeout time.Duration) *Prober {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Prober{http: hc, timeout: timeout}
}

// Resolve tries at most two candidates: the primary and one alternate.
func (p *Prober) Resolve(ctx context.Context, candidates []string) Resolution {
	if len(candidates) == 0 {
		return Resolution{Stage: StageNone}
	}
	if len(candidates) > 2 {
		candidates = candidates[:2]
	}
	var errs []error
	for i, u := range candidates {
		err := p.probe(ctx, u)
		if err == nil {
			stage := StagePrimary
			if i > 0 {
				stage = StageAlternate
				log.Printf("feed: media fell back to alternate %s", u)
			}
			return Resolution{URL: u, Stage: stage}
		}
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	log.Printf("feed: media not accessible: %v", err)
	return Resolution{Stage: StageUnavailable, Err: err}
}

func (p *Prober) probe(ctx context.Context, target string) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	code, err := p.do(ctx, http.MethodHead, target)
	if err != nil {
		return err
	}
	if code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented {
		code, err = p.do(ctx, http.MethodGet, target)
		if err != nil {
			return err
		}
	}
	if code < 200 || code > 399 {
		return &StatusError{Code: code, URL: target}
	}
	return nil
}

func (p *Prober) do(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", target, err)
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", target, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	resp.Body.Close()
	return resp.StatusCode, nil
}
