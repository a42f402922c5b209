package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/signboard/internal/feed"
	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/rotation"
)

// BoardPage is the rotating slideshow. It is only reached once the gate
// reports ready.
type BoardPage struct {
	rt       *Runtime
	progress progress.Model

	frameSeq uint64
	now      time.Time

	media      feed.Resolution
	mediaEpoch uint64

	showImpressions bool
	impressions     []model.SectionCount
	impressionsErr  error
}

func NewBoardPage(rt *Runtime) *BoardPage {
	return &BoardPage{
		rt: rt,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}
}

func (b *BoardPage) ID() string { return pageBoard }

// Init loads the settled lists into the controller, engages the timer and
// starts the frame loop.
func (b *BoardPage) Init() tea.Cmd {
	lists := b.rt.readiness.Lists()
	b.rt.controller.SetContent(rotation.Content{
		News:   lists.News,
		Awards: lists.Awards,
		Events: lists.Events,
	})
	b.rt.timer.Engage()
	b.frameSeq++
	b.now = b.rt.now()
	log.Printf("tui: board launched (session %s)", b.rt.session.ID())

	return tea.Batch(
		b.rt.timer.Reset(),
		frameTickCmd(b.frameSeq),
		b.onShow(b.rt.controller.State()),
	)
}

func (b *BoardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case rotation.FireMsg:
		st, cmd, fired := b.rt.timer.Fire(msg)
		if !fired {
			return nil, nil
		}
		return tea.Batch(cmd, b.onShow(st)), nil

	case frameMsg:
		if msg.seq != b.frameSeq {
			return nil, nil
		}
		b.now = msg.at
		return frameTickCmd(b.frameSeq), nil

	case mediaResolvedMsg:
		if msg.epoch == b.rt.controller.Epoch() {
			b.media = msg.res
			b.mediaEpoch = msg.epoch
		}
		return nil, nil

	case impressionsLoadedMsg:
		b.impressions, b.impressionsErr = msg.counts, msg.err
		return nil, nil

	case RemoteMsg:
		if msg.Retry {
			return nil, b.leave()
		}
		st, cmd, handled := b.rt.dispatcher.Apply(msg.Command)
		if !handled {
			return nil, nil
		}
		log.Printf("tui: remote %s reset timer (epoch %d)", msg.Command, st.Epoch)
		return tea.Batch(cmd, b.onShow(st)), nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return nil, nil
}

func (b *BoardPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	keys := b.rt.keys
	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		b.rt.timer.Disengage()
		b.frameSeq++
		return tea.Quit, nil
	case key.Matches(msg, keys.Retry):
		return nil, b.leave()
	case key.Matches(msg, keys.Impressions):
		b.showImpressions = !b.showImpressions
		if b.showImpressions && b.rt.querier != nil {
			return loadImpressionsCmd(b.rt.querier), nil
		}
		return nil, nil
	}

	st, cmd, handled := b.rt.dispatcher.HandleKey(msg)
	if !handled {
		return nil, nil
	}
	return tea.Batch(cmd, b.onShow(st)), nil
}

// leave re-engages the gate: the timer is cancelled and the frame loop
// stops before the gate starts a new attempt.
func (b *BoardPage) leave() *PageNav {
	b.rt.timer.Disengage()
	b.frameSeq++
	b.showImpressions = false
	return &PageNav{PageID: pageGate}
}

// onShow runs for every slide that becomes visible: it resets the media
// state, starts a probe and records the impression.
func (b *BoardPage) onShow(st rotation.State) tea.Cmd {
	b.media = feed.Resolution{}
	b.mediaEpoch = st.Epoch
	b.now = b.rt.now()

	imp := model.Impression{
		SessionID: b.rt.session.ID(),
		Epoch:     st.Epoch,
		Section:   st.Section.String(),
		Item:      b.itemLabel(st.Section),
		ShownAt:   b.now,
	}
	return tea.Batch(
		resolveMediaCmd(b.rt.prober, st.Epoch, b.mediaCandidates(st.Section)),
		recordImpressionCmd(b.rt.recorder, imp),
	)
}

func (b *BoardPage) mediaCandidates(s rotation.Section) []string {
	c := b.rt.controller
	switch s {
	case rotation.News:
		if item, _, _, ok := c.CurrentNews(); ok {
			return feed.ImageCandidates(item.ImageURL)
		}
	case rotation.Event:
		if item, _, _, ok := c.CurrentEvent(); ok {
			return feed.EventCandidates(item)
		}
	}
	return nil
}

func (b *BoardPage) itemLabel(s rotation.Section) string {
	c := b.rt.controller
	switch s {
	case rotation.News:
		if item, _, _, ok := c.CurrentNews(); ok {
			return item.Headline
		}
	case rotation.Award:
		if cards, start, n := c.AwardWindow(); n > 0 && len(cards) > 0 {
			return fmt.Sprintf("records %d-%d: %s", start+1, start+len(cards), cards[0].StudentName)
		}
	case rotation.Event:
		if item, _, _, ok := c.CurrentEvent(); ok {
			return item.UploadURL
		}
	case rotation.Promo:
		if item, _, _, ok := c.CurrentPromo(); ok {
			return item.Company
		}
	}
	return ""
}

func (b *BoardPage) View(width, height int) string {
	return b.render(width, height)
}
