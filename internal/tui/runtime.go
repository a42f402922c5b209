package tui

import (
	"time"

	"github.com/tinytelemetry/signboard/internal/feed"
	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/paginate"
	"github.com/tinytelemetry/signboard/internal/readiness"
	"github.com/tinytelemetry/signboard/internal/rotation"
	"github.com/tinytelemetry/signboard/internal/session"
)

const promoCursorKey = "promo"

// Options wires the display. Optional collaborators may be nil.
type Options struct {
	Source            model.ContentSource
	FetchTimeout      time.Duration
	Promos            []model.PromoListing
	AwardPageSize     int
	BootstrapInterval time.Duration
	SlideInterval     time.Duration
	Session           *session.Store

	Prober    *feed.Prober
	Recorder  model.ImpressionRecorder
	Querier   model.ImpressionQuerier
	Publisher *StatusPublisher

	Title      string
	AutoLaunch bool
	Keys       KeyMap
}

// Runtime is the state shared by the gate and board pages. It is only
// touched from the UI loop.
type Runtime struct {
	readiness  *readiness.Aggregator
	controller *rotation.Controller
	timer      *rotation.Timer
	dispatcher *rotation.Dispatcher
	session    *session.Store

	prober    *feed.Prober
	recorder  model.ImpressionRecorder
	querier   model.ImpressionQuerier
	publisher *StatusPublisher

	title      string
	autoLaunch bool
	keys       KeyMap
	now        func() time.Time
}

func NewRuntime(opts Options) *Runtime {
	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}
	if opts.SlideInterval <= 0 {
		opts.SlideInterval = model.DefaultSlideInterval
	}
	if opts.AwardPageSize < 1 {
		opts.AwardPageSize = model.DefaultAwardPageSize
	}
	if opts.Title == "" {
		opts.Title = model.DefaultBoardTitle
	}
	if opts.Keys.Nav.Next.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}

	promos := paginate.NewPersistent(sess, promoCursorKey, opts.Promos)
	ctrl := rotation.NewController(rotation.Content{}, opts.AwardPageSize, promos)
	timer := rotation.NewTimer(ctrl, opts.BootstrapInterval, opts.SlideInterval)

	return &Runtime{
		readiness:  readiness.New(opts.Source, opts.FetchTimeout),
		controller: ctrl,
		timer:      timer,
		dispatcher: rotation.NewDispatcher(opts.Keys.Nav, ctrl, timer),
		session:    sess,
		prober:     opts.Prober,
		recorder:   opts.Recorder,
		querier:    opts.Querier,
		publisher:  opts.Publisher,
		title:      opts.Title,
		autoLaunch: opts.AutoLaunch,
		keys:       opts.Keys,
		now:        time.Now,
	}
}

// NewProgramModel builds the top-level model: the launch gate first, then
// the board.
func NewProgramModel(rt *Runtime) *App {
	app := NewApp(NewGatePage(rt), NewBoardPage(rt))
	app.OnUpdate = rt.publish
	return app
}

// snapshot copies the current display state.
func (rt *Runtime) snapshot(page string) model.DisplayStatus {
	rs := rt.readiness.State()
	st := rt.controller.State()
	news, awards, events := rt.controller.Lengths()
	return model.DisplayStatus{
		SessionID:   rt.session.ID(),
		StartedAt:   rt.session.StartedAt(),
		Page:        page,
		Ready:       rs.Ready,
		Error:       rs.Error,
		Pending:     rs.Pending,
		Message:     rs.Status,
		Section:     st.Section.String(),
		NewsIndex:   st.NewsIndex,
		NewsCount:   news,
		AwardPage:   st.AwardPage,
		AwardCount:  awards,
		EventIndex:  st.EventIndex,
		EventCount:  events,
		PromoIndex:  st.PromoIndex,
		Epoch:       st.Epoch,
		Cycles:      st.Cycles,
		TimerArmed:  rt.timer.Armed(),
		TimerPeriod: rt.timer.Period(),

		TimerHandle:    uint64(rt.timer.Live()),
		TimerRemaining: rt.timer.Remaining(rt.now()),
		TimerSettled:   rt.timer.Settled(),
	}
}

func (rt *Runtime) publish(page string) {
	if rt.publisher == nil {
		return
	}
	rt.publisher.Publish(rt.snapshot(page))
}
