package rotation

import (
	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/paginate"
)

// Content is one settled set of fetched lists.
type Content struct {
	News   []model.NewsItem
	Awards []model.Achievement
	Events []model.EventMedia
}

// State is a snapshot of the controller after a transition.
type State struct {
	Section    Section
	NewsIndex  int
	AwardPage  int
	EventIndex int
	PromoIndex int
	Epoch      uint64
	Cycles     int
}

// Controller tracks the active section and owns the per-section
// paginators. It has no notion of time or rendering.
type Controller struct {
	section Section
	epoch   uint64
	cycles  int

	news   *paginate.Cyclic[model.NewsItem]
	awards *paginate.Window[model.Achievement]
	events *paginate.Cyclic[model.EventMedia]
	promo  *paginate.Persistent[model.PromoListing]
}

// NewController starts at the first section with every cursor at 0. promo
// may be nil, in which case the promo section shows nothing.
func NewController(content Content, awardPageSize int, promo *paginate.Persistent[model.PromoListing]) *Controller {
	return &Controller{
		section: First,
		news:    paginate.NewCyclic(content.News),
		awards:  paginate.NewWindow(content.Awards, awardPageSize),
		events:  paginate.NewCyclic(content.Events),
		promo:   promo,
	}
}

// SetContent replaces the fetched lists. Cursors still in range are kept.
func (c *Controller) SetContent(content Content) {
	c.news.Replace(content.News)
	c.awards.Replace(content.Awards)
	c.events.Replace(content.Events)
}

// Transition applies a manual command and returns the new state.
func (c *Controller) Transition(cmd Command) State {
	return c.Advance(cmd.Direction())
}

// Advance moves one section in dir.
//
// Wrapping forward from the terminal section also steps the news, award
// and event cursors forward. Wrapping backward from the first section
// steps news backward cyclically while award and event clamp at zero.
func (c *Controller) Advance(dir Direction) State {
	from := c.section
	switch dir {
	case Forward:
		if from == Terminal {
			c.section = First
			c.news.Forward()
			c.awards.Forward()
			c.events.Forward()
			c.cycles++
		} else {
			c.section = from.Next()
		}
	case Backward:
		if from == First {
			c.section = Terminal
			c.news.Backward()
			c.awards.BackwardClamp()
			c.events.BackwardClamp()
		} else {
			c.section = from.Prev()
		}
	}
	if from == Promo && c.section != Promo && c.promo != nil {
		c.promo.Hide()
	}
	c.epoch++
	return c.State()
}

func (c *Controller) State() State {
	st := State{
		Section:    c.section,
		NewsIndex:  c.news.Index(),
		AwardPage:  c.awards.Page(),
		EventIndex: c.events.Index(),
		Epoch:      c.epoch,
		Cycles:     c.cycles,
	}
	if c.promo != nil {
		st.PromoIndex = c.promo.Index()
	}
	return st
}

func (c *Controller) Section() Section { return c.section }
func (c *Controller) Epoch() uint64    { return c.epoch }

// CurrentNews returns the visible news item and its position.
func (c *Controller) CurrentNews() (model.NewsItem, int, int, bool) {
	item, ok := c.news.Current()
	return item, c.news.Index(), c.news.Len(), ok
}

// AwardWindow returns the visible award cards, the list index of the first
// card and the total list length.
func (c *Controller) AwardWindow() ([]model.Achievement, int, int) {
	return c.awards.Visible(), c.awards.Start(), c.awards.Len()
}

func (c *Controller) CurrentEvent() (model.EventMedia, int, int, bool) {
	item, ok := c.events.Current()
	return item, c.events.Index(), c.events.Len(), ok
}

func (c *Controller) CurrentPromo() (model.PromoListing, int, int, bool) {
	if c.promo == nil {
		return model.PromoListing{}, 0, 0, false
	}
	item, ok := c.promo.Current()
	return item, c.promo.Index(), c.promo.Len(), ok
}

// Lengths reports the backing list sizes.
func (c *Controller) Lengths() (news, awards, events int) {
	return c.news.Len(), c.awards.Len(), c.events.Len()
}
