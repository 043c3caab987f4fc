package motion

import "time"

// Effect names a CSS reveal transition defined in site.css.
type Effect string

const (
	FadeIn     Effect = "fade-in"
	FadeUp     Effect = "fade-up"
	SlideLeft  Effect = "slide-left"
	SlideRight Effect = "slide-right"
	ZoomIn     Effect = "zoom-in"
)

// Step is one entry of a section timeline. Delay is measured from the
// moment the section enters the viewport.
type Step struct {
	Target   string
	Effect   Effect
	Delay    time.Duration
	Duration time.Duration
}

func (s Step) DelayMS() int64    { return s.Delay.Milliseconds() }
func (s Step) DurationMS() int64 { return s.Duration.Milliseconds() }

// Timeline is the fixed reveal sequence a section plays the first time it
// scrolls into view.
type Timeline struct {
	Section string
	Steps   []Step
}

// Step returns the step animating target.
func (t Timeline) Step(target string) (Step, bool) {
	for _, s := range t.Steps {
		if s.Target == target {
			return s, true
		}
	}
	return Step{}, false
}

// Total is the time until the last step finishes.
func (t Timeline) Total() time.Duration {
	var end time.Duration
	for _, s := range t.Steps {
		if d := s.Delay + s.Duration; d > end {
			end = d
		}
	}
	return end
}

// Items expands the step for target into n steps whose delays are
// staggered by step. Unknown targets yield nil.
func (t Timeline) Items(target string, n int, step time.Duration) []Step {
	base, ok := t.Step(target)
	if !ok || n <= 0 {
		return nil
	}
	delays := Stagger(base.Delay, step, n)
	out := make([]Step, n)
	for i, d := range delays {
		out[i] = base
		out[i].Delay = d
	}
	return out
}

// Stagger returns n delays starting at base and growing by step.
func Stagger(base, step time.Duration, n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = base + time.Duration(i)*step
	}
	return out
}

// ItemStagger is the gap between consecutive cards in a grid.
const ItemStagger = 100 * time.Millisecond

const (
	fast   = 400 * time.Millisecond
	normal = 600 * time.Millisecond
	slow   = 800 * time.Millisecond
)

var timelines = map[string]Timeline{
	"home": {Section: "home", Steps: []Step{
		{Target: "greeting", Effect: FadeUp, Delay: 0, Duration: normal},
		{Target: "name", Effect: FadeUp, Delay: 200 * time.Millisecond, Duration: normal},
		{Target: "role", Effect: FadeIn, Delay: 400 * time.Millisecond, Duration: normal},
		{Target: "actions", Effect: FadeUp, Delay: 600 * time.Millisecond, Duration: normal},
		{Target: "avatar", Effect: ZoomIn, Delay: 300 * time.Millisecond, Duration: slow},
	}},
	"about": {Section: "about", Steps: []Step{
		{Target: "heading", Effect: FadeUp, Duration: normal},
		{Target: "bio", Effect: SlideRight, Delay: 200 * time.Millisecond, Duration: slow},
		{Target: "facts", Effect: SlideLeft, Delay: 300 * time.Millisecond, Duration: slow},
	}},
	"projects": {Section: "projects", Steps: []Step{
		{Target: "heading", Effect: FadeUp, Duration: normal},
		{Target: "filters", Effect: FadeIn, Delay: 200 * time.Millisecond, Duration: fast},
		{Target: "card", Effect: FadeUp, Delay: 300 * time.Millisecond, Duration: normal},
	}},
	"skills": {Section: "skills", Steps: []Step{
		{Target: "heading", Effect: FadeUp, Duration: normal},
		{Target: "filters", Effect: FadeIn, Delay: 200 * time.Millisecond, Duration: fast},
		{Target: "card", Effect: ZoomIn, Delay: 300 * time.Millisecond, Duration: fast},
	}},
	"achievements": {Section: "achievements", Steps: []Step{
		{Target: "heading", Effect: FadeUp, Duration: normal},
		{Target: "card", Effect: FadeUp, Delay: 200 * time.Millisecond, Duration: normal},
	}},
	"contact": {Section: "contact", Steps: []Step{
		{Target: "heading", Effect: FadeUp, Duration: normal},
		{Target: "details", Effect: SlideRight, Delay: 200 * time.Millisecond, Duration: slow},
		{Target: "form", Effect: SlideLeft, Delay: 300 * time.Millisecond, Duration: slow},
	}},
	"footer": {Section: "footer", Steps: []Step{
		{Target: "body", Effect: FadeIn, Duration: normal},
	}},
}

// TimelineFor returns the timeline of a section, or an empty one.
func TimelineFor(section string) Timeline {
	if t, ok := timelines[section]; ok {
		return t
	}
	return Timeline{Section: section}
}
