package combobox

// TransitionFunc observes every dispatched event with the state before and
// after it was applied.
type TransitionFunc func(ev Event, before, after State, effects []Effect)

// Combobox owns an option set and the interaction state over it. The filtered
// list is recomputed lazily and cached until the input value changes.
type Combobox struct {
	options []string
	state   State

	cached      bool
	cachedValue string
	cachedList  []string

	onTransition TransitionFunc
}

// New creates a combobox over options in its initial state. The slice is
// retained and must not be modified afterwards.
func New(options []string) *Combobox {
	return &Combobox{
		options: options,
		state:   Initial(),
	}
}

// Options returns the full option set.
func (c *Combobox) Options() []string {
	return c.options
}

// State returns the current state. Active is already normalized: a stale
// index is reported as NoOption.
func (c *Combobox) State() State {
	s := c.state
	if !s.HasActive(len(c.Filtered())) {
		s.Active = NoOption
	}
	return s
}

// Filtered returns the options matching the current value. The returned slice
// is shared with the cache and must be treated as read-only.
func (c *Combobox) Filtered() []string {
	return c.filter(c.state.Value)
}

// Active returns the highlighted option, if any.
func (c *Combobox) Active() (int, string, bool) {
	filtered := c.Filtered()
	if !c.state.HasActive(len(filtered)) {
		return NoOption, "", false
	}
	return c.state.Active, filtered[c.state.Active], true
}

// OnTransition installs fn as the transition observer, replacing any previous
// one. A nil fn removes the observer.
func (c *Combobox) OnTransition(fn TransitionFunc) {
	c.onTransition = fn
}

// Dispatch applies ev and returns the effects the renderer must perform.
func (c *Combobox) Dispatch(ev Event) []Effect {
	before := c.state
	next, effects := reduce(before, c.filter, ev)
	c.state = next

	if c.onTransition != nil {
		c.onTransition(ev, before, next, effects)
	}
	return effects
}

func (c *Combobox) filter(value string) []string {
	if c.cached && c.cachedValue == value {
		return c.cachedList
	}
	list := Filter(value, c.options)
	// Only the current value is worth caching; option clicks probe other values.
	if value == c.state.Value {
		c.cached = true
		c.cachedValue = value
		c.cachedList = list
	}
	return list
}
