package levels

// Campaign walks through levels in order.
type Campaign struct {
	levels []Level
	index  int
}

// NewCampaign starts at index start, clamped to the available levels.
func NewCampaign(levels []Level, start int) *Campaign {
	return &Campaign{levels: levels, index: min(max(start, 0), len(levels))}
}

// Current returns the level being played. ok is false once every level is done.
func (c *Campaign) Current() (lvl Level, ok bool) {
	if c.index >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[c.index], true
}

// Advance moves to the next level and reports whether one remains.
func (c *Campaign) Advance() bool {
	if c.index < len(c.levels) {
		c.index++
	}
	return c.index < len(c.levels)
}

// Index returns the zero-based position in the campaign.
func (c *Campaign) Index() int {
	return c.index
}

// Len returns the number of levels.
func (c *Campaign) Len() int {
	return len(c.levels)
}
