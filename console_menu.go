package goConsole

// VisibleMenu returns the navigation entries the current session's mode may
// enter, in the order the menu was declared at build time. A signed-out (or
// unreadable) session sees no entries: the shell renders nothing rather than
// a menu of dead links.
//
// VisibleMenu does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) VisibleMenu() []MenuEntry {
	if c == nil {
		return nil
	}

	sess, ok, err := c.store.Get()
	if err != nil || !ok {
		return nil
	}

	var visible []MenuEntry
	for _, entry := range c.menu {
		if sess.Identity.Mode.In(entry.AllowedModes) {
			visible = append(visible, entry)
		}
	}

	if visible != nil {
		c.metricInc(MetricMenuFiltered)
	}
	return visible
}
