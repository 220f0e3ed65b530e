package olog

// Levels returns all severity levels.
func (c *Client) Levels() ([]Level, error) {
	var levels []Level
	if err := c.getJSON("list levels", "/Olog/levels", nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// Level returns a specific level by name.
func (c *Client) Level(name string) (*Level, error) {
	var level Level
	if err := c.getJSON("get level", "/Olog/levels/"+name, nil, &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// CreateLevel creates a new level. The service, not the client, enforces
// that at most one level is marked as the default.
func (c *Client) CreateLevel(name string, defaultLevel bool) (*Level, error) {
	payload := Level{Name: name, DefaultLevel: defaultLevel}
	var created Level
	if err := c.putJSON("create level", "/Olog/levels/"+name, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateLevels creates multiple levels in one call.
func (c *Client) CreateLevels(levels []Level) ([]Level, error) {
	var created []Level
	if err := c.putJSON("create levels", "/Olog/levels", nil, levels, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// DeleteLevel deletes a level. The returned flag is true when the service
// acknowledged the deletion with status 200.
func (c *Client) DeleteLevel(name string) (bool, error) {
	return c.deleteResource("delete level", "/Olog/levels/"+name)
}
