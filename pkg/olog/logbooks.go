package olog

// Logbooks returns all logbooks.
func (c *Client) Logbooks() ([]Logbook, error) {
	var logbooks []Logbook
	if err := c.getJSON("list logbooks", "/Olog/logbooks", nil, &logbooks); err != nil {
		return nil, err
	}
	return logbooks, nil
}

// Logbook returns a specific logbook by name.
func (c *Client) Logbook(name string) (*Logbook, error) {
	var logbook Logbook
	if err := c.getJSON("get logbook", "/Olog/logbooks/"+name, nil, &logbook); err != nil {
		return nil, err
	}
	return &logbook, nil
}

// CreateLogbook creates a new logbook. An empty state defaults to Active.
func (c *Client) CreateLogbook(name, owner, state string) (*Logbook, error) {
	if state == "" {
		state = StateActive
	}
	payload := Logbook{Name: name, Owner: owner, State: state}
	var created Logbook
	if err := c.putJSON("create logbook", "/Olog/logbooks/"+name, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLogbooks updates multiple logbooks in one call.
func (c *Client) UpdateLogbooks(logbooks []Logbook) ([]Logbook, error) {
	var updated []Logbook
	if err := c.putJSON("update logbooks", "/Olog/logbooks", nil, logbooks, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLogbook deletes a logbook. The returned flag is true when the
// service acknowledged the deletion with status 200.
func (c *Client) DeleteLogbook(name string) (bool, error) {
	return c.deleteResource("delete logbook", "/Olog/logbooks/"+name)
}
