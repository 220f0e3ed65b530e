package olog

// Templates returns all log templates.
func (c *Client) Templates() ([]Template, error) {
	var templates []Template
	if err := c.getJSON("list templates", "/Olog/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Template returns a specific template by ID.
func (c *Client) Template(id string) (*Template, error) {
	var template Template
	if err := c.getJSON("get template", "/Olog/templates/"+id, nil, &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// CreateTemplate creates a new log template. Nil reference lists are sent
// as empty lists.
func (c *Client) CreateTemplate(template Template) (*Template, error) {
	if template.Logbooks == nil {
		template.Logbooks = []Logbook{}
	}
	if template.Tags == nil {
		template.Tags = []Tag{}
	}
	if template.Properties == nil {
		template.Properties = []Property{}
	}
	var created Template
	if err := c.putJSON("create template", "/Olog/templates", nil, template, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteTemplate deletes a template. The returned flag is true when the
// service acknowledged the deletion with status 200.
func (c *Client) DeleteTemplate(id string) (bool, error) {
	return c.deleteResource("delete template", "/Olog/templates/"+id)
}
