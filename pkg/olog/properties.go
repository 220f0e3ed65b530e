package olog

// Properties returns all properties. When includeInactive is true the
// service is asked to include inactive properties as well.
func (c *Client) Properties(includeInactive bool) ([]Property, error) {
	var query map[string]string
	if includeInactive {
		query = map[string]string{"inactive": "true"}
	}
	var properties []Property
	if err := c.getJSON("list properties", "/Olog/properties", query, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Property returns a specific property by name.
func (c *Client) Property(name string) (*Property, error) {
	var property Property
	if err := c.getJSON("get property", "/Olog/properties/"+name, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty creates a new property with the given attributes. An empty
// state defaults to Active. A nil attribute list is sent as an empty list.
func (c *Client) CreateProperty(name, owner string, attributes []Attribute, state string) (*Property, error) {
	if state == "" {
		state = StateActive
	}
	if attributes == nil {
		attributes = []Attribute{}
	}
	payload := Property{Name: name, Owner: owner, State: state, Attributes: attributes}
	var created Property
	if err := c.putJSON("create property", "/Olog/properties/"+name, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProperties updates multiple properties in one call.
func (c *Client) UpdateProperties(properties []Property) ([]Property, error) {
	var updated []Property
	if err := c.putJSON("update properties", "/Olog/properties", nil, properties, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProperty deletes a property. The returned flag is true when the
// service acknowledged the deletion with status 200.
func (c *Client) DeleteProperty(name string) (bool, error) {
	return c.deleteResource("delete property", "/Olog/properties/"+name)
}
