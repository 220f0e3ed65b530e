package olog

// Tags returns all tags.
func (c *Client) Tags() ([]Tag, error) {
	var tags []Tag
	if err := c.getJSON("list tags", "/Olog/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Tag returns a specific tag by name.
func (c *Client) Tag(name string) (*Tag, error) {
	var tag Tag
	if err := c.getJSON("get tag", "/Olog/tags/"+name, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a new tag. An empty state defaults to Active.
func (c *Client) CreateTag(name, state string) (*Tag, error) {
	if state == "" {
		state = StateActive
	}
	payload := Tag{Name: name, State: state}
	var created Tag
	if err := c.putJSON("create tag", "/Olog/tags/"+name, nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTags updates multiple tags in one call.
func (c *Client) UpdateTags(tags []Tag) ([]Tag, error) {
	var updated []Tag
	if err := c.putJSON("update tags", "/Olog/tags", nil, tags, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTag deletes a tag. The returned flag is true when the service
// acknowledged the deletion with status 200.
func (c *Client) DeleteTag(name string) (bool, error) {
	return c.deleteResource("delete tag", "/Olog/tags/"+name)
}
