package olog

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/sligara7/phoebus-golog/pkg/types"
)

// SimpleClient is a convenience facade over Client designed for
// data-acquisition integration. Its read-only introspection views degrade to
// empty collections instead of propagating errors, because they are advisory
// lookups used to decide whether to auto-create a resource; write-path
// failures always propagate.
type SimpleClient struct {
	client *Client
}

// NewSimpleClient resolves configuration and returns a simple facade over a
// fresh Client.
func NewSimpleClient(opts Options) (*SimpleClient, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &SimpleClient{client: client}, nil
}

// Simple wraps an existing Client with the facade.
func Simple(client *Client) *SimpleClient {
	return &SimpleClient{client: client}
}

// Client returns the underlying resource client.
func (s *SimpleClient) Client() *Client {
	return s.client
}

// Close releases the underlying transport resources.
func (s *SimpleClient) Close() {
	s.client.Close()
}

// TagNames returns the names of all tags, or an empty list when the lookup
// fails.
func (s *SimpleClient) TagNames() []string {
	tags, err := s.client.Tags()
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag.Name != "" {
			names = append(names, tag.Name)
		}
	}
	return names
}

// LogbookNames returns the names of all logbooks, or an empty list when the
// lookup fails.
func (s *SimpleClient) LogbookNames() []string {
	logbooks, err := s.client.Logbooks()
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(logbooks))
	for _, logbook := range logbooks {
		if logbook.Name != "" {
			names = append(names, logbook.Name)
		}
	}
	return names
}

// PropertyNames returns a mapping of property names to their attribute
// names, or an empty map when the lookup fails.
func (s *SimpleClient) PropertyNames() map[string][]string {
	properties, err := s.client.Properties(false)
	if err != nil {
		return map[string][]string{}
	}
	result := make(map[string][]string, len(properties))
	for _, property := range properties {
		if property.Name == "" {
			continue
		}
		attrs := make([]string, 0, len(property.Attributes))
		for _, attr := range property.Attributes {
			if attr.Name != "" {
				attrs = append(attrs, attr.Name)
			}
		}
		result[property.Name] = attrs
	}
	return result
}

// CreateLogbook creates a logbook with the default Active state.
func (s *SimpleClient) CreateLogbook(name, owner string) (*Logbook, error) {
	return s.client.CreateLogbook(name, owner, StateActive)
}

// CreateTag creates a tag; active selects the Active or Inactive state.
func (s *SimpleClient) CreateTag(name string, active bool) (*Tag, error) {
	state := StateActive
	if !active {
		state = StateInactive
	}
	return s.client.CreateTag(name, state)
}

// CreateProperty creates a property whose attributes are the given keys with
// empty values.
func (s *SimpleClient) CreateProperty(name string, keys []string) (*Property, error) {
	attributes := make([]Attribute, 0, len(keys))
	for _, key := range keys {
		attributes = append(attributes, Attribute{Name: key, Value: "", State: StateActive})
	}
	return s.client.CreateProperty(name, "", attributes, StateActive)
}

// LogParams describes a log entry for the facade's Log operation. Verify and
// Ensure are mutually exclusive existence policies for referenced logbooks,
// tags, and properties: Verify (the default) fails fast when a reference does
// not exist, Ensure silently creates missing resources first. Ensure forces
// Verify off.
type LogParams struct {
	Text       string
	Logbooks   []string
	Tags       []string
	Properties map[string]map[string]string

	// AttachmentPaths are files to attach by path.
	AttachmentPaths []string

	// AttachmentReaders are in-memory attachments; each is materialized to a
	// scoped temporary file before upload and the file is deleted after the
	// request completes.
	AttachmentReaders []io.Reader

	// Verify defaults to true when unset.
	Verify types.NullableBool
	Ensure bool
}

// formatProperties converts the facade's nested property map to wire
// entities. Keys are sorted for a deterministic payload.
func formatProperties(properties map[string]map[string]string) []Property {
	formatted := make([]Property, 0, len(properties))
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attrs := properties[name]
		keys := make([]string, 0, len(attrs))
		for key := range attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		attributes := make([]Attribute, 0, len(keys))
		for _, key := range keys {
			attributes = append(attributes, Attribute{Name: key, Value: attrs[key]})
		}
		formatted = append(formatted, Property{Name: name, Attributes: attributes})
	}
	return formatted
}

// Log creates a single log entry. Referenced logbooks, tags, and properties
// are verified or auto-created according to the existence policy before the
// creation call is issued.
func (s *SimpleClient) Log(params LogParams) (*Log, error) {
	verify := true
	if params.Verify.Valid {
		verify = params.Verify.Value
	}
	if params.Ensure {
		verify = false
	}

	if len(params.Logbooks) == 0 {
		return nil, ErrValidation.New("at least one logbook must be specified")
	}

	if verify || params.Ensure {
		existing := s.LogbookNames()
		for _, logbook := range params.Logbooks {
			if !contains(existing, logbook) {
				if params.Ensure {
					if _, err := s.CreateLogbook(logbook, ""); err != nil {
						return nil, err
					}
				} else {
					return nil, ErrValidation.New("logbook '" + logbook + "' does not exist")
				}
			}
		}
	}

	if len(params.Tags) > 0 && (verify || params.Ensure) {
		existing := s.TagNames()
		for _, tag := range params.Tags {
			if !contains(existing, tag) {
				if params.Ensure {
					if _, err := s.CreateTag(tag, true); err != nil {
						return nil, err
					}
				} else {
					return nil, ErrValidation.New("tag '" + tag + "' does not exist")
				}
			}
		}
	}

	if len(params.Properties) > 0 && (verify || params.Ensure) {
		existing := s.PropertyNames()
		for name, attrs := range params.Properties {
			if _, ok := existing[name]; !ok {
				if params.Ensure {
					keys := make([]string, 0, len(attrs))
					for key := range attrs {
						keys = append(keys, key)
					}
					sort.Strings(keys)
					if _, err := s.CreateProperty(name, keys); err != nil {
						return nil, err
					}
				} else {
					return nil, ErrValidation.New("property '" + name + "' does not exist")
				}
			}
		}
	}

	req := LogRequest{
		Title:       params.Text,
		Description: params.Text,
		Logbooks:    params.Logbooks,
		Tags:        params.Tags,
		Properties:  formatProperties(params.Properties),
	}

	filePaths, cleanup, err := s.materializeAttachments(params.AttachmentPaths, params.AttachmentReaders)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if len(filePaths) > 0 {
		return s.client.CreateLogWithFiles(req, filePaths)
	}
	return s.client.CreateLog(req)
}

// materializeAttachments resolves attachment inputs to file paths. Reader
// inputs are buffered to temporary files; the returned cleanup function
// deletes them and must be called after the request completes.
func (s *SimpleClient) materializeAttachments(paths []string, readers []io.Reader) ([]string, func(), error) {
	var tempFiles []string
	cleanup := func() {
		for _, name := range tempFiles {
			os.Remove(name)
		}
	}

	filePaths := make([]string, 0, len(paths)+len(readers))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			filePaths = append(filePaths, path)
		}
	}

	for _, reader := range readers {
		tmp, err := os.CreateTemp("", "olog-attachment-*")
		if err != nil {
			cleanup()
			return nil, nil, ErrValidation.MsgErr("unable to create temporary attachment file", err)
		}
		if _, err := io.Copy(tmp, reader); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			cleanup()
			return nil, nil, ErrValidation.MsgErr("unable to buffer attachment content", err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			cleanup()
			return nil, nil, ErrValidation.MsgErr("unable to finalize temporary attachment file", err)
		}
		tempFiles = append(tempFiles, tmp.Name())
		filePaths = append(filePaths, tmp.Name())
	}

	return filePaths, cleanup, nil
}

// UpdateParams describes a partial update through the facade. Set fields
// overwrite the stored entry's fields entirely; tags and properties are never
// merged incrementally.
type UpdateParams struct {
	Text       types.NullableString
	Tags       []string
	Properties map[string]map[string]string
}

// Update overwrites the named fields of an existing log entry. Fields not
// mentioned keep their stored values.
func (s *SimpleClient) Update(id int64, params UpdateParams) (*Log, error) {
	upd := LogUpdate{
		Title:       params.Text,
		Description: params.Text,
		Tags:        params.Tags,
	}
	if params.Properties != nil {
		upd.Properties = formatProperties(params.Properties)
	}
	return s.client.UpdateLog(id, upd)
}

// FindOptions describes a facade search. ID short-circuits to a direct
// lookup. Search is an alias of Text. StartTime and StopTime are converted
// to YYYY-MM-DD date bounds.
type FindOptions struct {
	ID        types.NullableInt
	Search    types.NullableString // alias of Text
	Text      types.NullableString
	Tag       types.NullableString
	Logbook   types.NullableString
	Owner     types.NullableString
	Level     types.NullableString
	From      types.NullableString
	To        types.NullableString
	StartTime time.Time
	StopTime  time.Time
}

// Find searches log entries. Lookup failures degrade to an empty result.
// Both the {logs: [...]} envelope and a bare array response are understood.
func (s *SimpleClient) Find(opts FindOptions) []Log {
	if opts.ID.Valid {
		entry, err := s.client.Log(int64(opts.ID.Value))
		if err != nil || entry == nil {
			return []Log{}
		}
		return []Log{*entry}
	}

	search := SearchOptions{
		Tag:     opts.Tag,
		Logbook: opts.Logbook,
		Owner:   opts.Owner,
		Level:   opts.Level,
		From:    opts.From,
		To:      opts.To,
	}
	if opts.Text.Valid {
		search.Text = opts.Text
	} else if opts.Search.Valid {
		search.Text = opts.Search
	}
	if !search.From.Valid && !opts.StartTime.IsZero() {
		search.From = types.StringFrom(opts.StartTime.Format("2006-01-02"))
	}
	if !search.To.Valid && !opts.StopTime.IsZero() {
		search.To = types.StringFrom(opts.StopTime.Format("2006-01-02"))
	}

	body, err := s.client.getRaw("find logs", "/Olog/logs/search", search.queryParams())
	if err != nil {
		return []Log{}
	}

	result := gjson.GetBytes(body, "logs")
	raw := body
	if result.Exists() {
		raw = []byte(result.Raw)
	}

	var logs []Log
	if err := json.Unmarshal(raw, &logs); err != nil {
		return []Log{}
	}
	return logs
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
