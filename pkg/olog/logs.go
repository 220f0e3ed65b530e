package olog

import (
	"net/http"
	"strconv"

	"github.com/tidwall/sjson"

	"github.com/sligara7/phoebus-golog/pkg/types"
)

// SearchOptions enumerates the optional search parameters accepted by the
// log search endpoint. Unset fields are omitted from the query. FromDate and
// ToDate are aliases of From and To, resolved at the boundary before the
// request is constructed.
type SearchOptions struct {
	Start    types.NullableInt
	Size     types.NullableInt
	From     types.NullableString
	To       types.NullableString
	FromDate types.NullableString // alias of From
	ToDate   types.NullableString // alias of To
	Text     types.NullableString
	Logbook  types.NullableString
	Tag      types.NullableString
	Owner    types.NullableString
	Level    types.NullableString
	Title    types.NullableString
}

// queryParams renders the options as query parameters, resolving aliases.
func (o SearchOptions) queryParams() map[string]string {
	params := map[string]string{}
	if o.Start.Valid {
		params["start"] = strconv.Itoa(o.Start.Value)
	}
	if o.Size.Valid {
		params["size"] = strconv.Itoa(o.Size.Value)
	}
	from := o.From
	if !from.Valid {
		from = o.FromDate
	}
	if from.Valid {
		params["from"] = from.Value
	}
	to := o.To
	if !to.Valid {
		to = o.ToDate
	}
	if to.Valid {
		params["to"] = to.Value
	}
	if o.Text.Valid {
		params["text"] = o.Text.Value
	}
	if o.Logbook.Valid {
		params["logbook"] = o.Logbook.Value
	}
	if o.Tag.Valid {
		params["tag"] = o.Tag.Value
	}
	if o.Owner.Valid {
		params["owner"] = o.Owner.Value
	}
	if o.Level.Valid {
		params["level"] = o.Level.Value
	}
	if o.Title.Valid {
		params["title"] = o.Title.Value
	}
	return params
}

// SearchLogs searches log entries with the given options.
func (c *Client) SearchLogs(opts SearchOptions) (*SearchResult, error) {
	var result SearchResult
	if err := c.getJSON("search logs", "/Olog/logs/search", opts.queryParams(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Log returns a specific log entry by ID.
func (c *Client) Log(id int64) (*Log, error) {
	var entry Log
	if err := c.getJSON("get log", "/Olog/logs/"+strconv.FormatInt(id, 10), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ArchivedLog returns an archived log entry by ID.
func (c *Client) ArchivedLog(id int64) (*Log, error) {
	var entry Log
	if err := c.getJSON("get archived log", "/Olog/logs/archived/"+strconv.FormatInt(id, 10), nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// LogRequest describes a log entry to create. Logbooks is required; every
// entry must reference at least one logbook. InReplyTo references the entry
// being replied to; empty or "-1" means the entry is not a reply.
type LogRequest struct {
	Title       string
	Description string
	Logbooks    []string
	Level       string
	Tags        []string
	Properties  []Property
	Markup      string
	InReplyTo   string
}

// payload builds the wire entity for creation.
func (r LogRequest) payload() Log {
	properties := r.Properties
	if properties == nil {
		properties = []Property{}
	}
	return Log{
		Title:       r.Title,
		Description: r.Description,
		Level:       r.Level,
		Logbooks:    logbookRefs(r.Logbooks),
		Tags:        tagRefs(r.Tags),
		Properties:  properties,
	}
}

// queryParams renders the optional creation query parameters. The inReplyTo
// parameter is sent only when the request is an actual reply.
func (r LogRequest) queryParams() map[string]string {
	params := map[string]string{}
	if r.Markup != "" {
		params["markup"] = r.Markup
	}
	if r.InReplyTo != "" && r.InReplyTo != "-1" {
		params["inReplyTo"] = r.InReplyTo
	}
	return params
}

// CreateLog creates a new log entry.
func (c *Client) CreateLog(req LogRequest) (*Log, error) {
	if len(req.Logbooks) == 0 {
		return nil, ErrValidation.New("at least one logbook must be specified")
	}
	var created Log
	if err := c.putJSON("create log", "/Olog/logs", req.queryParams(), req.payload(), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// LogUpdate describes a partial update of a log entry. Nullable fields that
// are unset, and nil slices, leave the corresponding field of the stored
// entry untouched; set fields overwrite it entirely.
type LogUpdate struct {
	Title       types.NullableString
	Description types.NullableString
	Level       types.NullableString
	Tags        []string   // nil leaves tags untouched
	Properties  []Property // nil leaves properties untouched
	Markup      string
}

// UpdateLog updates an existing log entry with full-overwrite semantics:
// the current entity is fetched, only the caller-supplied fields are
// overwritten on the fetched document, and the whole object is resent.
// Fields the caller did not mention are never dropped.
func (c *Client) UpdateLog(id int64, upd LogUpdate) (*Log, error) {
	idPath := "/Olog/logs/" + strconv.FormatInt(id, 10)

	current, err := c.getRaw("update log", idPath, nil)
	if err != nil {
		return nil, err
	}

	doc := current
	if upd.Title.Valid {
		if doc, err = sjson.SetBytes(doc, "title", upd.Title.Value); err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to set title", err)
		}
	}
	if upd.Description.Valid {
		if doc, err = sjson.SetBytes(doc, "description", upd.Description.Value); err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to set description", err)
		}
	}
	if upd.Level.Valid {
		if doc, err = sjson.SetBytes(doc, "level", upd.Level.Value); err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to set level", err)
		}
	}
	if upd.Tags != nil {
		raw, err := json.Marshal(tagRefs(upd.Tags))
		if err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to encode tags", err)
		}
		if doc, err = sjson.SetRawBytes(doc, "tags", raw); err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to set tags", err)
		}
	}
	if upd.Properties != nil {
		raw, err := json.Marshal(upd.Properties)
		if err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to encode properties", err)
		}
		if doc, err = sjson.SetRawBytes(doc, "properties", raw); err != nil {
			return nil, ErrValidation.MsgErr("update log: unable to set properties", err)
		}
	}

	query := map[string]string{}
	if upd.Markup != "" {
		query["markup"] = upd.Markup
	}

	body, _, err := c.http.DoRequest(httpRequest(http.MethodPost, idPath, query, doc))
	if err != nil {
		return nil, transportError("update log", err)
	}

	var updated Log
	if err := decodeBody("update log", body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GroupLogs groups multiple log entries together. Success means the service
// answered with status 200.
func (c *Client) GroupLogs(ids []int64) error {
	payload, err := json.Marshal(ids)
	if err != nil {
		return ErrValidation.MsgErr("group logs: unable to encode ids", err)
	}
	_, status, err := c.http.DoRequest(httpRequest(http.MethodPost, "/Olog/logs/group", nil, payload))
	if err != nil {
		return transportError("group logs", err)
	}
	if status != http.StatusOK {
		return ErrTransport.New("group logs: unexpected status").SetStatusCode(status)
	}
	return nil
}
