package olog

// Resource states recognized by the Olog service.
const (
	StateActive   = "Active"
	StateInactive = "Inactive"
)

// Logbook is a named collection that log entries can belong to.
// Every log entry must reference at least one logbook.
type Logbook struct {
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
	State string `json:"state,omitempty"`
}

// Tag is a named label attachable to log entries.
type Tag struct {
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

// Attribute is a single key/value pair within a property.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	State string `json:"state,omitempty"`
}

// Property is a named bag of key/value attributes attachable to a log entry
// or template, used for structured metadata.
type Property struct {
	Name       string      `json:"name"`
	Owner      string      `json:"owner,omitempty"`
	State      string      `json:"state,omitempty"`
	Attributes []Attribute `json:"attributes"`
}

// Level is a named severity/classification applied to a log entry. The
// service enforces that at most one level is marked as the default.
type Level struct {
	Name         string `json:"name"`
	DefaultLevel bool   `json:"defaultLevel"`
}

// Attachment describes a file attached to a log entry.
type Attachment struct {
	ID                      string `json:"id,omitempty"`
	Filename                string `json:"filename"`
	FileMetadataDescription string `json:"fileMetadataDescription,omitempty"`
}

// Log is a single log entry. The ID is server-assigned and present only
// after creation; it is immutable once assigned.
type Log struct {
	ID          int64        `json:"id,omitempty"`
	Owner       string       `json:"owner,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Level       string       `json:"level,omitempty"`
	Source      string       `json:"source,omitempty"`
	State       string       `json:"state,omitempty"`
	CreatedDate int64        `json:"createdDate,omitempty"`
	ModifyDate  int64        `json:"modifyDate,omitempty"`
	Logbooks    []Logbook    `json:"logbooks"`
	Tags        []Tag        `json:"tags"`
	Properties  []Property   `json:"properties"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Template is a reusable skeleton for quickly creating similarly-shaped log
// entries. Same shape as a log entry minus the description.
type Template struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Source     string     `json:"source,omitempty"`
	Level      string     `json:"level,omitempty"`
	Logbooks   []Logbook  `json:"logbooks"`
	Tags       []Tag      `json:"tags"`
	Properties []Property `json:"properties"`
}

// SearchResult is the envelope returned by the log search endpoint.
type SearchResult struct {
	HitCount int64 `json:"hitCount"`
	Logs     []Log `json:"logs"`
}

// logbookRefs converts logbook names to reference structs for request payloads.
func logbookRefs(names []string) []Logbook {
	refs := make([]Logbook, 0, len(names))
	for _, name := range names {
		refs = append(refs, Logbook{Name: name})
	}
	return refs
}

// tagRefs converts tag names to reference structs for request payloads.
func tagRefs(names []string) []Tag {
	refs := make([]Tag, 0, len(names))
	for _, name := range names {
		refs = append(refs, Tag{Name: name})
	}
	return refs
}
