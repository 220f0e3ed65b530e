package olog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sligara7/phoebus-golog/pkg/types"
)

func TestServiceInfo(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	info, err := client.ServiceInfo()
	require.NoError(t, err)
	assert.Equal(t, "Olog Service", info["name"])

	conf, err := client.ServiceConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "commonmark", conf["defaultMarkup"])
}

func TestLogbookRoundTrip(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateLogbook("operations", "olog-admin", "")
	require.NoError(t, err)
	assert.Equal(t, "operations", created.Name)
	assert.Equal(t, StateActive, created.State)

	fetched, err := client.Logbook("operations")
	require.NoError(t, err)
	assert.Equal(t, "operations", fetched.Name)
	assert.Equal(t, "olog-admin", fetched.Owner)

	logbooks, err := client.Logbooks()
	require.NoError(t, err)
	assert.Len(t, logbooks, 1)

	ok, err := client.DeleteLogbook("operations")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = client.Logbook("operations")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsNotFound(err))
}

func TestTagRoundTrip(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	_, err := client.CreateTag("magnets", "")
	require.NoError(t, err)

	tag, err := client.Tag("magnets")
	require.NoError(t, err)
	assert.Equal(t, StateActive, tag.State)

	updated, err := client.UpdateTags([]Tag{{Name: "magnets", State: StateInactive}})
	require.NoError(t, err)
	assert.Len(t, updated, 1)

	tag, err = client.Tag("magnets")
	require.NoError(t, err)
	assert.Equal(t, StateInactive, tag.State)

	ok, err := client.DeleteTag("magnets")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPropertyRoundTrip(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	attrs := []Attribute{{Name: "scan_id", Value: "", State: StateActive}}
	created, err := client.CreateProperty("scan", "daq", attrs, "")
	require.NoError(t, err)
	assert.Equal(t, "scan", created.Name)
	require.Len(t, created.Attributes, 1)
	assert.Equal(t, "scan_id", created.Attributes[0].Name)

	properties, err := client.Properties(false)
	require.NoError(t, err)
	assert.Len(t, properties, 1)

	ok, err := client.DeleteProperty("scan")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLevelRoundTrip(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateLevel("Urgent", true)
	require.NoError(t, err)
	assert.True(t, created.DefaultLevel)

	bulk, err := client.CreateLevels([]Level{{Name: "Info"}, {Name: "Problem"}})
	require.NoError(t, err)
	assert.Len(t, bulk, 2)

	levels, err := client.Levels()
	require.NoError(t, err)
	assert.Len(t, levels, 3)

	ok, err := client.DeleteLevel("Urgent")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTemplateRoundTrip(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateTemplate(Template{
		Name:     "shift-summary",
		Title:    "Shift Summary",
		Logbooks: []Logbook{{Name: "operations"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := client.Template(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "shift-summary", fetched.Name)
	assert.NotNil(t, fetched.Tags)
	assert.NotNil(t, fetched.Properties)

	ok, err := client.DeleteTemplate(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateLog(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateLog(LogRequest{
		Title:       "beam lost",
		Description: "beam dumped at 14:02",
		Logbooks:    []string{"operations"},
		Tags:        []string{"magnets"},
		Level:       "Problem",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.Len(t, created.Logbooks, 1)
	assert.Equal(t, "operations", created.Logbooks[0].Name)

	fetched, err := client.Log(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "beam lost", fetched.Title)

	archived, err := client.ArchivedLog(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, archived.ID)
}

func TestCreateLogRequiresLogbook(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	before := len(f.requests)
	_, err := client.CreateLog(LogRequest{Title: "orphan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, f.requests, before, "no network call should be issued")
}

func TestCreateLogReplyQueryParams(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	parent, err := client.CreateLog(LogRequest{Title: "parent", Logbooks: []string{"ops"}})
	require.NoError(t, err)

	req := LogRequest{Title: "reply", Logbooks: []string{"ops"}, InReplyTo: "-1", Markup: "commonmark"}
	params := req.queryParams()
	assert.Equal(t, map[string]string{"markup": "commonmark"}, params,
		"inReplyTo must be omitted for the -1 sentinel")

	req.InReplyTo = "1"
	params = req.queryParams()
	assert.Equal(t, "1", params["inReplyTo"])

	_, err = client.CreateLog(req)
	require.NoError(t, err)
	_ = parent
}

func TestUpdateLogPreservesUnmentionedFields(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateLog(LogRequest{
		Title:       "original title",
		Description: "original description",
		Logbooks:    []string{"operations"},
		Tags:        []string{"a", "b"},
		Properties: []Property{{
			Name:       "scan",
			Attributes: []Attribute{{Name: "scan_id", Value: "17"}},
		}},
	})
	require.NoError(t, err)

	updated, err := client.UpdateLog(created.ID, LogUpdate{
		Description: types.StringFrom("amended description"),
	})
	require.NoError(t, err)
	assert.Equal(t, "amended description", updated.Description)
	assert.Equal(t, "original title", updated.Title)

	fetched, err := client.Log(created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Tags, 2)
	assert.Equal(t, "a", fetched.Tags[0].Name)
	assert.Equal(t, "b", fetched.Tags[1].Name)
	require.Len(t, fetched.Properties, 1)
	assert.Equal(t, "scan", fetched.Properties[0].Name)
	assert.Equal(t, "17", fetched.Properties[0].Attributes[0].Value)
}

func TestUpdateLogOverwritesSuppliedFields(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	created, err := client.CreateLog(LogRequest{
		Title:    "original",
		Logbooks: []string{"operations"},
		Tags:     []string{"a", "b"},
	})
	require.NoError(t, err)

	updated, err := client.UpdateLog(created.ID, LogUpdate{
		Title: types.StringFrom("new title"),
		Tags:  []string{"c"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "c", updated.Tags[0].Name)
}

func TestSearchLogsAliases(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	_, err := client.SearchLogs(SearchOptions{FromDate: types.StringFrom("2024-01-01")})
	require.NoError(t, err)
	aliasQuery := f.lastSearchQuery

	_, err = client.SearchLogs(SearchOptions{From: types.StringFrom("2024-01-01")})
	require.NoError(t, err)

	assert.Equal(t, f.lastSearchQuery, aliasQuery, "from_date alias must produce an identical request")
	assert.Equal(t, "2024-01-01", aliasQuery.Get("from"))
	assert.Empty(t, aliasQuery.Get("from_date"))
}

func TestSearchLogsParams(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	_, err := client.SearchLogs(SearchOptions{
		Start:   types.IntFrom(0),
		Size:    types.IntFrom(25),
		Text:    types.StringFrom("*Timing*"),
		Logbook: types.StringFrom("operations"),
		Tag:     types.StringFrom("magnets"),
	})
	require.NoError(t, err)

	q := f.lastSearchQuery
	assert.Equal(t, "0", q.Get("start"))
	assert.Equal(t, "25", q.Get("size"))
	assert.Equal(t, "*Timing*", q.Get("text"))
	assert.Equal(t, "operations", q.Get("logbook"))
	assert.Equal(t, "magnets", q.Get("tag"))
}

func TestGroupLogs(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	first, err := client.CreateLog(LogRequest{Title: "one", Logbooks: []string{"ops"}})
	require.NoError(t, err)
	second, err := client.CreateLog(LogRequest{Title: "two", Logbooks: []string{"ops"}})
	require.NoError(t, err)

	require.NoError(t, client.GroupLogs([]int64{first.ID, second.ID}))

	err = client.GroupLogs([]int64{999})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestHelp(t *testing.T) {
	f := newFakeOlog(t)
	client := f.client(t)

	text, err := client.Help("SearchHelp", "en")
	require.NoError(t, err)
	assert.Equal(t, "help for SearchHelp lang=", text)

	text, err = client.Help("SearchHelp", "de")
	require.NoError(t, err)
	assert.Equal(t, "help for SearchHelp lang=de", text)
}
