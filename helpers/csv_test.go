package helpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joblens-org/joblens/record"
)

// Sample export in the log's native shape.
var applicationsCSV = []byte(`Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed
01/15/2025,Acme Corp,Senior Engineer,1,Y,N,Remote,Y
02/03/2025,Globex,Staff Engineer,2,N,Y,Local,N
02/20/2025,Initech,Platform Engineer,3,N,N,Remote,I
`)

func TestParseCSV(t *testing.T) {
	recs, err := ParseCSV(applicationsCSV)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	first := recs[0]
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Senior Engineer", first.Title)
	assert.Equal(t, 1, first.Quality)
	assert.True(t, first.Interviewed)
	assert.False(t, first.RecruiterInvolved)
	assert.Equal(t, record.Remote, first.Location)
	assert.Equal(t, record.Closed, first.Closure)

	assert.Equal(t, record.Open, recs[1].Closure)
	assert.Equal(t, record.Unknown, recs[2].Closure)
}

func TestParseCSVShuffledColumns(t *testing.T) {
	shuffled := []byte(`Company,Closed,Date,Local/Remote,Quality,Title,Recruiter,Interviews
Acme Corp,N,03/01/2025,Local,2,Engineer,Y,Y
`)
	recs, err := ParseCSV(shuffled)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Acme Corp", recs[0].Company)
	assert.Equal(t, 2, recs[0].Quality)
	assert.True(t, recs[0].RecruiterInvolved)
}

func TestParseCSVMissingColumn(t *testing.T) {
	noQuality := []byte(`Date,Company,Title,Interviews,Recruiter,Local/Remote,Closed
01/15/2025,Acme,Engineer,Y,N,Remote,Y
`)
	_, err := ParseCSV(noQuality)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quality")
}

func TestParseCSVBadRowIsFatal(t *testing.T) {
	cases := map[string][]byte{
		"bad date": []byte(`Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed
not-a-date,Acme,Engineer,1,Y,N,Remote,Y
`),
		"bad quality": []byte(`Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed
01/15/2025,Acme,Engineer,zero,Y,N,Remote,Y
`),
		"zero quality": []byte(`Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed
01/15/2025,Acme,Engineer,0,Y,N,Remote,Y
`),
		"bad closure": []byte(`Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed
01/15/2025,Acme,Engineer,1,Y,N,Remote,X
`),
	}

	for name, data := range cases {
		_, err := ParseCSV(data)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "row 2", name)
	}
}

func TestParseCSVEmptyBody(t *testing.T) {
	headerOnly := []byte("Date,Company,Title,Quality,Interviews,Recruiter,Local/Remote,Closed\n")
	recs, err := ParseCSV(headerOnly)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "applications.csv")
	require.NoError(t, os.WriteFile(path, applicationsCSV, 0o644))

	recs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
