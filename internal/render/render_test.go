package render

import (
	"testing"

	"github.com/MKhiriev/go-repo-info/models"
	"github.com/stretchr/testify/assert"
)

func TestRecord_ContainsEveryField(t *testing.T) {
	info := models.NewRepoInfo(
		models.HostInfo{Name: "builder-01", User: "ci", OsNV: "Ubuntu 24.04"},
		models.BuildIdentity{User: "user-name <email@demo.com>", Time: "2018-01-30 10:20:30 +0845"},
		"2019-01-30 20:50:59 +0300",
		models.RepoIdentity{Hash: "615", URL: "svn://addr/app/trunk/mta"},
	)

	view := Record(info)

	for _, want := range []string{
		"builder-01",
		"ci",
		"Ubuntu 24.04",
		"user-name <email@demo.com>",
		"2018-01-30 10:20:30 +0845",
		"2019-01-30 20:50:59 +0300",
		"615",
		"svn://addr/app/trunk/mta",
	} {
		assert.Contains(t, view, want)
	}
}

func TestRecord_EmptyFieldsShownAsNA(t *testing.T) {
	view := Record(models.RepoInfo{})

	assert.Contains(t, view, "N/A")
}

func TestRecord_ContainsLabels(t *testing.T) {
	view := Record(models.RepoInfo{})

	for _, label := range []string{
		"hostName", "hostUser", "hostOsNV",
		"buildUser", "buildTime", "modifyTime",
		"repoHash", "repoUrl",
	} {
		assert.Contains(t, view, label)
	}
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA(""))
	assert.Equal(t, "N/A", valueOrNA("   "))
	assert.Equal(t, "615", valueOrNA("615"))
}
