package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepakagg123/deepakagg123.github.io/models"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	d := setupTestDatabase(t)

	require.NoError(t, d.Seed())

	profile, err := d.ProfileRepo().Get()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alex Researcher", profile.Name)

	publications, err := d.PublicationRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, publications, 2)
	for _, p := range publications {
		assert.True(t, p.IsSelected)
	}
	assert.Equal(t, 2024, publications[0].Year)
	assert.Equal(t, 2023, publications[1].Year)

	projects, err := d.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "OpenGen", projects[0].Title)

	news, err := d.NewsRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, "2024-01-15", news[0].Date)
}

func TestSeedIsIdempotent(t *testing.T) {
	d := setupTestDatabase(t)

	require.NoError(t, d.Seed())
	require.NoError(t, d.Seed())

	publications, err := d.PublicationRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, publications, 2, "second seed run must be a no-op")
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	d := setupTestDatabase(t)

	custom := models.Profile{
		Name: "Existing Owner", Title: "T", Institution: "I", Bio: "B", Email: "e@x.y",
	}
	_, err := d.ProfileRepo().Upsert(&custom)
	require.NoError(t, err)

	require.NoError(t, d.Seed())

	profile, err := d.ProfileRepo().Get()
	require.NoError(t, err)
	assert.Equal(t, "Existing Owner", profile.Name, "seed must not overwrite an existing profile")

	publications, err := d.PublicationRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, publications)
}
