package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/pageza/portfolio/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(title string, order int, featured bool, at time.Time) *models.Project {
	return &models.Project{
		Document: models.Document{
			ID:        uuid.NewString(),
			CreatedAt: at,
			UpdatedAt: at,
		},
		Title:       title,
		Description: "description of " + title,
		Tools:       models.JSONList[string]{"SQL", "Python"},
		Problem:     "problem",
		Solution:    "solution",
		Impact:      "impact",
		Visual:      "📊",
		Featured:    featured,
		Order:       order,
	}
}

// runContract exercises the collection contract against one backend.
func runContract(t *testing.T, b *store.Backend) {
	ctx := context.Background()
	projects, err := store.Open[models.Project](b, models.CollectionProjects)
	require.NoError(t, err)
	assert.Equal(t, models.CollectionProjects, projects.Name())

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	third := newProject("Third", 3, false, base)
	first := newProject("First", 1, true, base.Add(time.Minute))
	second := newProject("Second", 2, true, base.Add(2*time.Minute))
	for _, p := range []*models.Project{third, first, second} {
		require.NoError(t, projects.Insert(ctx, p))
	}

	t.Run("find one", func(t *testing.T) {
		got, err := projects.FindOne(ctx, store.Fields{"id": first.ID})
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
		assert.Equal(t, models.JSONList[string]{"SQL", "Python"}, got.Tools)
		assert.Nil(t, got.GithubURL)
		assert.True(t, got.CreatedAt.Equal(first.CreatedAt))

		_, err = projects.FindOne(ctx, store.Fields{"id": "missing"})
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("find sorted and limited", func(t *testing.T) {
		all, err := projects.Find(ctx, store.Query{Sort: []store.SortOrder{{Key: "order"}}})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"First", "Second", "Third"}, titles(all))

		newest, err := projects.Find(ctx, store.Query{
			Sort:  []store.SortOrder{{Key: "createdAt", Descending: true}},
			Limit: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Second", "First"}, titles(newest))

		featured, err := projects.Find(ctx, store.Query{
			Filter: store.Fields{"featured": true},
			Sort:   []store.SortOrder{{Key: "order", Descending: true}},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Second", "First"}, titles(featured))

		none, err := projects.Find(ctx, store.Query{Filter: store.Fields{"title": "Nope"}})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update by id", func(t *testing.T) {
		url := "https://github.com/example/third"
		later := base.Add(time.Hour)
		require.NoError(t, projects.UpdateByID(ctx, third.ID, store.Fields{
			"featured":  true,
			"githubUrl": url,
			"tools":     models.JSONList[string]{"Excel"},
			"updatedAt": later,
		}))

		got, err := projects.FindOne(ctx, store.Fields{"id": third.ID})
		require.NoError(t, err)
		assert.True(t, got.Featured)
		require.NotNil(t, got.GithubURL)
		assert.Equal(t, url, *got.GithubURL)
		assert.Equal(t, models.JSONList[string]{"Excel"}, got.Tools)
		assert.Equal(t, "Third", got.Title)
		assert.True(t, got.UpdatedAt.Equal(later))
		assert.True(t, got.CreatedAt.Equal(base))

		require.NoError(t, projects.UpdateByID(ctx, third.ID, store.Fields{"githubUrl": nil}))
		got, err = projects.FindOne(ctx, store.Fields{"id": third.ID})
		require.NoError(t, err)
		assert.Nil(t, got.GithubURL)

		err = projects.UpdateByID(ctx, "missing", store.Fields{"featured": false})
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("delete by id", func(t *testing.T) {
		require.NoError(t, projects.DeleteByID(ctx, second.ID))
		_, err := projects.FindOne(ctx, store.Fields{"id": second.ID})
		assert.True(t, errors.Is(err, store.ErrNotFound))

		err = projects.DeleteByID(ctx, second.ID)
		assert.True(t, errors.Is(err, store.ErrNotFound))

		rest, err := projects.Find(ctx, store.Query{})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})

	t.Run("nested lists", func(t *testing.T) {
		about, err := store.Open[models.About](b, models.CollectionAbout)
		require.NoError(t, err)
		doc := &models.About{
			Document: models.Document{ID: uuid.NewString(), CreatedAt: base, UpdatedAt: base},
			Summary:  "summary",
			Highlights: models.JSONList[models.Highlight]{
				{Title: "Analytical", Description: "Numbers first", Icon: "Brain"},
			},
		}
		require.NoError(t, about.Insert(ctx, doc))

		got, err := about.FindOne(ctx, store.Fields{})
		require.NoError(t, err)
		require.Len(t, got.Highlights, 1)
		assert.Equal(t, "Analytical", got.Highlights[0].Title)
	})

	assert.NoError(t, b.Ping(ctx))
}

func titles(ps []models.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestSQLiteCollection(t *testing.T) {
	runContract(t, testhelpers.NewSQLiteDB(t))
}

func TestPostgresCollection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	runContract(t, testhelpers.SetupPostgres(t))
}

func TestMongoCollection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	runContract(t, testhelpers.SetupMongo(t))
}

func TestGormUnknownField(t *testing.T) {
	ctx := context.Background()
	b := testhelpers.NewSQLiteDB(t)
	skills, err := store.Open[models.Skill](b, models.CollectionSkills)
	require.NoError(t, err)

	_, err = skills.Find(ctx, store.Query{Filter: store.Fields{"colour": "red"}})
	assert.ErrorContains(t, err, `unknown field "colour"`)

	_, err = skills.Find(ctx, store.Query{Sort: []store.SortOrder{{Key: "colour"}}})
	assert.Error(t, err)

	err = skills.UpdateByID(ctx, "any", store.Fields{"colour": "red"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrNotFound))
}

func TestOpenRejectsMismatchedName(t *testing.T) {
	b := testhelpers.NewSQLiteDB(t)
	_, err := store.Open[models.Skill](b, models.CollectionProjects)
	assert.Error(t, err)
}
