package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/pageza/portfolio/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances one second per call.
type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestServices(t *testing.T) (*Services, *stepClock) {
	t.Helper()
	clock := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	svc, err := NewServices(testhelpers.NewSQLiteDB(t), WithClock(clock.Now))
	require.NoError(t, err)
	return svc, clock
}

func sampleProject(title string, order int, featured bool) *models.Project {
	return &models.Project{
		Title:       title,
		Description: "desc",
		Tools:       models.JSONList[string]{"SQL", "Excel"},
		Problem:     "problem",
		Solution:    "solution",
		Impact:      "impact",
		Visual:      "📊",
		Featured:    featured,
		Order:       order,
	}
}

func TestCreateStampsIdentityAndTimestamps(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	a, err := svc.Projects.Create(ctx, sampleProject("A", 1, true))
	require.NoError(t, err)
	b, err := svc.Projects.Create(ctx, sampleProject("A", 1, true))
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID, "identical creates produce distinct documents")
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
	assert.Equal(t, time.UTC, a.CreatedAt.Location())

	got, err := svc.Projects.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, models.JSONList[string]{"SQL", "Excel"}, got.Tools)
	assert.True(t, got.CreatedAt.Equal(a.CreatedAt))
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Projects.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Project not found", err.Error())

	_, err = svc.About.Get(context.Background())
	assert.Equal(t, "About information not found", err.Error())
}

func TestListSortsFiltersAndLimits(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	for i, order := range []int{3, 1, 2, 5, 4} {
		_, err := svc.Projects.Create(ctx, sampleProject("p", order, i%2 == 0))
		require.NoError(t, err)
	}

	all, err := svc.Projects.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Order, all[i].Order)
	}

	featured, err := svc.Projects.List(ctx, ListOptions{Filter: store.Fields{"featured": true}, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}

	desc, err := svc.Projects.List(ctx, ListOptions{SortKey: "order", Descending: true})
	require.NoError(t, err)
	assert.Equal(t, 5, desc[0].Order)
}

func TestListUnknownFieldFails(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Projects.List(context.Background(), ListOptions{Filter: store.Fields{"nope": 1}})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestContactsListNewestFirst(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		c, err := svc.Contacts.Create(ctx, &models.Contact{
			Name: name, Email: name + "@example.com", Subject: "s", Message: "m", Status: models.ContactStatusNew,
		})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	list, err := svc.Contacts.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[0], list[2].ID)
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Projects.Create(ctx, sampleProject("Zomato", 1, true))
	require.NoError(t, err)

	updated, err := svc.Projects.Update(ctx, created.ID, store.Fields{
		"featured":  false,
		"id":        "hijack",
		"createdAt": time.Time{},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.Featured)
	assert.Equal(t, "Zomato", updated.Title)
	assert.Equal(t, created.Tools, updated.Tools)
	assert.Equal(t, created.Order, updated.Order)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateWithEmptyPatchRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Skills.Create(ctx, &models.Skill{Name: "SQL", Level: "advanced", Icon: "🟢", Progress: 90, Order: 1})
	require.NoError(t, err)

	updated, err := svc.Skills.Update(ctx, created.ID, store.Fields{})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, 90, updated.Progress)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Skills.Update(context.Background(), "missing", store.Fields{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Skill not found", err.Error())
}

func TestDelete(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Projects.Create(ctx, sampleProject("A", 1, true))
	require.NoError(t, err)

	require.NoError(t, svc.Projects.Delete(ctx, created.ID))
	_, err = svc.Projects.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Projects.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSingletonGetAndUpdate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Settings.Update(ctx, store.Fields{"email": "x@example.com"})
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := svc.Settings.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := svc.Settings.Create(ctx, &models.Settings{
		Email: "a@example.com", LinkedIn: "l", GitHub: "g", LeetCode: "c",
		Location: models.DefaultLocation, ResponseTime: models.DefaultResponseTime,
	})
	require.NoError(t, err)

	updated, err := svc.Settings.Update(ctx, store.Fields{"location": "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "a@example.com", updated.Email)

	got, err := svc.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", got.Location)
}

func TestAboutHighlightsRoundTrip(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.About.Create(ctx, &models.About{
		Summary: "s", Experience: "e", Learning: "l", Passion: "p",
		Highlights: models.JSONList[models.Highlight]{{Title: "Problem Solver", Description: "d", Icon: "Code"}},
	})
	require.NoError(t, err)

	updated, err := svc.About.Update(ctx, store.Fields{
		"highlights": models.JSONList[models.Highlight]{{Title: "Team Player", Description: "d", Icon: "Users"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Highlights, 1)
	assert.Equal(t, "Team Player", updated.Highlights[0].Title)
	assert.Equal(t, "s", updated.Summary)
}
