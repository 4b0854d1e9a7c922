package coopclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/bootstrap"
	"github.com/dalemusser/coophub/internal/testutil"
	"github.com/dalemusser/coophub/pkg/coopclient"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *coopclient.Client {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := bootstrap.AppConfig{
		JWTSecret:       "client-test-secret",
		JWTExpiry:       time.Hour,
		JWTIssuer:       "coophub",
		SearchMaxLimit:  50,
		AuthRateLimit:   100,
		LoginEmailLimit: 100,
	}
	h, err := bootstrap.BuildHandler(nil, cfg, bootstrap.DBDeps{MongoClient: db.Client(), MongoDatabase: db}, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(func() {
		srv.Close()
		_ = bootstrap.Shutdown(context.Background(), nil, cfg, bootstrap.DBDeps{}, zap.NewNop())
	})
	return coopclient.New(srv.URL)
}

func TestEndToEnd_MemberFlow(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	_, err := c.UpdateAboutSection(ctx, "hero", map[string]string{"title": "Welcome"})
	require.True(t, coopclient.IsStatus(err, http.StatusUnauthorized))

	sess, err := c.Register(ctx, coopclient.RegisterInput{
		BusinessName: "Hill Farm",
		Email:        "Hill@Example.com",
		Password:     "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "hill@example.com", sess.User.Email)

	_, err = c.Register(ctx, coopclient.RegisterInput{BusinessName: "Again", Email: "hill@example.com", Password: "secret123"})
	require.True(t, coopclient.IsStatus(err, http.StatusBadRequest))

	sess, err = c.Login(ctx, "hill@example.com", "secret123")
	require.NoError(t, err)
	member := c.WithToken(sess.Token)

	page, err := member.UpdateAboutSection(ctx, "hero", map[string]string{"title": "Welcome"})
	require.NoError(t, err)
	require.Equal(t, "Welcome", page.Hero.Title)

	values, err := member.AddValue(ctx, coopclient.ValueInput{Title: "Trust"})
	require.NoError(t, err)
	added := values[len(values)-1]
	require.Equal(t, "Trust", added.Title)

	imgs, err := member.AddImage(ctx, "values", added.ID.Hex(), "https://img.example/trust.png")
	require.NoError(t, err)
	require.Equal(t, []string{"https://img.example/trust.png"}, imgs)

	_, err = member.RemoveImage(ctx, "values", added.ID.Hex(), 5)
	require.True(t, coopclient.IsStatus(err, http.StatusBadRequest))

	values, err = member.DeleteValue(ctx, added.ID.Hex())
	require.NoError(t, err)
	for _, v := range values {
		require.NotEqual(t, added.ID, v.ID)
	}
}

func TestEndToEnd_Directory(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	b, err := c.CreateBusiness(ctx, coopclient.BusinessInput{
		Name:        "Ram's Café",
		Category:    "Food & Beverage",
		Description: "Coffee and snacks",
		Location:    "Pokhara",
		Phone:       "555-0100",
	})
	require.NoError(t, err)
	require.Equal(t, "rams-cafe", b.Slug)

	got, err := c.GetBusinessBySlug(ctx, "rams-cafe")
	require.NoError(t, err)
	require.Equal(t, b.ID, got.ID)

	pg, err := c.SearchBusinesses(ctx, coopclient.SearchParams{Query: "coffee", Location: "pokh"})
	require.NoError(t, err)
	require.EqualValues(t, 1, pg.Total)

	_, err = c.CreateBusiness(ctx, coopclient.BusinessInput{
		Name: "Rams Cafe", Category: "Retail", Description: "dup", Location: "Pokhara",
	})
	require.True(t, coopclient.IsStatus(err, http.StatusBadRequest))

	require.NoError(t, c.DeleteBusiness(ctx, b.ID.Hex()))
	_, err = c.GetBusiness(ctx, b.ID.Hex())
	require.True(t, coopclient.IsStatus(err, http.StatusNotFound))
}
