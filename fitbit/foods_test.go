package fitbit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodsService_QualifiedReads(t *testing.T) {
	testCases := []struct {
		userID   string
		call     func(ctx context.Context, s *FoodsService, userID string) (any, error)
		wantPath string
	}{
		{
			userID:   "user_id",
			call:     func(ctx context.Context, s *FoodsService, userID string) (any, error) { return s.Recent(ctx, userID) },
			wantPath: "/1/user/user_id/foods/log/recent.json",
		},
		{
			userID:   "",
			call:     func(ctx context.Context, s *FoodsService, userID string) (any, error) { return s.Recent(ctx, userID) },
			wantPath: "/1/user/-/foods/log/recent.json",
		},
		{
			userID:   "Foo",
			call:     func(ctx context.Context, s *FoodsService, userID string) (any, error) { return s.Favorite(ctx, userID) },
			wantPath: "/1/user/Foo/foods/log/favorite.json",
		},
		{
			userID:   "Bar",
			call:     func(ctx context.Context, s *FoodsService, userID string) (any, error) { return s.Frequent(ctx, userID) },
			wantPath: "/1/user/Bar/foods/log/frequent.json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.wantPath, func(t *testing.T) {
			cs := newCaptureServer(t, http.StatusOK, `{"foods": []}`)
			client := newMockClient(cs.Server)

			_, err := tc.call(context.Background(), client.Foods, tc.userID)
			require.NoError(t, err)

			call := cs.last(t)
			assert.Equal(t, http.MethodGet, call.Method)
			assert.Equal(t, tc.wantPath, call.Path)
		})
	}
}

func TestFoodsService_AddFavorite(t *testing.T) {
	cs := newCaptureServer(t, http.StatusOK, `{}`)
	client := newMockClient(cs.Server)

	_, err := client.Foods.AddFavorite(context.Background(), "food_id")
	require.NoError(t, err)

	call := cs.last(t)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/1/user/-/foods/log/favorite/food_id.json", call.Path)
}

func TestFoodsService_DeleteFavorite(t *testing.T) {
	cs := newCaptureServer(t, http.StatusNoContent, ``)
	client := newMockClient(cs.Server)

	require.NoError(t, client.Foods.DeleteFavorite(context.Background(), "food_id"))

	call := cs.last(t)
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, "/1/user/-/foods/log/favorite/food_id.json", call.Path)
}

func TestFoodsService_Create(t *testing.T) {
	cs := newCaptureServer(t, http.StatusOK, `{"food": {"foodId": 42}}`)
	client := newMockClient(cs.Server)

	_, err := client.Foods.Create(context.Background(), map[string]any{
		"name":               "Lembas",
		"defaultServingSize": 1,
	})
	require.NoError(t, err)

	call := cs.last(t)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/1/user/-/foods.json", call.Path)
	// The caller payload passes through unchanged: no date is injected.
	assert.Equal(t, "Lembas", call.Form.Get("name"))
	assert.Empty(t, call.Form.Get("date"))
}

func TestFoodsService_Meals(t *testing.T) {
	cs := newCaptureServer(t, http.StatusOK, `{"meals": []}`)
	client := newMockClient(cs.Server)

	_, err := client.Foods.Meals(context.Background())
	require.NoError(t, err)

	call := cs.last(t)
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "/1/user/-/meals.json", call.Path)
}

func TestFoodsService_LogUsesFoodLogPath(t *testing.T) {
	cs := newCaptureServer(t, http.StatusOK, `{}`)
	client := newMockClient(cs.Server)

	_, err := client.Foods.Log(context.Background(), "", Date{}, map[string]any{"foodId": 7})
	require.NoError(t, err)

	call := cs.last(t)
	assert.Equal(t, "/1/user/-/foods/log.json", call.Path)
}
