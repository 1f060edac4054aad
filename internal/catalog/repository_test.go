package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func newTestRepo(t *testing.T) (*StoreRepository, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := NewStoreRepository(store)
	require.NoError(t, repo.Initialize(context.Background()))
	return repo, store
}

func TestInitialize_SeedsOnceOnly(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	// Mutate the collection, then re-initialize: the seed must not
	// come back.
	_, err = repo.Delete(ctx, products[0].ID)
	require.NoError(t, err)
	require.NoError(t, repo.Initialize(ctx))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 5)
}

func TestList_FallsBackToSeedOnCorruptPayload(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	require.NoError(t, store.Write(ctx, storage.CollectionProducts, []byte("{not json")))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestList_ImagesNeverEmpty(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	// A record written without images must come back normalized.
	payload := []byte(`[{"id":9,"name":"زيت","price":100,"image":"primary.jpg"}]`)
	require.NoError(t, store.Write(ctx, storage.CollectionProducts, payload))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []string{"primary.jpg"}, products[0].Images)
}

func TestSearch_BlankQueryReturnsFullList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	all, err := repo.List(ctx)
	require.NoError(t, err)

	for _, q := range []string{"", "   "} {
		got, err := repo.Search(ctx, q)
		require.NoError(t, err)
		assert.ElementsMatch(t, all, got)
	}
}

func TestSearch_MatchesNameDescriptionAndCategory(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "name substring", query: "سيروم", want: 1},
		{name: "category", query: "زيوت", want: 1},
		{name: "description substring", query: "مغربي", want: 3},
		{name: "no match", query: "xyzzy", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)

			lower := tt.query
			for _, p := range got {
				matched := containsFold(p.Name, lower) ||
					containsFold(p.Description, lower) ||
					containsFold(p.Category, lower)
				assert.True(t, matched, "product %d matched without containing query", p.ID)
			}
		})
	}
}

func TestSearch_IsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_, err := repo.Save(ctx, domain.Product{Name: "Argan Gold", Price: 10, Category: "Oil"})
	require.NoError(t, err)

	got, err := repo.Search(ctx, "ARGAN")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Argan Gold", got[0].Name)
}

func TestSave_InsertAssignsFreshID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	after, err := repo.Save(ctx, domain.Product{Name: "جديد", Price: 50})
	require.NoError(t, err)

	require.Len(t, after, len(before)+1)
	created := after[len(after)-1]
	assert.NotZero(t, created.ID)
	for _, p := range before {
		assert.NotEqual(t, p.ID, created.ID)
	}
}

func TestSave_UpdateKeepsCollectionLength(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	edited := before[0]
	edited.Price = 999

	after, err := repo.Save(ctx, edited)
	require.NoError(t, err)

	assert.Len(t, after, len(before))
	assert.Equal(t, int64(999), after[0].Price)
}

func TestSave_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	after, err := repo.Save(ctx, domain.Product{Name: "بدون تفاصيل", Price: 10})
	require.NoError(t, err)

	created := after[len(after)-1]
	assert.Equal(t, DefaultCategory, created.Category)
	assert.Equal(t, float64(5), created.Rating)
	assert.Equal(t, PlaceholderImage, created.Image)
	assert.Equal(t, []string{PlaceholderImage}, created.Images)
}

func TestSave_RejectsMissingNameOrPrice(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_, err := repo.Save(ctx, domain.Product{Price: 10})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	_, err = repo.Save(ctx, domain.Product{Name: "بلا ثمن"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "price")
}

func TestDelete_AbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	after, err := repo.Delete(ctx, 123456789)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
