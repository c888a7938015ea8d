package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/internal/domain/entity"
	artUC "herald/internal/usecase/article"
)

const absentID = "0000000000000000000000ff"

func validInput() artUC.CreateInput {
	return artUC.CreateInput{
		Slug:     "markets-rally",
		Title:    "Markets rally",
		Excerpt:  "Stocks climb",
		Content:  "<p>Body</p>",
		Category: "Business",
		Image:    "https://img.example.com/m.jpg",
		Author:   entity.Author{Name: "Jane Doe", Role: "Markets"},
		Tags:     []string{"stocks"},
	}
}

/* ───────── 1. Create ───────── */

func TestService_Create_success(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}

	got, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, entity.CategoryBusiness, got.Category)
	assert.True(t, got.Published)
	assert.Equal(t, int64(0), got.Views)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	// create → get で入力フィールドが一致する
	read, err := svc.Get(context.Background(), got.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(got, read); diff != "" {
		t.Fatalf("mismatch (-created +read):\n%s", diff)
	}
}

func TestService_Create_missingFields(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	in := validInput()
	in.Category = ""
	in.Author = entity.Author{}

	_, err := svc.Create(context.Background(), in)
	var mf *entity.MissingFieldsError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, []string{"category", "author"}, mf.Fields)
}

func TestService_Create_unknownCategory(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	in := validInput()
	in.Category = "gossip"
	_, err := svc.Create(context.Background(), in)

	var ve *entity.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "category", ve.Field)
}

func TestService_Create_duplicateSlug(t *testing.T) {
	stub := newStub()
	stub.seed(entity.Article{Slug: "markets-rally", Title: "x", Published: true})
	svc := artUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, artUC.ErrDuplicateSlug)
}

func TestService_Create_draftAndPublishTime(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}
	draft := false
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	in := validInput()
	in.Published = &draft
	in.PublishedAt = &at
	got, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, got.Published)
	assert.Equal(t, at, got.PublishedAt)
}

/* ───────── 2. Get ───────── */

func TestService_Get(t *testing.T) {
	stub := newStub()
	id := stub.seed(entity.Article{Slug: "s", Title: "t", Published: true})

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "found", id: id},
		{name: "empty id", id: "  ", wantErr: artUC.ErrArticleIDRequired},
		{name: "malformed id", id: "abc", wantErr: artUC.ErrInvalidArticleID},
		{name: "absent id", id: absentID, wantErr: artUC.ErrArticleNotFound},
	}

	svc := artUC.Service{Repo: stub}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Get(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
		})
	}
}

func TestService_GetBySlug(t *testing.T) {
	stub := newStub()
	stub.seed(entity.Article{Slug: "known", Title: "t"})
	svc := artUC.Service{Repo: stub}

	got, err := svc.GetBySlug(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "known", got.Slug)

	_, err = svc.GetBySlug(context.Background(), "unknown")
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	_, err = svc.GetBySlug(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

/* ───────── 3. Update ───────── */

func TestService_Update_partial(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}
	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	newTitle := "Markets slump"
	featured := true
	got, err := svc.Update(context.Background(), artUC.UpdateInput{
		ID: created.ID, Title: &newTitle, Featured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, "Markets slump", got.Title)
	assert.True(t, got.Featured)
	// 指定していないフィールドは変わらない
	assert.Equal(t, created.Excerpt, got.Excerpt)
	assert.Equal(t, created.Slug, got.Slug)
	assert.Equal(t, created.Author, got.Author)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
}

func TestService_Update_errors(t *testing.T) {
	stub := newStub()
	id := stub.seed(entity.Article{Slug: "a", Title: "A"})
	stub.seed(entity.Article{Slug: "taken", Title: "B"})
	svc := artUC.Service{Repo: stub}

	title := "x"
	empty := " "
	taken := "taken"
	badCat := "weather"

	tests := []struct {
		name    string
		in      artUC.UpdateInput
		wantErr error
	}{
		{name: "missing id", in: artUC.UpdateInput{Title: &title}, wantErr: artUC.ErrArticleIDRequired},
		{name: "empty payload", in: artUC.UpdateInput{ID: id}, wantErr: artUC.ErrNoFieldsToUpdate},
		{name: "malformed id", in: artUC.UpdateInput{ID: "zz", Title: &title}, wantErr: artUC.ErrInvalidArticleID},
		{name: "absent id", in: artUC.UpdateInput{ID: absentID, Title: &title}, wantErr: artUC.ErrArticleNotFound},
		{name: "empty title", in: artUC.UpdateInput{ID: id, Title: &empty}, wantErr: entity.ErrValidationFailed},
		{name: "unknown category", in: artUC.UpdateInput{ID: id, Category: &badCat}, wantErr: entity.ErrValidationFailed},
		{name: "slug taken", in: artUC.UpdateInput{ID: id, Slug: &taken}, wantErr: artUC.ErrDuplicateSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := stub.Get(context.Background(), id)
			_, err := svc.Update(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)

			after, _ := stub.Get(context.Background(), id)
			assert.Equal(t, before, after, "stored article must be unchanged")
		})
	}
}

/* ───────── 4. Delete / DeleteBatch ───────── */

func TestService_Delete(t *testing.T) {
	stub := newStub()
	id := stub.seed(entity.Article{Slug: "d"})
	svc := artUC.Service{Repo: stub}

	require.NoError(t, svc.Delete(context.Background(), id))
	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, artUC.ErrArticleNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), artUC.ErrArticleNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "nope"), artUC.ErrInvalidArticleID)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), artUC.ErrArticleIDRequired)
}

func TestService_DeleteBatch(t *testing.T) {
	stub := newStub()
	existing := stub.seed(entity.Article{Slug: "e"})
	broken := stub.seed(entity.Article{Slug: "b"})
	stub.failOn[broken] = errors.New("connection reset")
	svc := artUC.Service{Repo: stub}

	res, err := svc.DeleteBatch(context.Background(), []string{existing, absentID, "bad-id", broken, existing})
	require.NoError(t, err)

	assert.Equal(t, []string{existing}, res.Deleted)
	assert.Equal(t, []string{absentID}, res.NotFound)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, artUC.BatchFailure{ID: "bad-id", Message: "invalid article ID"}, res.Failed[0])
	assert.Equal(t, broken, res.Failed[1].ID)
	assert.NotContains(t, res.Failed[1].Message, "connection reset")

	// 存在した記事だけが削除される
	_, err = svc.Get(context.Background(), broken)
	assert.NoError(t, err)
}

func TestService_DeleteBatch_validation(t *testing.T) {
	svc := artUC.Service{Repo: newStub()}

	_, err := svc.DeleteBatch(context.Background(), []string{" ", ""})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	ids := make([]string, artUC.MaxBatchSize+1)
	for i := range ids {
		ids[i] = string(rune('a'+i%26)) + time.Duration(i).String()
	}
	_, err = svc.DeleteBatch(context.Background(), ids)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

/* ───────── 5. Views / Slug ───────── */

func TestService_IncrementViews(t *testing.T) {
	stub := newStub()
	svc := artUC.Service{Repo: stub}
	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, svc.IncrementViews(context.Background(), created.ID))
		if i == 2 {
			// 無関係な更新を挟んでも views はそのまま
			title := "interleaved"
			_, err := svc.Update(context.Background(), artUC.UpdateInput{ID: created.ID, Title: &title})
			require.NoError(t, err)
		}
	}

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Views)

	assert.ErrorIs(t, svc.IncrementViews(context.Background(), absentID), artUC.ErrArticleNotFound)
}

func TestService_RegenerateSlug(t *testing.T) {
	stub := newStub()
	id := stub.seed(entity.Article{Slug: "old-slug", Title: "Brand New Title!"})
	stub.seed(entity.Article{Slug: "clash", Title: "Clash"})
	clashID := stub.seed(entity.Article{Slug: "other", Title: "clash"})
	svc := artUC.Service{Repo: stub}

	got, err := svc.RegenerateSlug(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", got.Slug)

	_, err = svc.RegenerateSlug(context.Background(), clashID)
	assert.ErrorIs(t, err, artUC.ErrDuplicateSlug)
}

/* ───────── 6. 一覧系 ───────── */

func TestService_Listings(t *testing.T) {
	stub := newStub()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		stub.seed(entity.Article{
			Slug: string(rune('a' + i)), Category: entity.CategoryScience,
			Featured: true, Breaking: i%2 == 0, Published: i != 0,
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	svc := artUC.Service{Repo: stub}
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, "h", all[0].Slug)

	featured, err := svc.ListFeatured(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, featured, artUC.DefaultFeaturedLimit)

	featured, err = svc.ListFeatured(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, featured, 7)

	breaking, err := svc.ListBreaking(ctx)
	require.NoError(t, err)
	assert.Len(t, breaking, 3)

	science, err := svc.ListByCategory(ctx, "SCIENCE")
	require.NoError(t, err)
	assert.Len(t, science, 7)

	_, err = svc.ListByCategory(ctx, "weather")
	assert.ErrorIs(t, err, entity.ErrValidationFailed)

	stub.err = errors.New("database error")
	_, err = svc.List(ctx)
	assert.Error(t, err)
}
