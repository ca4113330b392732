package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftlist-backend/internal/domains/giftlist"
	"giftlist-backend/internal/domains/guest"
	"giftlist-backend/internal/shared/apperror"
)

type fakeListRepo struct {
	mu    sync.Mutex
	lists map[uuid.UUID]*giftlist.GiftList
	items map[uuid.UUID][]giftlist.ItemWithClaim
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists: make(map[uuid.UUID]*giftlist.GiftList),
		items: make(map[uuid.UUID][]giftlist.ItemWithClaim),
	}
}

func (r *fakeListRepo) CreateList(_ context.Context, list *giftlist.GiftList) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.lists {
		if existing.Slug == list.Slug {
			return uuid.Nil, giftlist.ErrSlugTaken
		}
	}
	id := uuid.New()
	stored := *list
	stored.ID = id
	r.lists[id] = &stored
	return id, nil
}

func (r *fakeListRepo) FindOwned(_ context.Context, celebrantID uuid.UUID) ([]giftlist.ListWithItems, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []giftlist.ListWithItems
	for _, l := range r.lists {
		if l.CelebrantID != celebrantID || l.DeletedAt != nil {
			continue
		}
		var items []giftlist.GiftItem
		for _, it := range r.items[l.ID] {
			items = append(items, it.Item)
		}
		out = append(out, giftlist.ListWithItems{List: *l, Items: items})
	}
	return out, nil
}

func (r *fakeListRepo) FindBySlug(_ context.Context, slug string) (*giftlist.GiftList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lists {
		if l.Slug == slug && l.DeletedAt == nil {
			found := *l
			return &found, nil
		}
	}
	return nil, giftlist.ErrNotFound
}

func (r *fakeListRepo) FindOwnedBySlug(ctx context.Context, slug string, celebrantID uuid.UUID) (*giftlist.GiftList, error) {
	list, err := r.FindBySlug(ctx, slug)
	if err != nil || list.CelebrantID != celebrantID {
		return nil, giftlist.ErrNotFound
	}
	return list, nil
}

func (r *fakeListRepo) UpdateList(_ context.Context, list *giftlist.GiftList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *list
	r.lists[list.ID] = &stored
	return nil
}

func (r *fakeListRepo) SoftDeleteList(_ context.Context, listID, celebrantID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[listID]
	if !ok || l.CelebrantID != celebrantID || l.DeletedAt != nil {
		return giftlist.ErrNotFound
	}
	now := time.Now()
	l.DeletedAt = &now
	return nil
}

func (r *fakeListRepo) CreateItem(_ context.Context, item *giftlist.GiftItem) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	stored := *item
	stored.ID = id
	r.items[item.ListID] = append(r.items[item.ListID], giftlist.ItemWithClaim{Item: stored})
	return id, nil
}

func (r *fakeListRepo) FindItems(_ context.Context, listID uuid.UUID) ([]giftlist.GiftItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []giftlist.GiftItem
	for _, it := range r.items[listID] {
		out = append(out, it.Item)
	}
	return out, nil
}

func (r *fakeListRepo) FindItemsWithClaims(_ context.Context, listID uuid.UUID) ([]giftlist.ItemWithClaim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]giftlist.ItemWithClaim(nil), r.items[listID]...), nil
}

func (r *fakeListRepo) FindOwnedItem(_ context.Context, itemID, celebrantID uuid.UUID) (*giftlist.GiftItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for listID, items := range r.items {
		for _, it := range items {
			if it.Item.ID == itemID && r.lists[listID].CelebrantID == celebrantID {
				found := it.Item
				return &found, nil
			}
		}
	}
	return nil, giftlist.ErrNotFound
}

func (r *fakeListRepo) UpdateItem(_ context.Context, item *giftlist.GiftItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, items := range r.items {
		for i := range items {
			if items[i].Item.ID == item.ID {
				items[i].Item = *item
				return nil
			}
		}
	}
	return giftlist.ErrNotFound
}

type fakeGuestRepo struct {
	accesses map[uuid.UUID]*guest.GuestAccess
}

func (r *fakeGuestRepo) Upsert(_ context.Context, listID uuid.UUID, email, language string) (*guest.GuestAccess, error) {
	access := &guest.GuestAccess{ID: uuid.New(), ListID: listID, Email: email, Language: language}
	r.accesses[access.ID] = access
	return access, nil
}

func (r *fakeGuestRepo) FindByID(_ context.Context, id uuid.UUID) (*guest.GuestAccess, error) {
	access, ok := r.accesses[id]
	if !ok {
		return nil, guest.ErrNotFound
	}
	return access, nil
}

type fakeStorage struct {
	deletedPrefixes []string
	failDelete      bool
}

func (s *fakeStorage) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	return "http://storage.local/" + key, nil
}

func (s *fakeStorage) DeleteByPrefix(_ context.Context, prefix string) error {
	if s.failDelete {
		return assert.AnError
	}
	s.deletedPrefixes = append(s.deletedPrefixes, prefix)
	return nil
}

func newTestListService() (giftlist.ListService, *fakeListRepo, *fakeGuestRepo, *fakeStorage) {
	repo := newFakeListRepo()
	guests := &fakeGuestRepo{accesses: make(map[uuid.UUID]*guest.GuestAccess)}
	storage := &fakeStorage{}
	return NewListService(repo, guests, storage), repo, guests, storage
}

func TestCreateGeneratesSlug(t *testing.T) {
	svc, _, _, _ := newTestListService()

	resp, err := svc.Create(context.Background(), uuid.New(), giftlist.CreateListRequest{Name: "Anna's Birthday!"})
	require.NoError(t, err)
	assert.Equal(t, "anna-s-birthday", resp.Slug)
}

func TestCreateSlugCollisionRetriesWithSuffix(t *testing.T) {
	svc, _, _, _ := newTestListService()
	ctx := context.Background()

	first, err := svc.Create(ctx, uuid.New(), giftlist.CreateListRequest{Name: "Christmas"})
	require.NoError(t, err)

	second, err := svc.Create(ctx, uuid.New(), giftlist.CreateListRequest{Name: "Christmas"})
	require.NoError(t, err)

	assert.Equal(t, "christmas", first.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "christmas-"))
	assert.Len(t, second.Slug, len("christmas-")+6)
}

func TestCreateRejectsShortName(t *testing.T) {
	svc, _, _, _ := newTestListService()

	_, err := svc.Create(context.Background(), uuid.New(), giftlist.CreateListRequest{Name: "ab"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestManageViewNeverShowsClaimState(t *testing.T) {
	svc, repo, _, _ := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	created, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Wedding"})
	require.NoError(t, err)

	claimer := uuid.New()
	repo.items[created.ID] = []giftlist.ItemWithClaim{
		{Item: giftlist.GiftItem{ID: uuid.New(), ListID: created.ID, Name: "Toaster", Status: giftlist.StatusClaimed}, ClaimedBy: &claimer},
		{Item: giftlist.GiftItem{ID: uuid.New(), ListID: created.ID, Name: "Kettle", Status: giftlist.StatusAvailable}},
	}

	manage, err := svc.GetManage(ctx, "wedding", celebrantID)
	require.NoError(t, err)
	require.Len(t, manage.Items, 2)
	for _, item := range manage.Items {
		assert.Equal(t, giftlist.StatusAvailable, item.Status)
	}
}

func TestPublicViewHidesOtherGuestsClaims(t *testing.T) {
	svc, repo, guests, _ := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	created, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Housewarming"})
	require.NoError(t, err)

	viewer, err := guests.Upsert(ctx, created.ID, "viewer@example.com", "en")
	require.NoError(t, err)
	other := uuid.New()

	repo.items[created.ID] = []giftlist.ItemWithClaim{
		{Item: giftlist.GiftItem{ID: uuid.New(), Name: "Plant", Status: giftlist.StatusAvailable}},
		{Item: giftlist.GiftItem{ID: uuid.New(), Name: "Vase", Status: giftlist.StatusClaimed}, ClaimedBy: &viewer.ID},
		{Item: giftlist.GiftItem{ID: uuid.New(), Name: "Lamp", Status: giftlist.StatusClaimed}, ClaimedBy: &other},
	}

	public, err := svc.GetPublic(ctx, "housewarming", giftlist.Viewer{AccessID: viewer.ID})
	require.NoError(t, err)
	require.Len(t, public.Items, 2)

	byName := make(map[string]giftlist.PublicItemResponse)
	for _, item := range public.Items {
		byName[item.Name] = item
	}
	assert.False(t, byName["Plant"].IsClaimedByMe)
	assert.True(t, byName["Vase"].IsClaimedByMe)
	assert.NotContains(t, byName, "Lamp")
}

func TestPublicViewOwnerPreview(t *testing.T) {
	svc, _, _, _ := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	_, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Graduation"})
	require.NoError(t, err)

	// Owner previewing their own page.
	_, err = svc.GetPublic(ctx, "graduation", giftlist.Viewer{Synthetic: true, CelebrantID: celebrantID})
	assert.NoError(t, err)

	// A different celebrant has no business on this page.
	_, err = svc.GetPublic(ctx, "graduation", giftlist.Viewer{Synthetic: true, CelebrantID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrUnauthorizedGuest)
}

func TestPublicViewRejectsForeignSession(t *testing.T) {
	svc, _, guests, _ := newTestListService()
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), giftlist.CreateListRequest{Name: "Baby Shower"})
	require.NoError(t, err)

	// Session granted on some other list.
	access, err := guests.Upsert(ctx, uuid.New(), "guest@example.com", "en")
	require.NoError(t, err)

	_, err = svc.GetPublic(ctx, "baby-shower", giftlist.Viewer{AccessID: access.ID})
	assert.ErrorIs(t, err, apperror.ErrUnauthorizedGuest)
}

func TestDeleteCleansUpImages(t *testing.T) {
	svc, _, _, storage := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	created, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Retirement"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, celebrantID))
	require.Len(t, storage.deletedPrefixes, 1)
	assert.Equal(t, "lists/"+created.ID.String()+"/", storage.deletedPrefixes[0])

	// Gone means gone, even for the owner.
	_, err = svc.GetManage(ctx, "retirement", celebrantID)
	assert.ErrorIs(t, err, apperror.ErrListNotFound)
}

func TestDeleteSurvivesStorageFailure(t *testing.T) {
	svc, _, _, storage := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	created, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Anniversary"})
	require.NoError(t, err)

	storage.failDelete = true
	assert.NoError(t, svc.Delete(ctx, created.ID, celebrantID))
}

func TestUploadImageUpdatesList(t *testing.T) {
	svc, repo, _, _ := newTestListService()
	ctx := context.Background()
	celebrantID := uuid.New()

	created, err := svc.Create(ctx, celebrantID, giftlist.CreateListRequest{Name: "Birthday"})
	require.NoError(t, err)

	url, err := svc.UploadImage(ctx, "birthday", celebrantID, []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://storage.local/lists/"+created.ID.String()+"/cover-"))

	stored := repo.lists[created.ID]
	require.NotNil(t, stored.ImageURL)
	assert.Equal(t, url, *stored.ImageURL)
}
