package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ndnb/architecture-web-gateway/catalog"
	"github.com/ndnb/architecture-web-gateway/idcodec"
	"github.com/ndnb/architecture-web-gateway/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeAssets resolves relative paths the way the gateway does, without HTTP.
type fakeAssets struct{}

func (fakeAssets) AssetURL(filepath string) string {
	if filepath == "" {
		return ""
	}
	return "https://api.test/architecture-web-app" + filepath
}

type stubClientSource struct {
	clients map[int64][]models.Client
	err     error
}

func (s *stubClientSource) ClientsByType(_ context.Context, typeID int64) ([]models.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.clients[typeID], nil
}

func projectWithFeature(id int64, name string) *models.Project {
	return &models.Project{
		ID:   id,
		Name: name,
		Media: []models.Media{
			{ID: id * 10, ImageType: models.ImageTypeFeature, Filepath: "/media/feature.jpg"},
		},
	}
}

func TestListPopulatesRows(t *testing.T) {
	source := &stubClientSource{clients: map[int64][]models.Client{
		1: {
			{ID: 11, FullName: "A. Shrestha", Address: "Kathmandu", Project: projectWithFeature(5, "Hill House")},
		},
	}}
	list := catalog.NewProjectListController(source, fakeAssets{})

	list.OnCategoryChange(context.Background(), 1)

	require.Equal(t, catalog.ListPopulated, list.State())
	rows := list.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "Hill House", rows[0].ProjectName)
	require.Equal(t, "Kathmandu", rows[0].Location)
	require.Equal(t, "A. Shrestha", rows[0].ClientName)
	require.Equal(t, "https://api.test/architecture-web-app/media/feature.jpg", rows[0].ThumbnailURL)
	require.Equal(t, idcodec.Encode(11), rows[0].Token)
}

func TestEmptyCategoryIsPopulatedNotError(t *testing.T) {
	source := &stubClientSource{clients: map[int64][]models.Client{}}
	list := catalog.NewProjectListController(source, fakeAssets{})

	list.OnCategoryChange(context.Background(), 3)

	require.Equal(t, catalog.ListPopulated, list.State())
	require.Empty(t, list.Rows())
	require.Empty(t, list.ErrorMessage())
}

func TestMissingMediaSubstitutesPlaceholder(t *testing.T) {
	source := &stubClientSource{clients: map[int64][]models.Client{
		1: {
			{ID: 20, FullName: "B. Rai", Project: &models.Project{ID: 7, Name: "Bare Lot", Location: "Pokhara"}},
		},
	}}
	list := catalog.NewProjectListController(source, fakeAssets{})

	list.OnCategoryChange(context.Background(), 1)

	rows := list.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, catalog.PlaceholderImageURL, rows[0].ThumbnailURL)
	require.Equal(t, "Pokhara", rows[0].Location)
}

func TestClientWithoutProjectIsSkipped(t *testing.T) {
	source := &stubClientSource{clients: map[int64][]models.Client{
		1: {
			{ID: 30, FullName: "No Project"},
			{ID: 31, FullName: "Has Project", Project: projectWithFeature(8, "Villa")},
		},
	}}
	list := catalog.NewProjectListController(source, fakeAssets{})

	list.OnCategoryChange(context.Background(), 1)

	rows := list.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "Villa", rows[0].ProjectName)
}

func TestFetchFailureYieldsUserSafeError(t *testing.T) {
	source := &stubClientSource{err: errors.New("dial tcp: connection refused")}
	list := catalog.NewProjectListController(source, fakeAssets{})

	list.OnCategoryChange(context.Background(), 1)

	require.Equal(t, catalog.ListError, list.State())
	require.NotContains(t, list.ErrorMessage(), "dial tcp")
	require.NotEmpty(t, list.ErrorMessage())
}

// gatedClientSource blocks each fetch until its gate is released, so tests
// can force network completion order.
type gatedClientSource struct {
	mu      sync.Mutex
	gates   map[int64]chan struct{}
	started map[int64]chan struct{}
	clients map[int64][]models.Client
}

func newGatedClientSource() *gatedClientSource {
	return &gatedClientSource{
		gates:   make(map[int64]chan struct{}),
		started: make(map[int64]chan struct{}),
		clients: make(map[int64][]models.Client),
	}
}

func (s *gatedClientSource) add(typeID int64, clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gates[typeID] = make(chan struct{})
	s.started[typeID] = make(chan struct{}, 1)
	s.clients[typeID] = clients
}

func (s *gatedClientSource) ClientsByType(_ context.Context, typeID int64) ([]models.Client, error) {
	s.mu.Lock()
	gate := s.gates[typeID]
	started := s.started[typeID]
	clients := s.clients[typeID]
	s.mu.Unlock()

	started <- struct{}{}
	<-gate
	return clients, nil
}

// A late-arriving response for a category that is no longer selected must be
// discarded, not applied: last selection wins regardless of network order.
func TestStaleResponseIsDiscarded(t *testing.T) {
	source := newGatedClientSource()
	source.add(1, []models.Client{
		{ID: 41, FullName: "Old", Project: projectWithFeature(1, "Stale Result")},
	})
	source.add(2, []models.Client{
		{ID: 42, FullName: "New", Project: projectWithFeature(2, "Fresh Result")},
	})

	list := catalog.NewProjectListController(source, fakeAssets{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		list.OnCategoryChange(context.Background(), 1)
	}()
	<-source.started[1]

	go func() {
		defer wg.Done()
		list.OnCategoryChange(context.Background(), 2)
	}()
	<-source.started[2]

	// Category 2 resolves first, then category 1's response straggles in.
	close(source.gates[2])
	close(source.gates[1])
	wg.Wait()

	require.Equal(t, catalog.ListPopulated, list.State())
	rows := list.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "Fresh Result", rows[0].ProjectName)
}

func TestSummarizeClientsIsPure(t *testing.T) {
	clients := []models.Client{
		{ID: 50, FullName: "C. Lama", Project: projectWithFeature(9, "Tower")},
	}
	rows := catalog.SummarizeClients(clients, fakeAssets{}, zerolog.Nop())
	require.Len(t, rows, 1)
	require.Equal(t, idcodec.Encode(50), rows[0].Token)
}
