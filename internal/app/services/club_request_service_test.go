package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
)

type fakeRequestStore struct {
	requests   map[int64]*models.ClubRequest
	nextClubID int64
}

func newFakeRequestStore(requests ...*models.ClubRequest) *fakeRequestStore {
	store := &fakeRequestStore{requests: map[int64]*models.ClubRequest{}, nextClubID: 100}
	for _, r := range requests {
		store.requests[r.ID] = r
	}
	return store
}

func (s *fakeRequestStore) Create(_ context.Context, request *models.ClubRequest) (int64, error) {
	id := int64(len(s.requests) + 1)
	request.ID = id
	s.requests[id] = request
	return id, nil
}

func (s *fakeRequestStore) GetByID(_ context.Context, id int64) (*models.ClubRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, apperrors.ErrClubRequestNotFound
	}
	return request, nil
}

func (s *fakeRequestStore) GetAll(_ context.Context, status *string, _, _ int) ([]*models.ClubRequest, int, error) {
	result := []*models.ClubRequest{}
	for _, r := range s.requests {
		if status == nil || string(r.Status) == *status {
			result = append(result, r)
		}
	}
	return result, len(result), nil
}

func (s *fakeRequestStore) GetPendingIDs(_ context.Context) ([]int64, error) {
	ids := []int64{}
	for id := int64(1); id <= int64(len(s.requests)); id++ {
		if r, ok := s.requests[id]; ok && r.IsPending() {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *fakeRequestStore) Approve(_ context.Context, id int64, adminNotes *string) (int64, error) {
	request, ok := s.requests[id]
	if !ok {
		return 0, apperrors.ErrClubRequestNotFound
	}
	if !request.IsPending() {
		return 0, apperrors.ErrRequestNotPending
	}
	request.Status = models.RequestApproved
	request.AdminNotes = adminNotes
	s.nextClubID++
	return s.nextClubID, nil
}

func (s *fakeRequestStore) Reject(_ context.Context, id int64, adminNotes *string) error {
	request, ok := s.requests[id]
	if !ok {
		return apperrors.ErrClubRequestNotFound
	}
	if !request.IsPending() {
		return apperrors.ErrRequestNotPending
	}
	request.Status = models.RequestRejected
	request.AdminNotes = adminNotes
	return nil
}

type fakeUserStore struct {
	users map[int64]*models.User
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func pendingRequest(id int64) *models.ClubRequest {
	return &models.ClubRequest{
		ID:            id,
		Name:          "Chess Club",
		Description:   "Weekly games",
		Category:      "games",
		RequestedByID: 5,
		UniversityID:  1,
		Status:        models.RequestPending,
	}
}

func testService(store *fakeRequestStore) ClubRequestService {
	users := &fakeUserStore{users: map[int64]*models.User{
		1: {ID: 1, Role: models.RoleAdministrator, UniversityID: 1},
		5: {ID: 5, Role: models.RoleStudent, UniversityID: 1},
	}}
	return NewClubRequestService(store, users, zerolog.Nop())
}

func TestReviewRequestApprove(t *testing.T) {
	store := newFakeRequestStore(pendingRequest(1))
	svc := testService(store)

	notes := "Looks good"
	resp, err := svc.ReviewRequest(context.Background(), 1, 1, &dto.ReviewClubRequestRequest{
		Status:     models.RequestApproved,
		AdminNotes: &notes,
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestApproved, resp.Status)
	require.Equal(t, &notes, resp.AdminNotes)
}

func TestReviewRequestReject(t *testing.T) {
	store := newFakeRequestStore(pendingRequest(1))
	svc := testService(store)

	resp, err := svc.ReviewRequest(context.Background(), 1, 1, &dto.ReviewClubRequestRequest{
		Status: models.RequestRejected,
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestRejected, resp.Status)
}

func TestReviewRequestTerminalStateConflict(t *testing.T) {
	approved := pendingRequest(1)
	approved.Status = models.RequestApproved
	store := newFakeRequestStore(approved)
	svc := testService(store)

	_, err := svc.ReviewRequest(context.Background(), 1, 1, &dto.ReviewClubRequestRequest{
		Status: models.RequestRejected,
	})
	require.ErrorIs(t, err, apperrors.ErrRequestNotPending)
}

func TestReviewRequestNonAdministrator(t *testing.T) {
	store := newFakeRequestStore(pendingRequest(1))
	svc := testService(store)

	_, err := svc.ReviewRequest(context.Background(), 1, 5, &dto.ReviewClubRequestRequest{
		Status: models.RequestApproved,
	})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// The request must remain untouched
	request, getErr := store.GetByID(context.Background(), 1)
	require.NoError(t, getErr)
	require.True(t, request.IsPending())
}

func TestBulkApprove(t *testing.T) {
	rejected := pendingRequest(3)
	rejected.Status = models.RequestRejected
	store := newFakeRequestStore(pendingRequest(1), pendingRequest(2), rejected)
	svc := testService(store)

	resp, err := svc.BulkApprove(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Approved)
	require.Equal(t, 0, resp.Failed)

	for _, id := range []int64{1, 2} {
		request, err := store.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, models.RequestApproved, request.Status)
		require.NotNil(t, request.AdminNotes)
		require.Equal(t, "Bulk approved by administrator", *request.AdminNotes)
	}

	// The rejected request stays rejected
	request, err := store.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, models.RequestRejected, request.Status)
}

func TestBulkApproveEmpty(t *testing.T) {
	store := newFakeRequestStore()
	svc := testService(store)

	resp, err := svc.BulkApprove(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 0, resp.Approved)
	require.Equal(t, 0, resp.Failed)
}

func TestBulkApproveNonAdministrator(t *testing.T) {
	store := newFakeRequestStore(pendingRequest(1))
	svc := testService(store)

	_, err := svc.BulkApprove(context.Background(), 5)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateRequest(t *testing.T) {
	store := newFakeRequestStore()
	svc := testService(store)

	resp, err := svc.CreateRequest(context.Background(), 5, &dto.CreateClubRequestRequest{
		Name:        "Robotics Club",
		Description: "Build robots",
		Category:    "technology",
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestPending, resp.Status)
	require.Equal(t, "Robotics Club", resp.Name)
}
