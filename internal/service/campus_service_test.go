package service

import (
	"context"
	"errors"
	"testing"

	"kiit_connect/internal/model"
	"kiit_connect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCampusRepo struct {
	cafeterias []model.Cafeteria
	hostels    []model.Hostel
	err        error
}

func (r *stubCampusRepo) ListCafeterias(context.Context) ([]model.Cafeteria, error) {
	return r.cafeterias, r.err
}

func (r *stubCampusRepo) CreateCafeteria(_ context.Context, c *model.Cafeteria) error {
	if r.err != nil {
		return r.err
	}
	c.ID = len(r.cafeterias) + 1
	r.cafeterias = append(r.cafeterias, *c)
	return nil
}

func (r *stubCampusRepo) ListHostels(context.Context) ([]model.Hostel, error) {
	return r.hostels, r.err
}

func (r *stubCampusRepo) CreateHostel(_ context.Context, h *model.Hostel) error {
	if r.err != nil {
		return r.err
	}
	h.ID = len(r.hostels) + 1
	r.hostels = append(r.hostels, *h)
	return nil
}

func TestCampusService_DemoData(t *testing.T) {
	svc := NewCampusService(nil, nil)
	ctx := context.Background()

	cafeterias, err := svc.ListCafeterias(ctx)
	require.NoError(t, err)
	assert.Len(t, cafeterias, 2)
	assert.Equal(t, "Food Court 1", cafeterias[0].Name)

	hostels, err := svc.ListHostels(ctx)
	require.NoError(t, err)
	assert.Len(t, hostels, 2)
	assert.Equal(t, "Girls", hostels[1].Type)

	_, err = svc.CreateCafeteria(ctx, model.CreateCafeteriaRequest{Name: "X", Location: "Y"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = svc.CreateHostel(ctx, model.CreateHostelRequest{Name: "X", Type: "Boys"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCampusService_Create(t *testing.T) {
	repo := &stubCampusRepo{}
	svc := NewCampusService(repo, nil)
	ctx := context.Background()

	cafeteria, err := svc.CreateCafeteria(ctx, model.CreateCafeteriaRequest{Name: "Night Canteen", Location: "Campus 15", Rating: 3.9})
	require.NoError(t, err)
	assert.Equal(t, 1, cafeteria.ID)
	assert.NotNil(t, cafeteria.Cuisine)

	hostel, err := svc.CreateHostel(ctx, model.CreateHostelRequest{Name: "KP 7", Type: "Boys", Capacity: 300})
	require.NoError(t, err)
	assert.Equal(t, 1, hostel.ID)

	hostels, err := svc.ListHostels(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KP 7", hostels[0].Name)
}

func TestCampusService_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewCampusService(&stubCampusRepo{err: errors.New("db down")}, nil)
	_, err := svc.ListCafeterias(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = svc.ListHostels(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	svc = NewCampusService(&stubCampusRepo{err: repository.ErrDuplicate}, nil)
	_, err = svc.CreateHostel(ctx, model.CreateHostelRequest{Name: "KP 7", Type: "Boys"})
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}
