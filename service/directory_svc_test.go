package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vmsched/api/domain"
)

var autoScheduleSelector = []domain.LabelSelector{{Key: "auto-schedule", Value: "true"}}

func TestDiscoverInstancesNoComputeAdapter(t *testing.T) {
	svc := &Service{}

	_, err := svc.DiscoverInstances(context.Background(), "test-project", []string{"us-central1-a"}, autoScheduleSelector)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoComputeAdapter)
}

func TestDiscoverInstancesRejectsEmptySelector(t *testing.T) {
	mockCompute := domain.NewMockComputeAdapter(t)
	svc := &Service{Compute: mockCompute}

	_, err := svc.DiscoverInstances(context.Background(), "test-project", []string{"us-central1-a"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptySelector)
}

func TestDiscoverInstancesFiltersByLabels(t *testing.T) {
	ctx := context.Background()
	mockCompute := domain.NewMockComputeAdapter(t)
	mockCompute.EXPECT().
		ListInstances(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.ListInstancesOptions) {
			require.NotNil(t, opt)
			assert.Equal(t, "test-project", opt.ProjectID)
			assert.Equal(t, "us-central1-a", opt.Zone)
		}).
		Return([]*domain.Instance{
			{Name: "worker-1", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceRunning},
			{Name: "bastion", Labels: map[string]string{"auto-schedule": "false"}, State: domain.InstanceRunning},
			{Name: "worker-2", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceStopped},
		}, nil).
		Once()

	svc := &Service{Compute: mockCompute}
	refs, err := svc.DiscoverInstances(ctx, "test-project", []string{"us-central1-a"}, autoScheduleSelector)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "worker-1", refs[0].Name)
	assert.Equal(t, domain.InstanceRunning, refs[0].State)
	assert.Equal(t, "worker-2", refs[1].Name)
	assert.Equal(t, "us-central1-a", refs[1].Zone)
}

func TestDiscoverInstancesZoneFailureIsolated(t *testing.T) {
	ctx := context.Background()
	mockCompute := domain.NewMockComputeAdapter(t)
	mockCompute.EXPECT().
		ListInstances(mock.Anything, mock.MatchedBy(func(opt *domain.ListInstancesOptions) bool {
			return opt.Zone == "us-central1-a"
		})).
		Return([]*domain.Instance{
			{Name: "worker-1", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceRunning},
		}, nil).
		Once()
	mockCompute.EXPECT().
		ListInstances(mock.Anything, mock.MatchedBy(func(opt *domain.ListInstancesOptions) bool {
			return opt.Zone == "us-central1-b"
		})).
		Return(nil, errors.New("zone unreachable")).
		Once()

	svc := &Service{Compute: mockCompute}
	refs, err := svc.DiscoverInstances(ctx, "test-project", []string{"us-central1-a", "us-central1-b"}, autoScheduleSelector)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "worker-1", refs[0].Name)
}

func TestDiscoverInstancesPreservesZoneOrder(t *testing.T) {
	ctx := context.Background()
	mockCompute := domain.NewMockComputeAdapter(t)
	mockCompute.EXPECT().
		ListInstances(mock.Anything, mock.MatchedBy(func(opt *domain.ListInstancesOptions) bool {
			return opt.Zone == "zone-b"
		})).
		Return([]*domain.Instance{
			{Name: "b-1", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceRunning},
		}, nil).
		Once()
	mockCompute.EXPECT().
		ListInstances(mock.Anything, mock.MatchedBy(func(opt *domain.ListInstancesOptions) bool {
			return opt.Zone == "zone-a"
		})).
		Return([]*domain.Instance{
			{Name: "a-1", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceRunning},
			{Name: "a-2", Labels: map[string]string{"auto-schedule": "true"}, State: domain.InstanceRunning},
		}, nil).
		Once()

	svc := &Service{Compute: mockCompute}
	refs, err := svc.DiscoverInstances(ctx, "test-project", []string{"zone-b", "zone-a"}, autoScheduleSelector)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, "b-1", refs[0].Name)
	assert.Equal(t, "a-1", refs[1].Name)
	assert.Equal(t, "a-2", refs[2].Name)
}
