package service

import (
	"context"

	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/pkg/logger"
)

// DiscoverInstances lists instances zone by zone and keeps those whose labels
// satisfy the selector. A zone that fails to list is logged and contributes
// zero instances; one unreachable zone must not block action in the healthy
// ones. Result order is zone order, then control-plane listing order.
func (svc *Service) DiscoverInstances(ctx context.Context, projectID string, zones []string, selector []domain.LabelSelector) ([]*domain.InstanceRef, error) {
	if svc.Compute == nil {
		return nil, domain.ErrNoComputeAdapter
	}
	if len(selector) == 0 {
		// An empty selector would match the whole fleet; refuse it here so a
		// blank configuration value cannot stop every instance in a project.
		return nil, domain.ErrEmptySelector
	}

	refs := []*domain.InstanceRef{}
	for _, zone := range zones {
		instances, err := svc.Compute.ListInstances(ctx, &domain.ListInstancesOptions{
			ProjectID: projectID,
			Zone:      zone,
		})
		if err != nil {
			logger.Logger(ctx).Error().Err(err).Msgf("error listing instances in zone %s", zone)
			if svc.metricCollector != nil {
				svc.metricCollector.ObserveDiscoveryFailure(zone)
			}
			continue
		}

		for _, inst := range instances {
			if domain.MatchLabels(inst.Labels, selector) {
				refs = append(refs, &domain.InstanceRef{
					Name:  inst.Name,
					Zone:  zone,
					State: inst.State,
				})
			}
		}
	}
	return refs, nil
}
