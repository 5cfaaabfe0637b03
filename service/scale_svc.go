package service

import (
	"context"
	"fmt"

	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/pkg/logger"
)

const noInstancesMessage = "no instances found"

// RunScale resolves the request against the configured defaults, discovers
// the matching fleet and walks it once, applying the decision table per
// instance. Per-instance failures become error outcomes; only a missing
// project ID aborts before any discovery.
func (svc *Service) RunScale(ctx context.Context, req *domain.ScaleRequest) (*domain.ScaleResult, error) {
	if req == nil {
		req = &domain.ScaleRequest{}
	}

	intent := req.Action
	if intent == "" {
		intent = domain.ScaleDown
	}

	projectID := req.ProjectID
	if projectID == "" {
		projectID = svc.gcpConfig.ProjectID
	}
	if projectID == "" {
		logger.Logger(ctx).Error().Msg("project ID not configured")
		return nil, domain.ErrProjectNotConfigured
	}

	selector := req.VMLabels
	if len(selector) == 0 {
		var err error
		selector, err = domain.ParseSelector(svc.defaults.Labels)
		if err != nil {
			return nil, fmt.Errorf("invalid default label selector: %w", err)
		}
	}

	zones := req.Zones
	if len(zones) == 0 {
		zones = splitList(svc.defaults.Zones)
	}

	if len(selector) == 0 || len(zones) == 0 {
		logger.Logger(ctx).Warn().Msg("no label selector or zones resolved, nothing to do")
		return emptyResult(), nil
	}

	instances, err := svc.DiscoverInstances(ctx, projectID, zones, selector)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		logger.Logger(ctx).Warn().Msg("no instances found matching the specified labels")
		return emptyResult(), nil
	}

	cfg := svc.scaleConfig()
	outcomes := make([]domain.ActionOutcome, 0, len(instances))
	processed := 0
	skipped := 0
	for _, inst := range instances {
		outcome := domain.ActionOutcome{
			Instance: inst.Name,
			Zone:     inst.Zone,
			Intent:   intent,
		}

		decision := domain.Decide(intent, inst.State, cfg)
		switch {
		case decision.Skip:
			logger.Logger(ctx).Info().Msgf("instance %s already in desired state (%s), skipping", inst.Name, inst.State)
			outcome.Status = domain.OutcomeSkipped
			skipped++
		case decision.Err != nil:
			outcome.Status = domain.OutcomeError
			outcome.Detail = decision.Err.Error()
			processed++
		default:
			operationID, err := svc.performOperation(ctx, decision.Operation, &domain.InstanceActionOptions{
				ProjectID: projectID,
				Zone:      inst.Zone,
				Instance:  inst.Name,
			})
			if err != nil {
				logger.Logger(ctx).Error().Err(err).Msgf("error performing %s on instance %s", decision.Operation, inst.Name)
				outcome.Status = domain.OutcomeError
				outcome.Detail = err.Error()
			} else {
				outcome.Status = domain.OutcomeSuccess
				outcome.Detail = operationID
			}
			processed++
		}

		if svc.metricCollector != nil {
			svc.metricCollector.ObserveOutcome(intent, outcome.Status)
		}
		outcomes = append(outcomes, outcome)
	}

	logger.Logger(ctx).Info().Msgf("scale %s completed: processed=%d skipped=%d", intent, processed, skipped)
	return &domain.ScaleResult{
		ProcessedCount: processed,
		Outcomes:       outcomes,
	}, nil
}

func (svc *Service) performOperation(ctx context.Context, op domain.ScaleOperation, opt *domain.InstanceActionOptions) (string, error) {
	switch op {
	case domain.OperationStop:
		return svc.Compute.StopInstance(ctx, opt)
	case domain.OperationSuspend:
		return svc.Compute.SuspendInstance(ctx, opt)
	case domain.OperationStart:
		return svc.Compute.StartInstance(ctx, opt)
	case domain.OperationResume:
		return svc.Compute.ResumeInstance(ctx, opt)
	default:
		return "", fmt.Errorf("unknown operation: %s", op)
	}
}

func emptyResult() *domain.ScaleResult {
	return &domain.ScaleResult{
		ProcessedCount: 0,
		Outcomes:       []domain.ActionOutcome{},
		Message:        noInstancesMessage,
	}
}
