package service

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vmsched/api/config"
	"github.com/vmsched/api/domain"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Compute        domain.ComputeAdapter
	GCPConfig      config.GCPConfig
	DefaultsConfig config.DefaultsConfig
}

func NewService(params Params) (domain.Service, error) {
	svc := &Service{
		Compute:         params.Compute,
		gcpConfig:       params.GCPConfig,
		defaults:        params.DefaultsConfig,
		metricCollector: NewMetricCollector(),
	}

	err := prometheus.Register(svc.metricCollector)
	if err != nil {
		return nil, fmt.Errorf("failed to register metric collector: %v", err)
	}
	return svc, nil
}

type Service struct {
	Compute domain.ComputeAdapter

	gcpConfig       config.GCPConfig
	defaults        config.DefaultsConfig
	metricCollector *MetricCollector
}

// scaleConfig freezes the operation choices for one invocation. Anything
// other than the explicit SUSPEND/RESUME opt-ins falls back to STOP/START.
func (svc *Service) scaleConfig() domain.ScaleConfig {
	cfg := domain.ScaleConfig{
		ScaleDownOperation: domain.OperationStop,
		ScaleUpOperation:   domain.OperationStart,
	}
	if svc.defaults.ScaleDownAction == string(domain.OperationSuspend) {
		cfg.ScaleDownOperation = domain.OperationSuspend
	}
	if svc.defaults.ScaleUpAction == string(domain.OperationResume) {
		cfg.ScaleUpOperation = domain.OperationResume
	}
	return cfg
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
