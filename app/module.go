package app

import (
	"context"

	"github.com/vmsched/api/adapter/gce"
	"github.com/vmsched/api/config"
	"github.com/vmsched/api/domain"
	"github.com/vmsched/api/rest"
	"github.com/vmsched/api/service"
	"go.uber.org/fx"
)

func ConfigModule(configName string, configPath string) (fx.Option, error) {
	cfg, err := config.InitSchedulerConfig(configName, configPath)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.SchedulerConfig {
			return cfg
		}),
		fx.Provide(func(schedulerCfg config.SchedulerConfig) config.ServerConfig {
			return schedulerCfg.Server
		}),
		fx.Provide(func(schedulerCfg config.SchedulerConfig) config.GCPConfig {
			return schedulerCfg.GCP
		}),
		fx.Provide(func(schedulerCfg config.SchedulerConfig) config.DefaultsConfig {
			return schedulerCfg.Defaults
		}),
		fx.Provide(func(schedulerCfg config.SchedulerConfig) config.PushConfig {
			return schedulerCfg.Push
		}),
	), nil
}

// AdapterModule creates an Fx module that provides the control-plane
// adapter, return domain.ComputeAdapter
func AdapterModule() fx.Option {
	return fx.Provide(func(lc fx.Lifecycle, gcpCfg config.GCPConfig) (domain.ComputeAdapter, error) {
		adapter, closer, err := gce.NewComputeAdapter(context.Background(), gce.Options{
			CredentialsFile: gcpCfg.CredentialsFile,
		})
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer()
			},
		})
		return adapter, nil
	})
}

// ServiceModule creates an Fx module that provides the service layer, return domain.Service
func ServiceModule(configModule fx.Option, adapterModule fx.Option) fx.Option {
	return fx.Options(
		configModule,
		adapterModule,
		fx.Provide(service.NewService),
	)
}

// HandlerModule creates an Fx module that provides the REST handler, return *rest.Handler
func HandlerModule(serviceModule fx.Option) fx.Option {
	return fx.Options(
		serviceModule,
		fx.Provide(rest.NewHandler),
	)
}
