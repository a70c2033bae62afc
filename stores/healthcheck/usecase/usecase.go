package usecase

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
)

type impl struct {
	probes map[hcdomain.Probe]func(ctx.Ctx) error
}

// New builds the usecase from the repo's ping methods.
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		probes: map[hcdomain.Probe]func(ctx.Ctx) error{
			hcdomain.ProbeChain: repo.PingChain,
			hcdomain.ProbeCache: repo.PingCache,
		},
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	var g errgroup.Group
	for probe, ping := range im.probes {
		probe, ping := probe, ping
		g.Go(func() error {
			if err := ping(context); err != nil {
				context.WithFields(log.Fields{"probe": probe, "err": err}).Warn("probe failed")
				return xerrors.Errorf("%s: %w", probe, err)
			}
			return nil
		})
	}
	return g.Wait()
}
