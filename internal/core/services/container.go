package services

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/pkg/config"
)

// NewServiceContainer wires all application services over the given
// repositories and collaborators. The resolver feeds the valuation service,
// which feeds the assessment service; everything downstream sees only the
// port interfaces.
func NewServiceContainer(
	cfg *config.Config,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	rateRepo portsrepo.FXRateRepositoryFacade,
	taxRepo portsrepo.TaxRateRepositoryFacade,
	fetcher portssvc.RateFetcher,
	table *domain.CurrencyTable,
	calendar *domain.BusinessCalendar,
) *portssvc.ServiceContainer {
	resolver := NewRateResolverService(table, rateRepo)
	valuation := NewValuationService(resolver)
	schedule := NewTaxScheduleService(taxRepo)

	return &portssvc.ServiceContainer{
		Currency:    NewCurrencyService(currencyRepo),
		FXRate:      NewFXRateService(rateRepo, fetcher, calendar),
		TaxSchedule: schedule,
		Resolver:    resolver,
		Valuation:   valuation,
		Assessment:  NewAssessmentService(valuation, schedule, resolver),
		Auth:        NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration),
	}
}
