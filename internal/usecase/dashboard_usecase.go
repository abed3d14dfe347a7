package usecase

import (
	"context"

	"clicknova_admin/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// DashboardStats feeds the landing page counters.
type DashboardStats struct {
	Leads             int            `json:"leads"`
	LeadsByStatus     map[string]int `json:"leadsByStatus"`
	Customers         int            `json:"customers"`
	Employees         int            `json:"employees"`
	Quotations        int            `json:"quotations"`
	CareerRequests    int            `json:"careerRequests"`
	WebsiteCareers    int            `json:"websiteCareers"`
	WebsiteContacts   int            `json:"websiteContacts"`
	WebsiteFreeQuotes int            `json:"websiteFreeQuotes"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
}

type DashboardUseCase struct {
	leads      interfaces.ILeadRepository
	customers  interfaces.ICustomerRepository
	employees  interfaces.IEmployeeRepository
	quotations interfaces.IQuotationRepository
	careers    interfaces.ICareerRequestRepository
	webCareers interfaces.ICareerSubmissionRepository
	webContact interfaces.IContactSubmissionRepository
	webQuotes  interfaces.IFreeQuoteSubmissionRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	leads interfaces.ILeadRepository,
	customers interfaces.ICustomerRepository,
	employees interfaces.IEmployeeRepository,
	quotations interfaces.IQuotationRepository,
	careers interfaces.ICareerRequestRepository,
	webCareers interfaces.ICareerSubmissionRepository,
	webContact interfaces.IContactSubmissionRepository,
	webQuotes interfaces.IFreeQuoteSubmissionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		leads:      leads,
		customers:  customers,
		employees:  employees,
		quotations: quotations,
		careers:    careers,
		webCareers: webCareers,
		webContact: webContact,
		webQuotes:  webQuotes,
	}
}

// Stats fans the collection scans out in parallel; the counters are small
// and the page wants them in one round trip.
func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	stats := DashboardStats{LeadsByStatus: map[string]int{}}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leads, err := u.leads.List(ctx)
		if err != nil {
			return err
		}
		stats.Leads = len(leads)
		for _, l := range leads {
			stats.LeadsByStatus[string(l.Status)]++
		}
		return nil
	})
	g.Go(func() error {
		customers, err := u.customers.List(ctx)
		if err != nil {
			return err
		}
		stats.Customers = len(customers)
		return nil
	})
	g.Go(func() error {
		employees, err := u.employees.List(ctx)
		if err != nil {
			return err
		}
		stats.Employees = len(employees)
		return nil
	})
	g.Go(func() error {
		quotations, err := u.quotations.List(ctx)
		if err != nil {
			return err
		}
		stats.Quotations = len(quotations)
		return nil
	})
	g.Go(func() error {
		careers, err := u.careers.List(ctx)
		if err != nil {
			return err
		}
		stats.CareerRequests = len(careers)
		return nil
	})
	g.Go(func() error {
		subs, err := u.webCareers.List(ctx)
		if err != nil {
			return err
		}
		stats.WebsiteCareers = len(subs)
		return nil
	})
	g.Go(func() error {
		subs, err := u.webContact.List(ctx)
		if err != nil {
			return err
		}
		stats.WebsiteContacts = len(subs)
		return nil
	})
	g.Go(func() error {
		subs, err := u.webQuotes.List(ctx)
		if err != nil {
			return err
		}
		stats.WebsiteFreeQuotes = len(subs)
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
