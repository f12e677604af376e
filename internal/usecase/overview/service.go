package overview

import (
	"context"
	"sort"
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/fleet"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type SiteRow struct {
	SiteID             uuid.UUID                    `json:"site_id"`
	SiteName           string                       `json:"site_name"`
	OrganizationID     uuid.UUID                    `json:"organization_id"`
	OrganizationName   string                       `json:"organization_name"`
	SubscriptionPlan   domainOrg.Plan               `json:"subscription_plan"`
	SubscriptionStatus domainOrg.SubscriptionStatus `json:"subscription_status"`
	TotalNodes         int                          `json:"total_nodes"`
	OnlineNodes        int                          `json:"online_nodes"`
	Band               fleet.Band                   `json:"band"`
	MRR                float64                      `json:"mrr"`
}

type Totals struct {
	MRR                 float64 `json:"mrr"`
	Nodes               int     `json:"nodes"`
	Online              int     `json:"online"`
	Offline             int     `json:"offline"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
}

type Response struct {
	Sites  []SiteRow `json:"sites"`
	Totals Totals    `json:"totals"`
}

// Service builds the super-admin overview across every tenant.
type Service struct {
	orgRepo    domainOrg.Repository
	siteRepo   domainSite.Repository
	deviceRepo domainDevice.Repository
	rates      fleet.PlanRates
}

func NewService(orgRepo domainOrg.Repository, siteRepo domainSite.Repository, deviceRepo domainDevice.Repository, rates fleet.PlanRates) *Service {
	if rates == nil {
		rates = fleet.DefaultPlanRates
	}
	return &Service{
		orgRepo:    orgRepo,
		siteRepo:   siteRepo,
		deviceRepo: deviceRepo,
		rates:      rates,
	}
}

// Overview issues a fixed three reads regardless of fleet size.
func (s *Service) Overview(ctx context.Context, now time.Time) (*Response, error) {
	var (
		orgs    []*domainOrg.Organization
		sites   []*domainSite.Site
		devices []domainDevice.SiteDevice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orgs, err = s.orgRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sites, err = s.siteRepo.List(gctx, &domainSite.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		devices, err = s.deviceRepo.ListAssigned(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orgByID := make(map[uuid.UUID]*domainOrg.Organization, len(orgs))
	for _, o := range orgs {
		orgByID[o.ID] = o
	}
	devicesBySite := make(map[uuid.UUID][]*domainDevice.Device, len(sites))
	for _, sd := range devices {
		devicesBySite[sd.SiteID] = append(devicesBySite[sd.SiteID], sd.Device)
	}

	resp := &Response{Sites: make([]SiteRow, 0, len(sites))}
	plans := make([]domainOrg.Plan, 0, len(sites))
	for _, site := range sites {
		health := fleet.AggregateHealth(devicesBySite[site.ID], now)
		row := SiteRow{
			SiteID:         site.ID,
			SiteName:       site.Name,
			OrganizationID: site.OrganizationID,
			TotalNodes:     health.Total,
			OnlineNodes:    health.Online,
			Band:           health.Band(),
		}
		if org, ok := orgByID[site.OrganizationID]; ok {
			row.OrganizationName = org.Name
			row.SubscriptionPlan = org.SubscriptionPlan
			row.SubscriptionStatus = org.SubscriptionStatus
			row.MRR = s.rates.Rate(org.SubscriptionPlan)
			plans = append(plans, org.SubscriptionPlan)
		}

		resp.Totals.Nodes += health.Total
		resp.Totals.Online += health.Online
		resp.Sites = append(resp.Sites, row)
	}

	resp.Totals.MRR = fleet.ComputeMRR(plans, s.rates)
	resp.Totals.Offline = resp.Totals.Nodes - resp.Totals.Online
	for _, o := range orgs {
		if o.IsActive() {
			resp.Totals.ActiveSubscriptions++
		}
	}

	sort.SliceStable(resp.Sites, func(i, j int) bool {
		if resp.Sites[i].OrganizationName != resp.Sites[j].OrganizationName {
			return resp.Sites[i].OrganizationName < resp.Sites[j].OrganizationName
		}
		return resp.Sites[i].SiteName < resp.Sites[j].SiteName
	})
	return resp, nil
}
