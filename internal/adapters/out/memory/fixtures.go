package memory

import (
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/services"
)

// DefaultZones returns the built-in Bangladesh zone table. Zones are reference
// data; a deployment can replace them without touching the engine.
func DefaultZones() ([]geo.Zone, error) {
	specs := []struct {
		id    geo.ZoneID
		class geo.ZoneClass
		tier  int
	}{
		{"dhaka", geo.ZoneClassMetro, 1},
		{"chittagong", geo.ZoneClassCity, 2},
		{"sylhet", geo.ZoneClassCity, 2},
		{"khulna", geo.ZoneClassCity, 2},
		{"rajshahi", geo.ZoneClassCity, 2},
		{"gazipur", geo.ZoneClassTown, 3},
		{"narayanganj", geo.ZoneClassTown, 3},
		{"comilla", geo.ZoneClassTown, 3},
	}

	zones := make([]geo.Zone, 0, len(specs))
	for _, s := range specs {
		zone, err := geo.NewZone(s.id, s.class, s.tier)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

// DefaultDistances returns the built-in zone-pair road distances in km.
func DefaultDistances() []geo.DistanceEntry {
	return []geo.DistanceEntry{
		{From: "dhaka", To: "dhaka", Km: 12},
		{From: "dhaka", To: "chittagong", Km: 250},
		{From: "dhaka", To: "sylhet", Km: 240},
		{From: "dhaka", To: "khulna", Km: 210},
		{From: "dhaka", To: "rajshahi", Km: 245},
		{From: "dhaka", To: "gazipur", Km: 35},
		{From: "dhaka", To: "narayanganj", Km: 17},
		{From: "dhaka", To: "comilla", Km: 97},
		{From: "chittagong", To: "comilla", Km: 150},
		{From: "chittagong", To: "sylhet", Km: 355},
		{From: "khulna", To: "rajshahi", Km: 260},
	}
}

// DefaultPartners returns the built-in courier partner catalog.
func DefaultPartners() ([]*courier.Partner, error) {
	specs := []struct {
		id       courier.CourierID
		name     string
		active   bool
		coverage []string
		rates    map[courier.ServiceType]courier.BaseRate
		cod      kernel.Money
		features []string
	}{
		{
			id: "pathao", name: "Pathao Courier", active: true,
			coverage: []string{"dhaka", "gazipur", "narayanganj", "chittagong"},
			rates: map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(60), PerKg: kernel.Money(20)},
				courier.ServiceExpress:  {Base: kernel.Money(100), PerKg: kernel.Money(30)},
				courier.ServiceSameDay:  {Base: kernel.Money(150), PerKg: kernel.Money(40)},
			},
			cod:      kernel.Money(10),
			features: []string{"tracking", "doorstep_pickup", "instant_booking"},
		},
		{
			id: "paperfly", name: "Paperfly", active: true,
			coverage: []string{courier.CoverageNationwide},
			rates: map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(50), PerKg: kernel.Money(18)},
				courier.ServiceNextDay:  {Base: kernel.Money(80), PerKg: kernel.Money(25)},
			},
			cod:      kernel.Money(12),
			features: []string{"tracking", "nationwide_network", "reverse_logistics"},
		},
		{
			id: "redx", name: "RedX", active: true,
			coverage: []string{courier.CoverageNationwide},
			rates: map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(55), PerKg: kernel.Money(19)},
				courier.ServiceExpress:  {Base: kernel.Money(95), PerKg: kernel.Money(28)},
			},
			cod:      kernel.Money(10),
			features: []string{"tracking", "bulk_discounts"},
		},
		{
			id: "ecourier", name: "eCourier", active: true,
			coverage: []string{"dhaka", "chittagong", "sylhet", "khulna", "rajshahi"},
			rates: map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(58), PerKg: kernel.Money(21)},
				courier.ServiceNextDay:  {Base: kernel.Money(85), PerKg: kernel.Money(26)},
				courier.ServiceExpress:  {Base: kernel.Money(105), PerKg: kernel.Money(32)},
			},
			cod:      kernel.Money(15),
			features: []string{"tracking", "api_integration"},
		},
		{
			id: "sundarban", name: "Sundarban Courier", active: true,
			coverage: []string{courier.CoverageNationwide},
			rates: map[courier.ServiceType]courier.BaseRate{
				courier.ServiceStandard: {Base: kernel.Money(45), PerKg: kernel.Money(15)},
				courier.ServiceEconomy:  {Base: kernel.Money(35), PerKg: kernel.Money(12)},
			},
			cod:      kernel.Money(20),
			features: []string{"nationwide_network", "heavy_parcels"},
		},
	}

	partners := make([]*courier.Partner, 0, len(specs))
	for _, s := range specs {
		partner, err := courier.NewPartner(s.id, s.name, s.active, s.coverage, s.rates, s.cod, s.features)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, nil
}

// DefaultRateRows returns the built-in contracted rate rows. Contracted rows
// override a partner's default base rate on their exact lane.
func DefaultRateRows() []courier.RateRow {
	return []courier.RateRow{
		{
			Courier: "pathao", From: "dhaka", To: "chittagong",
			Service: courier.ServiceStandard, MinWeightKg: 0, MaxWeightKg: 5,
			Base: kernel.Money(55), PerKg: kernel.Money(18),
		},
		{
			Courier: "paperfly", From: "dhaka", To: "sylhet",
			Service: courier.ServiceStandard, MinWeightKg: 0, MaxWeightKg: 10,
			Base: kernel.Money(48), PerKg: kernel.Money(16),
		},
		{
			Courier: "redx", From: "dhaka", To: "khulna",
			Service: courier.ServiceExpress, MinWeightKg: 0, MaxWeightKg: 5,
			Base: kernel.Money(90), PerKg: kernel.Money(26),
		},
	}
}

// DefaultReliability returns the curated per-courier reliability scores used
// for comparison ranking.
func DefaultReliability() map[courier.CourierID]float64 {
	return map[courier.CourierID]float64{
		"pathao":    95,
		"paperfly":  80,
		"redx":      85,
		"ecourier":  82,
		"sundarban": 75,
	}
}

// DefaultTariffRows returns the built-in international tariff table.
func DefaultTariffRows() []services.TariffRow {
	return []services.TariffRow{
		{Country: "India", Base: kernel.Money(500), PerKg: kernel.Money(200),
			CustomsFee: kernel.Money(150), Handling: kernel.Money(100)},
		{Country: "Nepal", Base: kernel.Money(600), PerKg: kernel.Money(250),
			CustomsFee: kernel.Money(150), Handling: kernel.Money(100)},
		{Country: "Singapore", Base: kernel.Money(1200), PerKg: kernel.Money(450),
			CustomsFee: kernel.Money(300), Handling: kernel.Money(200)},
		{Country: "Malaysia", Base: kernel.Money(1100), PerKg: kernel.Money(420),
			CustomsFee: kernel.Money(300), Handling: kernel.Money(200)},
		{Country: "UAE", Base: kernel.Money(1500), PerKg: kernel.Money(500),
			CustomsFee: kernel.Money(400), Handling: kernel.Money(250)},
		{Country: "UK", Base: kernel.Money(2200), PerKg: kernel.Money(750),
			CustomsFee: kernel.Money(500), Handling: kernel.Money(300)},
		{Country: "USA", Base: kernel.Money(2500), PerKg: kernel.Money(800),
			CustomsFee: kernel.Money(500), Handling: kernel.Money(300)},
	}
}

// DefaultDataset bundles the built-in reference data as one snapshot.
func DefaultDataset() (Dataset, error) {
	partners, err := DefaultPartners()
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{
		Partners:  partners,
		RateRows:  DefaultRateRows(),
		Distances: DefaultDistances(),
	}, nil
}
