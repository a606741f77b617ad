// internal/engine/benchmark.go
package engine

import "strings"

const (
	IndustryEcommerce     = "E-commerce"
	IndustryProfessional  = "Servicios Profesionales"
	IndustryRestaurants   = "Restaurantes/Comida"
	IndustryTechnology    = "Tecnología"
	IndustryHealth        = "Salud/Bienestar"
	IndustryEducation     = "Educación"
	IndustryRealEstate    = "Inmobiliario"
	IndustryManufacturing = "Manufactura"
	IndustryRetail        = "Retail"

	DefaultIndustry = IndustryProfessional
)

// Chilean market reference values (CLP). Conversion rates are percentages.
var benchmarks = map[string]IndustryBenchmark{
	IndustryEcommerce: {
		BaseConversionRate: 2.5,
		AvgTicketValue:     65000,
		BaseCostPerClick:   350,
		BaseCostPerLead:    14000,
		CompetitionLevel:   CompetitionHigh,
		OptimalChannels:    []string{"Google Ads", "Facebook Ads", "Instagram Ads", "Email Marketing"},
	},
	IndustryProfessional: {
		BaseConversionRate: 3.5,
		AvgTicketValue:     450000,
		BaseCostPerClick:   900,
		BaseCostPerLead:    25000,
		CompetitionLevel:   CompetitionMedium,
		OptimalChannels:    []string{"Google Ads", "LinkedIn Ads", "SEO", "Referencias/Boca a boca"},
	},
	IndustryRestaurants: {
		BaseConversionRate: 5.0,
		AvgTicketValue:     18000,
		BaseCostPerClick:   250,
		BaseCostPerLead:    5000,
		CompetitionLevel:   CompetitionHigh,
		OptimalChannels:    []string{"Instagram Ads", "Facebook Ads", "Google My Business"},
	},
	IndustryTechnology: {
		BaseConversionRate: 2.0,
		AvgTicketValue:     1200000,
		BaseCostPerClick:   1200,
		BaseCostPerLead:    60000,
		CompetitionLevel:   CompetitionVeryHigh,
		OptimalChannels:    []string{"Google Ads", "LinkedIn Ads", "SEO", "Email Marketing"},
	},
	IndustryHealth: {
		BaseConversionRate: 4.0,
		AvgTicketValue:     60000,
		BaseCostPerClick:   600,
		BaseCostPerLead:    15000,
		CompetitionLevel:   CompetitionMedium,
		OptimalChannels:    []string{"Google Ads", "Instagram Ads", "SEO"},
	},
	IndustryEducation: {
		BaseConversionRate: 3.0,
		AvgTicketValue:     250000,
		BaseCostPerClick:   500,
		BaseCostPerLead:    16000,
		CompetitionLevel:   CompetitionMedium,
		OptimalChannels:    []string{"Facebook Ads", "Google Ads", "Email Marketing"},
	},
	IndustryRealEstate: {
		BaseConversionRate: 1.5,
		AvgTicketValue:     2500000,
		BaseCostPerClick:   800,
		BaseCostPerLead:    50000,
		CompetitionLevel:   CompetitionHigh,
		OptimalChannels:    []string{"Google Ads", "Facebook Ads", "Portales inmobiliarios"},
	},
	IndustryManufacturing: {
		BaseConversionRate: 2.0,
		AvgTicketValue:     2000000,
		BaseCostPerClick:   1000,
		BaseCostPerLead:    45000,
		CompetitionLevel:   CompetitionLow,
		OptimalChannels:    []string{"LinkedIn Ads", "Google Ads", "Eventos/Ferias"},
	},
	IndustryRetail: {
		BaseConversionRate: 3.0,
		AvgTicketValue:     35000,
		BaseCostPerClick:   300,
		BaseCostPerLead:    10000,
		CompetitionLevel:   CompetitionHigh,
		OptimalChannels:    []string{"Facebook Ads", "Instagram Ads", "Google Ads"},
	},
}

// Lookup returns the benchmark for industry, or the default industry's entry
// when the name is unknown. The returned value does not share memory with the
// table.
func Lookup(industry string) IndustryBenchmark {
	key, ok := canonicalIndustry(industry)
	if !ok {
		key = DefaultIndustry
	}
	b := benchmarks[key]
	b.Industry = key
	b.OptimalChannels = append([]string(nil), b.OptimalChannels...)
	return b
}

// Industries lists the table keys in a stable order.
func Industries() []string {
	return []string{
		IndustryEcommerce,
		IndustryProfessional,
		IndustryRestaurants,
		IndustryTechnology,
		IndustryHealth,
		IndustryEducation,
		IndustryRealEstate,
		IndustryManufacturing,
		IndustryRetail,
	}
}

func canonicalIndustry(industry string) (string, bool) {
	name := normalize(industry)
	if name == "" {
		return "", false
	}
	for key := range benchmarks {
		if normalize(key) == name {
			return key, true
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
