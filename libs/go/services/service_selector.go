package services

import (
	"sort"
	"strings"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// approvedServices is the allow-list of customer-facing service
// identifiers. Anything a provider returns outside this list is dropped
// even if it is the cheapest option: unapproved or experimental carrier
// services must never reach a customer silently.
var approvedServices = map[string]bool{
	"cargoone_eco":           true,
	"cargoone_ups_saver":     true,
	"cargoone_ups_expedited": true,
	"shipex_fedex_economy":   true,
	"shipex_fedex_priority":  true,
	"shipex_dhl_express":     true,
	"postnova_eco":           true,
	"postnova_standard":      true,
	"postnova_express":       true,
}

// carrierKeywords groups competing offers for the same underlying carrier
// network regardless of which provider quoted them.
var carrierKeywords = []string{"ups", "fedex", "dhl"}

// ServiceSelector reduces the merged candidate list to the final ranked
// option set: carrier-group dedup, allow-list filtering, exact-duplicate
// removal, price-ascending sort and a fixed cap. The output is fully
// deterministic for a given input set regardless of input order.
type ServiceSelector struct{}

// NewServiceSelector creates a new service selector
func NewServiceSelector() *ServiceSelector {
	return &ServiceSelector{}
}

// Select produces the final option list. The first element of the result is
// the best (cheapest) option; callers rely on that ordering.
func (s *ServiceSelector) Select(options []business.PriceOption) []business.PriceOption {
	deduped := dedupBy(options, groupKey)

	filtered := make([]business.PriceOption, 0, len(deduped))
	for _, option := range deduped {
		if approvedServices[option.ServiceName] {
			filtered = append(filtered, option)
		}
	}

	// Second pass catches exact duplicates that survived the carrier
	// grouping, e.g. the same service quoted twice by one provider.
	final := dedupBy(filtered, func(o business.PriceOption) string {
		return o.ServiceName + "|" + o.DisplayName
	})

	sort.Slice(final, func(i, j int) bool {
		if final[i].TotalPriceCents != final[j].TotalPriceCents {
			return final[i].TotalPriceCents < final[j].TotalPriceCents
		}
		return final[i].ID < final[j].ID
	})

	if len(final) > constants.MaxQuoteOptions {
		final = final[:constants.MaxQuoteOptions]
	}

	return final
}

// dedupBy keeps the cheapest option per key. Ties break toward the
// lexicographically smaller ID so the result does not depend on input
// order.
func dedupBy(options []business.PriceOption, key func(business.PriceOption) string) []business.PriceOption {
	best := make(map[string]business.PriceOption)
	order := make([]string, 0, len(options))

	for _, option := range options {
		k := key(option)
		current, seen := best[k]
		if !seen {
			best[k] = option
			order = append(order, k)
			continue
		}
		if option.TotalPriceCents < current.TotalPriceCents ||
			(option.TotalPriceCents == current.TotalPriceCents && option.ID < current.ID) {
			best[k] = option
		}
	}

	result := make([]business.PriceOption, 0, len(best))
	for _, k := range order {
		result = append(result, best[k])
	}
	return result
}

// groupKey derives the normalized dedup key for an option: a carrier
// keyword present in the display name wins, then the canonical ECO class,
// then the service identifier itself.
func groupKey(option business.PriceOption) string {
	name := strings.ToLower(option.DisplayName)
	for _, keyword := range carrierKeywords {
		if strings.Contains(name, keyword) {
			return keyword
		}
	}
	if option.ServiceClass == business.ServiceClassEco || strings.Contains(name, "eco") {
		return "eco"
	}
	return option.ServiceName
}
