package services

import (
	"context"
	"log"
	"strings"

	"wadi/internal/models/db_models"
	"wadi/internal/models/response_models"
	"wadi/internal/repositories"
	"wadi/pkg/utils"
)

// Flat per-day spending baseline (EGP) for each budget tier.
var dailyRates = map[string]float64{
	"low":    550,
	"medium": 1300,
	"high":   3500,
}

const activitiesPerDay = 2

type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, days int, budget string, interests []string) (response_models.ItineraryResult, error)
}

type PlannerService struct {
	attractionRepo repositories.AttractionRepository
}

func NewPlannerService(attractionRepo repositories.AttractionRepository) PlannerServiceInterface {
	return &PlannerService{attractionRepo: attractionRepo}
}

// GeneratePlan builds a day-by-day schedule by walking the attraction list
// with a single cursor, two slots per day. Attractions are never reused; when
// the list runs out before the days do, later days simply come back with
// fewer activities.
func (p *PlannerService) GeneratePlan(ctx context.Context, days int, budget string, interests []string) (response_models.ItineraryResult, error) {
	if days <= 0 {
		return response_models.ItineraryResult{}, utils.ErrInvalidDays
	}

	allAttractions, err := p.attractionRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return response_models.ItineraryResult{}, utils.ErrDatabaseError
	}

	relevant := filterByInterest(allAttractions, interests)

	// Pad with the remaining attractions when the interest filter is too
	// narrow to cover the trip. Mixing in off-interest content is preferred
	// over empty days.
	if len(relevant) < days {
		relevant = append(relevant, remainder(allAttractions, relevant)...)
	}

	rate, ok := dailyRates[strings.ToLower(budget)]
	if !ok {
		rate = dailyRates["medium"]
	}
	baseCost := rate * float64(days)

	var ticketTotal float64
	itinerary := make([]response_models.ItineraryDay, 0, days)

	cursor := 0
	for day := 1; day <= days; day++ {
		dayPlan := response_models.ItineraryDay{
			Day:        day,
			Activities: []response_models.ItineraryActivity{},
		}

		for slot := 0; slot < activitiesPerDay && cursor < len(relevant); slot++ {
			attr := relevant[cursor]
			slotTime := "Morning"
			if slot == 1 {
				slotTime = "Afternoon"
			}

			dayPlan.Activities = append(dayPlan.Activities, response_models.ItineraryActivity{
				Name:        attr.Name,
				Time:        slotTime,
				Description: attr.Description,
				Image:       utils.ResolveImage(attr.ImagePath, attr.ImageURL, ""),
				Price:       attr.TicketPrice,
			})
			ticketTotal += attr.TicketPrice
			cursor++
		}

		itinerary = append(itinerary, dayPlan)
	}

	return response_models.ItineraryResult{
		Itinerary:          itinerary,
		TotalEstimatedCost: baseCost + ticketTotal,
	}, nil
}

// filterByInterest keeps attractions whose type matches one of the requested
// interests. An empty interest list means everything is relevant.
func filterByInterest(attractions []db_models.Attraction, interests []string) []db_models.Attraction {
	if len(interests) == 0 {
		return append([]db_models.Attraction{}, attractions...)
	}

	wanted := make(map[string]bool, len(interests))
	for _, interest := range interests {
		wanted[interest] = true
	}

	relevant := make([]db_models.Attraction, 0, len(attractions))
	for _, attr := range attractions {
		if wanted[attr.AttractionType] {
			relevant = append(relevant, attr)
		}
	}
	return relevant
}

func remainder(all, relevant []db_models.Attraction) []db_models.Attraction {
	picked := make(map[string]bool, len(relevant))
	for _, attr := range relevant {
		picked[attr.ID.String()] = true
	}

	var rest []db_models.Attraction
	for _, attr := range all {
		if !picked[attr.ID.String()] {
			rest = append(rest, attr)
		}
	}
	return rest
}
