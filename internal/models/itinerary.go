package models

import "time"

// LatLng is a WGS84 coordinate pair attached to an activity.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Activity is one scheduled item within a day plan. Time is a free-text
// label ("Morning", "7pm"), not a timestamp. An activity without a
// location cannot be plotted on the map and is skipped there.
type Activity struct {
	Time        string  `bson:"time" json:"time"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Cost        float64 `bson:"cost" json:"cost"`
	Location    *LatLng `bson:"location,omitempty" json:"location,omitempty"`
}

// DayPlan groups the activities of one trip day. Day numbers start at 1
// and are contiguous within an itinerary; activities keep the order the
// generator produced them in.
type DayPlan struct {
	Day        int        `bson:"day" json:"day"`
	Title      string     `bson:"title" json:"title"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Flight is the suggested flight attached to an itinerary, at most one.
type Flight struct {
	Airline       string  `bson:"airline" json:"airline"`
	FlightNumber  string  `bson:"flight_number" json:"flightNumber"`
	DepartureTime string  `bson:"departure_time" json:"departureTime"`
	ArrivalTime   string  `bson:"arrival_time" json:"arrivalTime"`
	Duration      string  `bson:"duration" json:"duration"`
	Price         float64 `bson:"price" json:"price"`
}

// Itinerary is the persisted travel plan produced by one generation run.
// ID, StartDate, EndDate, Budget, Style and CreatedAt always come from
// the originating request and the local clock, never from the remote
// payload. Immutable once created except for removal from the store.
type Itinerary struct {
	ID                 string    `bson:"itinerary_id" json:"id"`
	Destination        string    `bson:"destination" json:"destination"`
	StartDate          string    `bson:"start_date" json:"startDate"`
	EndDate            string    `bson:"end_date" json:"endDate"`
	Budget             float64   `bson:"budget" json:"budget"`
	Style              string    `bson:"style" json:"style"`
	DailyPlans         []DayPlan `bson:"daily_plans" json:"dailyPlans"`
	SuggestedFlight    *Flight   `bson:"suggested_flight,omitempty" json:"suggestedFlight,omitempty"`
	TotalEstimatedCost float64   `bson:"total_estimated_cost" json:"totalEstimatedCost"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
}

// MapPoint is one plottable marker derived from an activity.
type MapPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

// CostBreakdown sums the itinerary's activity and flight costs. The
// total reported by the generator is not reconciled against it; a
// mismatch is a display concern only.
func (it *Itinerary) CostBreakdown() (activities, flight float64) {
	for _, day := range it.DailyPlans {
		for _, act := range day.Activities {
			activities += act.Cost
		}
	}
	if it.SuggestedFlight != nil {
		flight = it.SuggestedFlight.Price
	}
	return activities, flight
}
