package domain

import "time"

// Tour is the primary bookable entity.
type Tour struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Name            string      `json:"name" bson:"name"`
	Duration        int         `json:"duration" bson:"duration"`
	MaxGroupSize    int         `json:"max_group_size" bson:"max_group_size"`
	Difficulty      string      `json:"difficulty" bson:"difficulty"`
	RatingsAverage  float64     `json:"ratings_average" bson:"ratings_average"`
	RatingsQuantity int         `json:"ratings_quantity" bson:"ratings_quantity"`
	Price           float64     `json:"price" bson:"price"`
	Summary         string      `json:"summary" bson:"summary"`
	Description     string      `json:"description,omitempty" bson:"description,omitempty"`
	StartDates      []time.Time `json:"start_dates,omitempty" bson:"start_dates,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}

// TourStats is one aggregate report row, grouped by difficulty.
type TourStats struct {
	Difficulty string   `json:"difficulty" bson:"_id"`
	NumTours   int      `json:"num_tours" bson:"num_tours"`
	NumRatings int      `json:"num_ratings" bson:"num_ratings"`
	AvgRating  float64  `json:"avg_rating" bson:"avg_rating"`
	AvgPrice   float64  `json:"avg_price" bson:"avg_price"`
	MinPrice   float64  `json:"min_price" bson:"min_price"`
	MaxPrice   float64  `json:"max_price" bson:"max_price"`
	Tours      []string `json:"tours" bson:"tours"`
}

// MonthlyPlanEntry is one row of the busiest-months report for a year.
type MonthlyPlanEntry struct {
	Month         int      `json:"month" bson:"month"`
	NumTourStarts int      `json:"num_tour_starts" bson:"num_tour_starts"`
	Tours         []string `json:"tours" bson:"tours"`
}
