package shared

import "bookingmx/internal/domain"

// SampleGraph returns the built-in city dataset: major Mexican cities and
// approximate road distances in kilometers.
func SampleGraph() domain.GraphData {
	return domain.GraphData{
		Cities: []string{
			"Mexico City",
			"Puebla",
			"Cuernavaca",
			"Toluca",
			"Pachuca",
			"Queretaro",
			"Tlaxcala",
			"Taxco",
			"San Miguel de Allende",
			"Guadalajara",
		},
		Edges: []domain.CityEdge{
			{From: "Mexico City", To: "Puebla", Distance: 132},
			{From: "Mexico City", To: "Cuernavaca", Distance: 85},
			{From: "Mexico City", To: "Toluca", Distance: 66},
			{From: "Mexico City", To: "Pachuca", Distance: 94},
			{From: "Mexico City", To: "Queretaro", Distance: 213},
			{From: "Mexico City", To: "Guadalajara", Distance: 540},
			{From: "Puebla", To: "Tlaxcala", Distance: 42},
			{From: "Cuernavaca", To: "Taxco", Distance: 80},
			{From: "Queretaro", To: "San Miguel de Allende", Distance: 97},
			{From: "Queretaro", To: "Guadalajara", Distance: 348},
		},
	}
}

// SeedReservation is one demo booking for cmd/seed. Dates are day offsets
// from today so seeded reservations always pass the future-dates rules.
type SeedReservation struct {
	GuestName    string
	HotelName    string
	CheckInDays  int
	CheckOutDays int
}

func SampleReservations() []SeedReservation {
	return []SeedReservation{
		{GuestName: "Ana Torres", HotelName: "Hotel Zocalo Central", CheckInDays: 3, CheckOutDays: 6},
		{GuestName: "Luis Hernandez", HotelName: "Gran Hotel Puebla", CheckInDays: 5, CheckOutDays: 9},
		{GuestName: "Maria Fernanda Ruiz", HotelName: "Casa Cuernavaca", CheckInDays: 7, CheckOutDays: 8},
		{GuestName: "Carlos Mendoza", HotelName: "Hotel Zocalo Central", CheckInDays: 10, CheckOutDays: 14},
		{GuestName: "Sofia Castillo", HotelName: "Posada Queretaro", CheckInDays: 12, CheckOutDays: 15},
		{GuestName: "Diego Ramirez", HotelName: "Hotel Tapatio", CheckInDays: 14, CheckOutDays: 21},
		{GuestName: "Valentina Flores", HotelName: "Casa Taxco", CheckInDays: 20, CheckOutDays: 22},
		{GuestName: "Jorge Avila", HotelName: "Gran Hotel Puebla", CheckInDays: 30, CheckOutDays: 33},
	}
}
