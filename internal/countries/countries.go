// Package countries holds the static destination reference table the
// explore pages browse. It is constant data; AI-generated guide content
// is merged on top by the handler layer.
package countries

import (
	"strings"

	"github.com/ukydev/wayfarer/internal/models"
)

var table = []models.Country{
	{Name: "Japan", Code: "JP", Continent: "Asia", Capital: "Tokyo", ImageURL: "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e"},
	{Name: "France", Code: "FR", Continent: "Europe", Capital: "Paris", ImageURL: "https://images.unsplash.com/photo-1502602898657-3e91760cbb34"},
	{Name: "Italy", Code: "IT", Continent: "Europe", Capital: "Rome", ImageURL: "https://images.unsplash.com/photo-1552832230-c0197dd311b5"},
	{Name: "Spain", Code: "ES", Continent: "Europe", Capital: "Madrid", ImageURL: "https://images.unsplash.com/photo-1539037116277-4db20889f2d4"},
	{Name: "Greece", Code: "GR", Continent: "Europe", Capital: "Athens", ImageURL: "https://images.unsplash.com/photo-1533105079780-92b9be482077"},
	{Name: "Iceland", Code: "IS", Continent: "Europe", Capital: "Reykjavik", ImageURL: "https://images.unsplash.com/photo-1504829857797-ddff29c27927"},
	{Name: "Thailand", Code: "TH", Continent: "Asia", Capital: "Bangkok", ImageURL: "https://images.unsplash.com/photo-1506665531195-3566af2b4dfa"},
	{Name: "Vietnam", Code: "VN", Continent: "Asia", Capital: "Hanoi", ImageURL: "https://images.unsplash.com/photo-1528127269322-539801943592"},
	{Name: "India", Code: "IN", Continent: "Asia", Capital: "New Delhi", ImageURL: "https://images.unsplash.com/photo-1524492412937-b28074a5d7da"},
	{Name: "Morocco", Code: "MA", Continent: "Africa", Capital: "Rabat", ImageURL: "https://images.unsplash.com/photo-1489493585363-d69421e0edd3"},
	{Name: "Egypt", Code: "EG", Continent: "Africa", Capital: "Cairo", ImageURL: "https://images.unsplash.com/photo-1539650116574-75c0c6d73f6e"},
	{Name: "South Africa", Code: "ZA", Continent: "Africa", Capital: "Pretoria", ImageURL: "https://images.unsplash.com/photo-1484318571209-661cf29a69c3"},
	{Name: "United States", Code: "US", Continent: "North America", Capital: "Washington, D.C.", ImageURL: "https://images.unsplash.com/photo-1485738422979-f5c462d49f74"},
	{Name: "Mexico", Code: "MX", Continent: "North America", Capital: "Mexico City", ImageURL: "https://images.unsplash.com/photo-1518105779142-d975f22f1b0a"},
	{Name: "Canada", Code: "CA", Continent: "North America", Capital: "Ottawa", ImageURL: "https://images.unsplash.com/photo-1503614472-8c93d56e92ce"},
	{Name: "Peru", Code: "PE", Continent: "South America", Capital: "Lima", ImageURL: "https://images.unsplash.com/photo-1526392060635-9d6019884377"},
	{Name: "Brazil", Code: "BR", Continent: "South America", Capital: "Brasília", ImageURL: "https://images.unsplash.com/photo-1483729558449-99ef09a8c325"},
	{Name: "Argentina", Code: "AR", Continent: "South America", Capital: "Buenos Aires", ImageURL: "https://images.unsplash.com/photo-1589909202802-8f4aadce1849"},
	{Name: "Australia", Code: "AU", Continent: "Oceania", Capital: "Canberra", ImageURL: "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9"},
	{Name: "New Zealand", Code: "NZ", Continent: "Oceania", Capital: "Wellington", ImageURL: "https://images.unsplash.com/photo-1469521669194-babb45599def"},
}

// All returns the full reference table in its fixed display order.
func All() []models.Country {
	out := make([]models.Country, len(table))
	copy(out, table)
	return out
}

// ByName looks up one country, case-insensitively.
func ByName(name string) (models.Country, bool) {
	for _, c := range table {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.Country{}, false
}

// Filter narrows the table by a free-text query (matched against name
// and capital) and an optional continent. Empty arguments match
// everything.
func Filter(query, continent string) []models.Country {
	query = strings.ToLower(strings.TrimSpace(query))
	out := []models.Country{}
	for _, c := range table {
		if continent != "" && !strings.EqualFold(c.Continent, continent) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Capital), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}
