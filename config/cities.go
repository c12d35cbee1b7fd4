package config

// builtinCities are available without a configuration file. Jerusalem
// lights 40 minutes before sunset, everywhere else 18.
var builtinCities = []CityConfig{
	{Name: "Jerusalem", Latitude: 31.7683, Longitude: 35.2137, TimeZone: "Asia/Jerusalem", CandleLightingMinutes: 40},
	{Name: "Tel Aviv", Latitude: 32.0853, Longitude: 34.7818, TimeZone: "Asia/Jerusalem", CandleLightingMinutes: 18},
	{Name: "Haifa", Latitude: 32.7940, Longitude: 34.9896, TimeZone: "Asia/Jerusalem", CandleLightingMinutes: 18},
	{Name: "Beer Sheva", Latitude: 31.2520, Longitude: 34.7915, TimeZone: "Asia/Jerusalem", CandleLightingMinutes: 18},
	{Name: "New York", Latitude: 40.7128, Longitude: -74.0060, TimeZone: "America/New_York", CandleLightingMinutes: 18},
	{Name: "Baltimore", Latitude: 39.2904, Longitude: -76.6122, TimeZone: "America/New_York", CandleLightingMinutes: 18},
	{Name: "Boston", Latitude: 42.3601, Longitude: -71.0589, TimeZone: "America/New_York", CandleLightingMinutes: 18},
	{Name: "Miami", Latitude: 25.7617, Longitude: -80.1918, TimeZone: "America/New_York", CandleLightingMinutes: 18},
	{Name: "Chicago", Latitude: 41.8781, Longitude: -87.6298, TimeZone: "America/Chicago", CandleLightingMinutes: 18},
	{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, TimeZone: "America/Los_Angeles", CandleLightingMinutes: 18},
	{Name: "Toronto", Latitude: 43.6532, Longitude: -79.3832, TimeZone: "America/Toronto", CandleLightingMinutes: 18},
	{Name: "Montreal", Latitude: 45.5017, Longitude: -73.5673, TimeZone: "America/Toronto", CandleLightingMinutes: 18},
	{Name: "London", Latitude: 51.5074, Longitude: -0.1278, TimeZone: "Europe/London", CandleLightingMinutes: 18},
	{Name: "Manchester", Latitude: 53.4808, Longitude: -2.2426, TimeZone: "Europe/London", CandleLightingMinutes: 18},
	{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, TimeZone: "Europe/Paris", CandleLightingMinutes: 18},
	{Name: "Antwerp", Latitude: 51.2194, Longitude: 4.4025, TimeZone: "Europe/Brussels", CandleLightingMinutes: 18},
	{Name: "Moscow", Latitude: 55.7558, Longitude: 37.6173, TimeZone: "Europe/Moscow", CandleLightingMinutes: 18},
	{Name: "Johannesburg", Latitude: -26.2041, Longitude: 28.0473, TimeZone: "Africa/Johannesburg", CandleLightingMinutes: 18},
	{Name: "Melbourne", Latitude: -37.8136, Longitude: 144.9631, TimeZone: "Australia/Melbourne", CandleLightingMinutes: 18},
	{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, TimeZone: "Australia/Sydney", CandleLightingMinutes: 18},
	{Name: "Buenos Aires", Latitude: -34.6037, Longitude: -58.3816, TimeZone: "America/Argentina/Buenos_Aires", CandleLightingMinutes: 18},
	{Name: "Mexico City", Latitude: 19.4326, Longitude: -99.1332, TimeZone: "America/Mexico_City", CandleLightingMinutes: 18},
}
