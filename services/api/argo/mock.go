package argo

import "time"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// MockCatalog returns the ten-record Indian Ocean sample used when no data source is configured.
func MockCatalog() *Catalog {
	return NewCatalog([]Measurement{
		{FloatID: 7902246, Temperature: 28.7, Salinity: 34.6, Pressure: 10, Latitude: -1.0, Longitude: 78.3, Date: day(2025, time.January, 1)},
		{FloatID: 7902246, Temperature: 28.9, Salinity: 34.6, Pressure: 12, Latitude: -1.1, Longitude: 78.4, Date: day(2025, time.December, 31)},
		{FloatID: 7902247, Temperature: 29.1, Salinity: 34.8, Pressure: 11, Latitude: -2.5, Longitude: 80.1, Date: day(2025, time.January, 15)},
		{FloatID: 7902247, Temperature: 29.3, Salinity: 34.9, Pressure: 14, Latitude: -2.6, Longitude: 80.2, Date: day(2025, time.February, 20)},
		{FloatID: 7902248, Temperature: 28.5, Salinity: 34.5, Pressure: 9, Latitude: -1.5, Longitude: 79.5, Date: day(2025, time.March, 10)},
		{FloatID: 7902248, Temperature: 28.6, Salinity: 34.5, Pressure: 11, Latitude: -1.6, Longitude: 79.6, Date: day(2025, time.March, 25)},
		{FloatID: 7902249, Temperature: 29.5, Salinity: 35.1, Pressure: 15, Latitude: -3.0, Longitude: 81.0, Date: day(2025, time.April, 1)},
		{FloatID: 7902250, Temperature: 28.1, Salinity: 34.3, Pressure: 8, Latitude: -0.5, Longitude: 77.0, Date: day(2025, time.April, 12)},
		{FloatID: 7902251, Temperature: 28.8, Salinity: 34.7, Pressure: 12, Latitude: -2.0, Longitude: 78.8, Date: day(2025, time.May, 3)},
		{FloatID: 7902252, Temperature: 29.0, Salinity: 34.8, Pressure: 13, Latitude: -2.2, Longitude: 79.0, Date: day(2025, time.May, 18)},
	})
}
