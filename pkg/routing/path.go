package routing

import (
	"bus2ride/pkg/domain"
	"strconv"
)

// PathSegment formats a pair of points the way Mapbox and OSRM expect them
// in the URL path: "lng,lat;lng,lat".
func PathSegment(from, to domain.Coordinates) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	return f(from.Lng) + "," + f(from.Lat) + ";" + f(to.Lng) + "," + f(to.Lat)
}
