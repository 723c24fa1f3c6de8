package controllers

// RouteKind identifies an entity category served by the API. It drives
// the URL path segment and the display name used in response titles.
type RouteKind int

const (
	RouteMethods RouteKind = iota
	RouteCustomers
	RoutePayments
)

var routeNames = map[RouteKind]struct{ plural, singular string }{
	RouteMethods:   {"methods", "method"},
	RouteCustomers: {"customers", "customer"},
	RoutePayments:  {"payments", "payment"},
}

// Plural returns the URL path segment for the route kind
func (k RouteKind) Plural() string {
	return routeNames[k].plural
}

// Singular returns the display name for a single record of the route kind
func (k RouteKind) Singular() string {
	return routeNames[k].singular
}
